package repository

import (
	"context"
	"encoding/json"

	"gigconnect/internal/database"
	"gigconnect/internal/domain/gig"
	"gigconnect/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresGigRepository struct {
	db database.DB
}

func NewPostgresGigRepository(db database.DB) *PostgresGigRepository {
	return &PostgresGigRepository{db: db}
}

func (r *PostgresGigRepository) Create(ctx context.Context, g gig.Gig) error {
	var lat, lng *float64
	if g.Location != nil {
		lat = &g.Location.Lat
		lng = &g.Location.Lng
	}

	skills := g.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO gigs (id, client_id, title, description, category, budget_min, budget_max,
		                   budget_type, latitude, longitude, is_remote, deadline, required_skills, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::jsonb, $14)`,
		g.ID, g.ClientID, g.Title, g.Description, g.Category, g.BudgetMin, g.BudgetMax,
		g.BudgetType, lat, lng, g.IsRemote, g.Deadline, string(skillsJSON), g.Status,
	)
	return err
}

func (r *PostgresGigRepository) ListOpen(ctx context.Context, limit int) ([]gig.Listing, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT g.id, g.client_id, g.title, g.description, COALESCE(g.category, ''),
		        COALESCE(g.budget_min, 0), COALESCE(g.budget_max, 0), COALESCE(g.budget_type, ''),
		        g.latitude, g.longitude, g.is_remote, g.deadline, g.required_skills,
		        g.status, g.created_at, u.first_name, u.last_name
		 FROM gigs g
		 JOIN users u ON g.client_id = u.id
		 WHERE g.status = $1
		 ORDER BY g.created_at DESC
		 LIMIT $2`,
		gig.StatusOpen, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]gig.Listing, 0)
	for rows.Next() {
		var (
			l          gig.Listing
			lat, lng   *float64
			skillsJSON []byte
		)
		if err := rows.Scan(
			&l.ID, &l.ClientID, &l.Title, &l.Description, &l.Category,
			&l.BudgetMin, &l.BudgetMax, &l.BudgetType,
			&lat, &lng, &l.IsRemote, &l.Deadline, &skillsJSON,
			&l.Status, &l.CreatedAt, &l.FirstName, &l.LastName,
		); err != nil {
			return nil, err
		}
		if lat != nil && lng != nil {
			l.Location = &user.Location{Lat: *lat, Lng: *lng}
		}
		if err := json.Unmarshal(skillsJSON, &l.RequiredSkills); err != nil {
			l.RequiredSkills = []string{}
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGigRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM gigs WHERE id = $1)`,
		id,
	).Scan(&exists)
	return exists, err
}
