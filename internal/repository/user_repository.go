package repository

import (
	"context"
	"database/sql"
	"errors"

	"gigconnect/internal/database"
	"gigconnect/internal/database/postgres"
	"gigconnect/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	var lat, lng *float64
	if u.Location != nil {
		lat = &u.Location.Lat
		lng = &u.Location.Lng
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, first_name, last_name, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.PasswordHash, string(u.Role), u.FirstName, u.LastName, lat, lng,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, first_name, last_name, latitude, longitude, is_active, created_at
		 FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, first_name, last_name, latitude, longitude, is_active, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) ListFreelancers(ctx context.Context, limit int) ([]user.FreelancerListing, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.first_name, u.last_name,
		        COALESCE(fp.title, 'Freelancer'),
		        COALESCE(fp.hourly_rate, 0),
		        COALESCE(fp.bio, 'No bio available'),
		        COALESCE(fp.experience_years, 0)
		 FROM users u
		 LEFT JOIN freelancer_profiles fp ON u.id = fp.user_id
		 WHERE u.is_active = TRUE AND u.role IN ('freelancer', 'both')
		 ORDER BY u.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.FreelancerListing, 0)
	for rows.Next() {
		var f user.FreelancerListing
		if err := rows.Scan(&f.ID, &f.FirstName, &f.LastName, &f.Title, &f.HourlyRate, &f.Bio, &f.ExperienceYears); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u        user.User
		role     string
		lat, lng *float64
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.FirstName, &u.LastName, &lat, &lng, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	if lat != nil && lng != nil {
		u.Location = &user.Location{Lat: *lat, Lng: *lng}
	}
	return u, nil
}
