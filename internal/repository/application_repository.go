package repository

import (
	"context"

	"gigconnect/internal/database"
	"gigconnect/internal/database/postgres"
	"gigconnect/internal/domain/gig"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a gig.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO gig_applications (id, gig_id, freelancer_id, cover_letter, proposed_rate)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.GigID, a.FreelancerID, a.CoverLetter, a.ProposedRate,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return gig.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, gigID, freelancerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM gig_applications WHERE gig_id = $1 AND freelancer_id = $2)`,
		gigID, freelancerID,
	).Scan(&exists)
	return exists, err
}
