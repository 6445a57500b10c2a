package gig

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("gig not found")
	ErrAlreadyApplied = errors.New("already applied to this gig")
)

type Repository interface {
	Create(ctx context.Context, g Gig) error
	ListOpen(ctx context.Context, limit int) ([]Listing, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type ApplicationRepository interface {
	// Create fails with ErrAlreadyApplied when the (gig, freelancer) pair
	// already holds an application; the unique index is authoritative.
	Create(ctx context.Context, a Application) error
	Exists(ctx context.Context, gigID, freelancerID uuid.UUID) (bool, error)
}
