package gig

import (
	"time"

	"github.com/google/uuid"

	"gigconnect/internal/domain/user"
)

const StatusOpen = "open"

type Gig struct {
	ID             uuid.UUID      `json:"id"`
	ClientID       uuid.UUID      `json:"client_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category,omitempty"`
	BudgetMin      float64        `json:"budget_min"`
	BudgetMax      float64        `json:"budget_max"`
	BudgetType     string         `json:"budget_type,omitempty"`
	Location       *user.Location `json:"location,omitempty"`
	IsRemote       bool           `json:"is_remote"`
	Deadline       *time.Time     `json:"deadline,omitempty"`
	RequiredSkills []string       `json:"required_skills"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Listing is one row of the public gig feed: the gig joined with its
// owner's display name.
type Listing struct {
	Gig
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Application struct {
	ID           uuid.UUID `json:"id"`
	GigID        uuid.UUID `json:"gig_id"`
	FreelancerID uuid.UUID `json:"freelancer_id"`
	CoverLetter  string    `json:"cover_letter"`
	ProposedRate float64   `json:"proposed_rate"`
	CreatedAt    time.Time `json:"created_at"`
}
