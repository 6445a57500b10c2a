package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is an immutable membership tag, not a hierarchy: it only governs
// which actions a user may perform.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	RoleBoth       Role = "both"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleFreelancer, RoleBoth:
		return true
	}
	return false
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Location     *Location `json:"location,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FreelancerListing is one row of the public freelancer directory: the user
// joined with their profile, profile fields defaulted when absent.
type FreelancerListing struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Title           string    `json:"title"`
	HourlyRate      float64   `json:"hourly_rate"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experience_years"`
}
