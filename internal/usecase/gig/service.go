package gig

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domaingig "gigconnect/internal/domain/gig"
	"gigconnect/internal/domain/user"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrGigNotFound    = domaingig.ErrNotFound
	ErrAlreadyApplied = errors.New("already applied to this gig")
	ErrInternal       = errors.New("internal error")
)

const listingLimit = 50

type CreateGigInput struct {
	ClientID       uuid.UUID
	Title          string
	Description    string
	Category       string
	BudgetMin      float64
	BudgetMax      float64
	BudgetType     string
	Location       *user.Location
	IsRemote       bool
	Deadline       *time.Time
	RequiredSkills []string
}

type ApplyInput struct {
	GigID        uuid.UUID
	FreelancerID uuid.UUID
	CoverLetter  string
	ProposedRate float64
}

type Usecase interface {
	CreateGig(ctx context.Context, in CreateGigInput) (domaingig.Gig, error)
	ListOpenGigs(ctx context.Context) ([]domaingig.Listing, error)
	ListFreelancers(ctx context.Context) ([]user.FreelancerListing, error)
	Apply(ctx context.Context, in ApplyInput) (domaingig.Application, error)
}

type Service struct {
	gigs         domaingig.Repository
	applications domaingig.ApplicationRepository
	users        user.Repository
}

func NewService(gigs domaingig.Repository, applications domaingig.ApplicationRepository, users user.Repository) *Service {
	return &Service{gigs: gigs, applications: applications, users: users}
}

func (s *Service) CreateGig(ctx context.Context, in CreateGigInput) (domaingig.Gig, error) {
	title := strings.TrimSpace(in.Title)
	if in.ClientID == uuid.Nil || title == "" || strings.TrimSpace(in.Description) == "" {
		return domaingig.Gig{}, ErrInvalidInput
	}

	g := domaingig.Gig{
		ID:             uuid.New(),
		ClientID:       in.ClientID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Category:       strings.TrimSpace(in.Category),
		BudgetMin:      in.BudgetMin,
		BudgetMax:      in.BudgetMax,
		BudgetType:     strings.TrimSpace(in.BudgetType),
		Location:       in.Location,
		IsRemote:       in.IsRemote,
		Deadline:       in.Deadline,
		RequiredSkills: in.RequiredSkills,
		Status:         domaingig.StatusOpen,
		CreatedAt:      time.Now().UTC(),
	}
	if g.RequiredSkills == nil {
		g.RequiredSkills = []string{}
	}

	if err := s.gigs.Create(ctx, g); err != nil {
		return domaingig.Gig{}, ErrInternal
	}
	return g, nil
}

func (s *Service) ListOpenGigs(ctx context.Context) ([]domaingig.Listing, error) {
	out, err := s.gigs.ListOpen(ctx, listingLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) ListFreelancers(ctx context.Context) ([]user.FreelancerListing, error) {
	out, err := s.users.ListFreelancers(ctx, listingLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (domaingig.Application, error) {
	if in.GigID == uuid.Nil || in.FreelancerID == uuid.Nil {
		return domaingig.Application{}, ErrInvalidInput
	}

	exists, err := s.gigs.ExistsByID(ctx, in.GigID)
	if err != nil {
		return domaingig.Application{}, ErrInternal
	}
	if !exists {
		return domaingig.Application{}, ErrGigNotFound
	}

	applied, err := s.applications.Exists(ctx, in.GigID, in.FreelancerID)
	if err != nil {
		return domaingig.Application{}, ErrInternal
	}
	if applied {
		return domaingig.Application{}, ErrAlreadyApplied
	}

	a := domaingig.Application{
		ID:           uuid.New(),
		GigID:        in.GigID,
		FreelancerID: in.FreelancerID,
		CoverLetter:  strings.TrimSpace(in.CoverLetter),
		ProposedRate: in.ProposedRate,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.applications.Create(ctx, a); err != nil {
		if errors.Is(err, domaingig.ErrAlreadyApplied) {
			return domaingig.Application{}, ErrAlreadyApplied
		}
		return domaingig.Application{}, ErrInternal
	}
	return a, nil
}
