package gig

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domaingig "gigconnect/internal/domain/gig"
	"gigconnect/internal/domain/user"
)

type mockGigRepo struct {
	created []domaingig.Gig
	known   map[uuid.UUID]bool
	listErr error
}

func (m *mockGigRepo) Create(_ context.Context, g domaingig.Gig) error {
	m.created = append(m.created, g)
	return nil
}

func (m *mockGigRepo) ListOpen(context.Context, int) ([]domaingig.Listing, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domaingig.Listing, 0, len(m.created))
	for _, g := range m.created {
		out = append(out, domaingig.Listing{Gig: g, FirstName: "Alice", LastName: "Smith"})
	}
	return out, nil
}

func (m *mockGigRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return m.known[id], nil
}

type mockApplicationRepo struct {
	applied map[[2]uuid.UUID]bool
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{applied: map[[2]uuid.UUID]bool{}}
}

func (m *mockApplicationRepo) Create(_ context.Context, a domaingig.Application) error {
	key := [2]uuid.UUID{a.GigID, a.FreelancerID}
	if m.applied[key] {
		return domaingig.ErrAlreadyApplied
	}
	m.applied[key] = true
	return nil
}

func (m *mockApplicationRepo) Exists(_ context.Context, gigID, freelancerID uuid.UUID) (bool, error) {
	return m.applied[[2]uuid.UUID{gigID, freelancerID}], nil
}

type noopUserRepo struct{}

func (noopUserRepo) Create(context.Context, user.User) error { return nil }
func (noopUserRepo) GetByID(context.Context, uuid.UUID) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (noopUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (noopUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (noopUserRepo) ListFreelancers(context.Context, int) ([]user.FreelancerListing, error) {
	return []user.FreelancerListing{}, nil
}

func TestCreateGig_RequiresTitleAndDescription(t *testing.T) {
	svc := NewService(&mockGigRepo{}, newMockApplicationRepo(), noopUserRepo{})

	_, err := svc.CreateGig(context.Background(), CreateGigInput{ClientID: uuid.New(), Title: "  ", Description: "d"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateGig_Defaults(t *testing.T) {
	repo := &mockGigRepo{}
	svc := NewService(repo, newMockApplicationRepo(), noopUserRepo{})

	clientID := uuid.New()
	g, err := svc.CreateGig(context.Background(), CreateGigInput{
		ClientID:    clientID,
		Title:       "Logo design",
		Description: "Need a logo",
		BudgetMin:   50,
		BudgetMax:   200,
	})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	if g.Status != domaingig.StatusOpen {
		t.Fatalf("expected status open, got %q", g.Status)
	}
	if g.ClientID != clientID {
		t.Fatalf("gig must be owned by the caller")
	}
	if g.RequiredSkills == nil {
		t.Fatalf("required skills must default to empty, not nil")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored gig, got %d", len(repo.created))
	}
}

func TestApply_DuplicateFails(t *testing.T) {
	gigID := uuid.New()
	freelancerID := uuid.New()

	gigs := &mockGigRepo{known: map[uuid.UUID]bool{gigID: true}}
	svc := NewService(gigs, newMockApplicationRepo(), noopUserRepo{})

	in := ApplyInput{GigID: gigID, FreelancerID: freelancerID, CoverLetter: "hi", ProposedRate: 40}

	if _, err := svc.Apply(context.Background(), in); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	_, err := svc.Apply(context.Background(), in)
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApply_UnknownGig(t *testing.T) {
	svc := NewService(&mockGigRepo{known: map[uuid.UUID]bool{}}, newMockApplicationRepo(), noopUserRepo{})

	_, err := svc.Apply(context.Background(), ApplyInput{GigID: uuid.New(), FreelancerID: uuid.New()})
	if !errors.Is(err, ErrGigNotFound) {
		t.Fatalf("expected ErrGigNotFound, got %v", err)
	}
	if !errors.Is(err, domaingig.ErrNotFound) {
		t.Fatalf("expected the domain not-found sentinel, got %v", err)
	}
}

func TestListOpenGigs_IncludesOwnerName(t *testing.T) {
	repo := &mockGigRepo{}
	svc := NewService(repo, newMockApplicationRepo(), noopUserRepo{})

	if _, err := svc.CreateGig(context.Background(), CreateGigInput{
		ClientID:    uuid.New(),
		Title:       "Logo design",
		Description: "Need a logo",
	}); err != nil {
		t.Fatalf("create gig: %v", err)
	}

	listings, err := svc.ListOpenGigs(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].FirstName != "Alice" {
		t.Fatalf("expected owner first name, got %q", listings[0].FirstName)
	}
}
