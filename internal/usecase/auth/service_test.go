package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gigconnect/internal/domain/user"
	"gigconnect/internal/pkg/jwt"
)

type mockUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User

	createErr error
	existsErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: map[string]user.User{},
		byID:    map[uuid.UUID]user.User{},
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) ListFreelancers(context.Context, int) ([]user.FreelancerListing, error) {
	return nil, nil
}

type stubTokens struct {
	issued string
	err    error
}

func (s stubTokens) Issue(uuid.UUID, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.issued, nil
}

func (s stubTokens) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "alice@x.com",
		Password:  "password123",
		Role:      "client",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, stubTokens{issued: "tok"})

	if _, _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(repo.byEmail))
	}

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("second attempt must not store a user, got %d", len(repo.byEmail))
	}
}

func TestRegister_EmailNormalized(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, stubTokens{issued: "tok"})

	in := validRegisterInput()
	in.Email = "  Alice@X.com "
	u, tok, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "alice@x.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if tok != "tok" {
		t.Fatalf("expected issued token, got %q", tok)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := NewService(newMockUserRepo(), stubTokens{issued: "tok"})

	in := validRegisterInput()
	in.Role = "admin"
	if _, _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	id := uuid.New()
	repo.byEmail["alice@x.com"] = user.User{ID: id, Email: "alice@x.com", PasswordHash: string(hash), Role: user.RoleClient}
	repo.byID[id] = repo.byEmail["alice@x.com"]

	svc := NewService(repo, stubTokens{issued: "tok"})

	// Close misses are still misses.
	for _, pw := range []string{"correct-passwor", "correct-password ", "Correct-password", ""} {
		_, _, err := svc.Login(context.Background(), LoginInput{Email: "alice@x.com", Password: pw})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("password %q: expected ErrInvalidCredentials, got %v", pw, err)
		}
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo(), stubTokens{issued: "tok"})

	_, _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, stubTokens{issued: "tok"})

	if _, _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, tok, err := svc.Login(context.Background(), LoginInput{Email: "alice@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok != "tok" {
		t.Fatalf("expected token, got %q", tok)
	}
	if u.FirstName != "Alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
