package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
	"github.com/aceontech/content-api/internal/core/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo ports.UserRepository) *AuthService {
	tokens := token.NewManager("secret", time.Hour)
	return NewAuthService(repo, tokens, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	signed, user, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "pass12345",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := ports.SignupInput{Name: "bob", Email: "bob@example.com", Password: "pass12345"}
	if _, _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "carol", Email: "carol@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The issued credential must round-trip back to the same claims.
	claims, err := token.NewManager("secret", time.Hour).Verify(signed)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Name != "carol" || claims.Email != "carol@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _, _ = svc.Signup(context.Background(), ports.SignupInput{
		Name: "dave", Email: "dave@example.com", Password: "goodpass1",
	})

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass12"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
