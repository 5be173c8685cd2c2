package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
	"github.com/aceontech/content-api/internal/core/token"
)

// AuthService implements signup and login, including credential issuance.
type AuthService struct {
	repo       ports.UserRepository
	tokens     *token.Manager
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// Signup creates an account and returns a freshly issued credential for it.
// A duplicate email fails with domain.ErrUserExists.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhotoURI:     input.PhotoURI,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	signed, err := s.tokens.Issue(created.Name, created.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user created")

	return signed, created, nil
}

// Login verifies email and password against the store and issues a
// credential. An unknown email surfaces as domain.ErrUserNotFound; a wrong
// password as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Name, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return signed, user, nil
}
