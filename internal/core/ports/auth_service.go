package ports

import (
	"context"

	"github.com/aceontech/content-api/internal/core/domain"
)

// SignupInput carries the pre-validated fields for account creation.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	PhotoURI string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
