package ports

import (
	"context"

	"github.com/aceontech/content-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Absence is signalled with domain.ErrUserNotFound, distinct from storage
// failures.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
