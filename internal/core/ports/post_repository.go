package ports

import (
	"context"

	"github.com/aceontech/content-api/internal/core/domain"
)

// PostRepository defines the persistence contract for posts. Ownership is
// part of the contract: mutating queries always filter by id and author, and
// a miss is reported as domain.ErrPostNotFound without revealing whether the
// post exists under another owner.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	UpdateByIDAndAuthor(ctx context.Context, id, authorID string, update domain.PostUpdate) (*domain.Post, error)
	DeleteByIDAndAuthor(ctx context.Context, id, authorID string) (*domain.Post, error)
}
