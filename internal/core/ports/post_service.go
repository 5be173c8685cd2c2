package ports

import (
	"context"

	"github.com/aceontech/content-api/internal/core/domain"
)

// CreatePostInput carries the pre-validated fields for a new post.
type CreatePostInput struct {
	Title       string
	Description string
}

// UpdatePostInput carries the mutable fields of an update request.
// Nil means the field was not supplied.
type UpdatePostInput struct {
	Title       *string
	Description *string
}

type PostService interface {
	Create(ctx context.Context, authorID string, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context, authorID string) ([]domain.Post, error)
	Update(ctx context.Context, authorID, postID string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, authorID, postID string) (*domain.Post, error)
}
