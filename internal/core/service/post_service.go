package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
)

// PostService implements post CRUD scoped to the authenticated author.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create stores a new post with an author snapshot taken from the live user
// record, so reads never need a join.
func (s *PostService) Create(ctx context.Context, authorID string, input ports.CreatePostInput) (*domain.Post, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID: author.ID,
		Author: domain.Author{
			Name:  author.Name,
			Email: author.Email,
		},
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", authorID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", authorID).Msg("post created")
	return created, nil
}

// List returns all posts owned by the caller.
func (s *PostService) List(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// Update mutates a post the caller owns. A post that does not exist or
// belongs to someone else fails with domain.ErrPostNotFound either way.
func (s *PostService) Update(ctx context.Context, authorID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
	updated, err := s.posts.UpdateByIDAndAuthor(ctx, postID, authorID, domain.PostUpdate{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", postID).Str("author_id", authorID).Msg("post updated")
	return updated, nil
}

// Delete removes a post the caller owns and returns the removed document.
func (s *PostService) Delete(ctx context.Context, authorID, postID string) (*domain.Post, error) {
	deleted, err := s.posts.DeleteByIDAndAuthor(ctx, postID, authorID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", postID).Str("author_id", authorID).Msg("post deleted")
	return deleted, nil
}
