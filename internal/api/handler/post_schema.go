package handler

import (
	"time"

	"github.com/aceontech/content-api/internal/api/respond"
	"github.com/aceontech/content-api/internal/core/domain"
)

type createPostRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

type updatePostRequest struct {
	PostID      string  `json:"post_id" validate:"required"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
}

type deletePostRequest struct {
	PostID string `json:"post_id" validate:"required"`
}

// postSummary is the payload returned right after creation.
type postSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// postDetail is the full payload including the author snapshot.
type postDetail struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	User        userView  `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
}

func newPostSummary(p *domain.Post) *postSummary {
	return &postSummary{ID: p.ID, Title: p.Title, Description: p.Description}
}

func newPostDetail(p *domain.Post) *postDetail {
	return &postDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		User:        userView{Name: p.Author.Name, Email: p.Author.Email},
		CreatedAt:   p.CreatedAt,
	}
}

type createPostResponse struct {
	respond.Envelope
	Post *postSummary `json:"post"`
}

type postResponse struct {
	respond.Envelope
	Post *postDetail `json:"post"`
}

type listPostsResponse struct {
	respond.Envelope
	Posts []postDetail `json:"posts"`
}
