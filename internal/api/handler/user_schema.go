package handler

import (
	"github.com/aceontech/content-api/internal/api/respond"
	"github.com/aceontech/content-api/internal/core/domain"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	PhotoURI string `json:"photo_uri"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type userView struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURI string `json:"photo_uri,omitempty"`
}

func newUserView(u *domain.User) *userView {
	return &userView{Name: u.Name, Email: u.Email, PhotoURI: u.PhotoURI}
}

// authResponse is the envelope for login and signup. Token and User are
// explicit nulls on failure, never absent.
type authResponse struct {
	respond.Envelope
	Token *string   `json:"token"`
	User  *userView `json:"user"`
}
