package domain

import "time"

// User models an account in the system. Email is unique across all users.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PhotoURI     string    `json:"photo_uri,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the minimal authenticated caller resolved from the live user
// store on every protected request. It lives only for the request that
// produced it.
type Identity struct {
	ID string `json:"id"`
}
