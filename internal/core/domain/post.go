package domain

import "time"

// Author is the post author snapshot embedded in each post document so that
// reads do not need a second lookup.
type Author struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Post is the content aggregate. AuthorID is the owning user; every query
// against posts filters by it so one tenant can never see another's posts.
type Post struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	AuthorID    string    `json:"-" bson:"author_id"`
	Author      Author    `json:"user" bson:"author"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// PostUpdate carries the mutable post fields. Nil means "leave unchanged".
type PostUpdate struct {
	Title       *string
	Description *string
}
