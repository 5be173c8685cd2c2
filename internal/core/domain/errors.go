package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrPostNotFound = errors.New("post not found or not owned by caller")

// AppError is a precondition failure raised by validation or ownership
// checks. It carries the exact message and HTTP status to surface, unlike
// sentinel errors which are mapped by the classifier.
type AppError struct {
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError builds an AppError with the given safe message and status.
func NewAppError(message string, status int) *AppError {
	return &AppError{Message: message, Status: status}
}
