// Package respond owns the response envelope shared by every endpoint and
// the classifier that maps any failure to a status code and safe message.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aceontech/content-api/internal/core/domain"
)

// Envelope is the wrapper present on every JSON response. Success and Error
// are always complementary; Message is null exactly when the request
// succeeded.
type Envelope struct {
	Success bool    `json:"success"`
	Error   bool    `json:"error"`
	Message *string `json:"message"`
}

// Success returns the envelope for a successful response.
func Success() Envelope {
	return Envelope{Success: true}
}

// Failure returns the envelope for a failed response carrying msg.
func Failure(msg string) Envelope {
	return Envelope{Error: true, Message: &msg}
}

// Classify maps a failure to its HTTP status and client-safe message. It is
// pure and deterministic: the same error always classifies to the same pair.
// Precedence:
//  1. *domain.AppError — surfaced verbatim (validation, auth preconditions,
//     ownership checks set both message and status at the raise site).
//  2. Recognized store signals — entity-specific generic messages that do not
//     distinguish "absent" from "not yours".
//  3. *echo.HTTPError — router misses and bind failures keep their code.
//  4. Anything else — 500 with a fixed message; the cause never reaches the
//     wire.
func Classify(err error) (int, string) {
	var app *domain.AppError
	if errors.As(err, &app) {
		return app.Status, app.Message
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "no post found or this post does not belong to you"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	return http.StatusInternalServerError, "internal server error"
}
