package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aceontech/content-api/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

type envelopeBody struct {
	Success bool    `json:"success"`
	Error   bool    `json:"error"`
	Message *string `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestErrorHandler_AppErrorVerbatim(t *testing.T) {
	rec := render(t, domain.NewAppError("post_id is missing from the body", http.StatusBadRequest))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body.Success || !body.Error {
		t.Fatalf("envelope invariant broken: %+v", body)
	}
	if body.Message == nil || *body.Message != "post_id is missing from the body" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec := render(t, errors.New("mongo: socket was unexpectedly closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body.Message == nil || *body.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body.Message)
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	// A response is emitted exactly once per request.
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("committed response was overwritten: %d %q", rec.Code, rec.Body.String())
	}
}
