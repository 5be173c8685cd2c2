package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) Signup(context.Context, ports.SignupInput) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

type authBody struct {
	Success bool    `json:"success"`
	Error   bool    `json:"error"`
	Message *string `json:"message"`
	Token   *string `json:"token"`
	User    *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func postJSON(t *testing.T, e *echo.Echo, path, payload string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func decodeAuthBody(t *testing.T, rec *httptest.ResponseRecorder) authBody {
	t.Helper()
	var body authBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func newUserHandler(svc ports.AuthService) (*UserHandler, *echo.Echo) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewUserHandler(svc, CookieOptions{MaxAge: 86400}, zerolog.Nop())
	return h, e
}

func TestUserHandler_Login_Success(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u1", Name: "alice", Email: "alice@example.com"},
	})

	rec, c := postJSON(t, e, "/api/login", `{"email":"alice@example.com","password":"pass12345"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if !body.Success || body.Error || body.Message != nil {
		t.Fatalf("envelope invariant broken: %+v", body)
	}
	if body.Token == nil || *body.Token != "signed-token" {
		t.Fatalf("expected token in payload, got %v", body.Token)
	}
	if body.User == nil || body.User.Email != "alice@example.com" {
		t.Fatalf("expected user email in payload, got %+v", body.User)
	}

	setCookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "jwt=signed-token") || !strings.Contains(setCookie, "Max-Age=86400") {
		t.Fatalf("unexpected Set-Cookie header: %q", setCookie)
	}
	if got := rec.Header().Get("Authorization"); got != "Bearer signed-token" {
		t.Fatalf("unexpected Authorization header: %q", got)
	}
}

func TestUserHandler_Login_WrongPassword(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	rec, c := postJSON(t, e, "/api/login", `{"email":"alice@example.com","password":"wrongpass1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Message == nil || *body.Message != "invalid email or password" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
	if body.Token != nil || body.User != nil {
		t.Fatalf("payload must be null on failure: %+v", body)
	}
}

func TestUserHandler_Login_UnknownEmail(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{err: domain.ErrUserNotFound})

	rec, c := postJSON(t, e, "/api/login", `{"email":"ghost@example.com","password":"pass12345"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Message == nil || *body.Message != "no user found" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
}

func TestUserHandler_Login_MissingFields(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{})

	rec, c := postJSON(t, e, "/api/login", `{}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Message == nil || *body.Message != "email,password is missing from the body" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
}

func TestUserHandler_Login_InvalidEmail(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{})

	rec, c := postJSON(t, e, "/api/login", `{"email":"not-an-email","password":"pass12345"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Message == nil || *body.Message != "invalid email address" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
}

func TestUserHandler_Signup_Success(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{
		token: "fresh-token",
		user:  &domain.User{ID: "u2", Name: "bob", Email: "bob@example.com"},
	})

	rec, c := postJSON(t, e, "/api/signup",
		`{"name":"bob","email":"bob@example.com","password":"pass12345"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Token == nil || *body.Token != "fresh-token" {
		t.Fatalf("expected token, got %v", body.Token)
	}
	if rec.Header().Get("Authorization") == "" || rec.Header().Get("Set-Cookie") == "" {
		t.Fatalf("credential delivery headers missing")
	}
}

func TestUserHandler_Signup_Duplicate(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{err: domain.ErrUserExists})

	rec, c := postJSON(t, e, "/api/signup",
		`{"name":"bob","email":"bob@example.com","password":"pass12345"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Message == nil || *body.Message != "user already exists" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
}

func TestUserHandler_Signup_ShortPassword(t *testing.T) {
	h, e := newUserHandler(&stubAuthService{})

	rec, c := postJSON(t, e, "/api/signup",
		`{"name":"bob","email":"bob@example.com","password":"short"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := decodeAuthBody(t, rec)
	if body.Message == nil || *body.Message != "password is too short" {
		t.Fatalf("unexpected message: %v", body.Message)
	}
}
