package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aceontech/content-api/internal/api/metrics"
	"github.com/aceontech/content-api/internal/api/middleware"
	"github.com/aceontech/content-api/internal/api/respond"
	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
)

// CookieOptions controls the attributes of the jwt cookie set at login and
// signup. HTTPOnly and Secure are relaxed in development and hardened
// everywhere else.
type CookieOptions struct {
	MaxAge   int
	HTTPOnly bool
	Secure   bool
}

// UserHandler handles signup and login.
type UserHandler struct {
	auth    ports.AuthService
	cookies CookieOptions
	logger  zerolog.Logger
}

func NewUserHandler(auth ports.AuthService, cookies CookieOptions, logger zerolog.Logger) *UserHandler {
	return &UserHandler{auth: auth, cookies: cookies, logger: logger}
}

// Signup creates an account and issues a credential.
//
// @Summary      Create a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      409   {object}  authResponse
// @Failure      422   {object}  authResponse
// @Router       /api/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, domain.NewAppError("invalid request body", http.StatusBadRequest))
	}
	if err := c.Validate(&req); err != nil {
		return h.fail(c, err)
	}

	signed, user, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		PhotoURI: req.PhotoURI,
	})
	if err != nil {
		return h.fail(c, err)
	}

	h.deliverCredential(c, signed)
	metrics.TokensIssuedTotal.WithLabelValues("signup").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Envelope: respond.Success(),
		Token:    &signed,
		User:     newUserView(user),
	})
}

// Login verifies credentials and issues a token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  authResponse
// @Failure      404   {object}  authResponse
// @Router       /api/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, domain.NewAppError("invalid request body", http.StatusBadRequest))
	}
	if err := c.Validate(&req); err != nil {
		return h.fail(c, err)
	}

	signed, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			err = domain.NewAppError("no user found", http.StatusNotFound)
		}
		return h.fail(c, err)
	}

	h.deliverCredential(c, signed)
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Envelope: respond.Success(),
		Token:    &signed,
		User:     newUserView(user),
	})
}

// deliverCredential sets both transport artifacts so either delivery mode
// works on later requests: the jwt cookie and the Authorization header.
func (h *UserHandler) deliverCredential(c echo.Context, signed string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    signed,
		MaxAge:   h.cookies.MaxAge,
		Path:     "/",
		HttpOnly: h.cookies.HTTPOnly,
		Secure:   h.cookies.Secure,
	})
	c.Response().Header().Set("Authorization", "Bearer "+signed)
}

// fail renders the failure envelope with explicit null token and user.
func (h *UserHandler) fail(c echo.Context, err error) error {
	code, msg := respond.Classify(err)
	if code == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}
	return c.JSON(code, authResponse{Envelope: respond.Failure(msg)})
}
