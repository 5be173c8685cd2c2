package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aceontech/content-api/internal/api/metrics"
	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
	"github.com/aceontech/content-api/internal/core/token"
)

// IdentityKey is the echo context key under which the resolved
// domain.Identity is stored.
const IdentityKey = "identity"

// CookieName is the cookie carrying the credential when no Authorization
// header is sent.
const CookieName = "jwt"

// Auth runs the authentication chain on every protected request:
// extract the credential from header or cookie, verify its signature and
// expiry, re-resolve the claimed email against the live user store, and
// attach the resolved identity to the request context.
//
// The store lookup is deliberately repeated on every request. A signature
// alone does not prove the account still exists; a user deleted after
// issuance fails here with 404 even though the token verifies.
func Auth(tokens *token.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractCredential(c)
			if raw == "" {
				metrics.AuthAttemptsTotal.WithLabelValues("missing_credential").Inc()
				return domain.NewAppError("please login first", http.StatusUnauthorized)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				// One message for every verification failure so the
				// reason is never revealed.
				metrics.AuthAttemptsTotal.WithLabelValues("invalid_token").Inc()
				return domain.NewAppError("invalid or expired credential", http.StatusUnauthorized)
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				outcome := "store_error"
				if errors.Is(err, domain.ErrUserNotFound) {
					outcome = "unknown_user"
				}
				metrics.AuthAttemptsTotal.WithLabelValues(outcome).Inc()
				return err
			}

			c.Set(IdentityKey, domain.Identity{ID: user.ID})
			metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

			return next(c)
		}
	}
}

// extractCredential pulls the raw token from the Authorization header
// (literal "Bearer" prefix, token after the first space) or, failing that,
// from the jwt cookie. The header wins when both are present.
func extractCredential(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer") {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}
