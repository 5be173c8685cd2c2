package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aceontech/content-api/internal/api/middleware"
	"github.com/aceontech/content-api/internal/core/domain"
)

// currentUserID extracts the identity attached by the Auth middleware.
// Its presence proves the middleware ran; an empty value on a protected
// route is a wiring defect and is rejected rather than trusted.
func currentUserID(c echo.Context) (string, error) {
	identity, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	if identity.ID == "" {
		return "", domain.NewAppError("please login first", http.StatusUnauthorized)
	}
	return identity.ID, nil
}
