package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aceontech/content-api/internal/api/respond"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Classifies the failure through respond.Classify.
//   - Logs unclassified errors internally without leaking details to the
//     client.
//   - Renders the standard envelope: {"success": false, "error": true,
//     "message": "<safe message>"}.
//
// Failures escaping handlers that render their own typed envelope (login,
// signup, posts) land here too, so nothing ever reaches the wire unmapped.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := respond.Classify(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		_ = c.JSON(code, respond.Failure(msg))
	}
}
