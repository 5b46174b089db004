package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "sessionauth/internal/errors"
)

// bindJSON decodes the whole request body as JSON regardless of the
// declared content type.
func bindJSON(c echo.Context, dst interface{}) error {
	if err := c.Echo().JSONSerializer.Deserialize(c, dst); err != nil {
		return apperrors.ErrInvalidBody
	}
	return nil
}

// writeText answers err as plain text. Unclassified errors are logged
// and replaced by fallback.
func writeText(c echo.Context, log *slog.Logger, err error, fallback string) error {
	logInternal(c, log, err)
	httpErr := apperrors.MapErrorToHTTP(err, fallback)
	return c.String(httpErr.StatusCode, httpErr.Message)
}

// writeJSON answers err as a JSON {"error": ...} body.
func writeJSON(c echo.Context, log *slog.Logger, err error, fallback string) error {
	logInternal(c, log, err)
	httpErr := apperrors.MapErrorToHTTP(err, fallback)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func logInternal(c echo.Context, log *slog.Logger, err error) {
	if !apperrors.Internal(err) {
		return
	}
	log.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err,
	)
}
