package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/model"
	"sessionauth/internal/service"
)

const userContextKey = "auth.user"

// Responder writes the single terminal response for a failed guard.
type Responder func(c echo.Context, err error) error

// JSONResponder answers guard failures with a JSON {"error": ...} body.
func JSONResponder(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err, "Server error")
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// TextResponder answers guard failures with a plain-text body; storage
// errors carry fallback.
func TextResponder(fallback string) Responder {
	return func(c echo.Context, err error) error {
		httpErr := apperrors.MapErrorToHTTP(err, fallback)
		return c.String(httpErr.StatusCode, httpErr.Message)
	}
}

// RedirectResponder sends anonymous visitors back to the landing page.
func RedirectResponder(c echo.Context, err error) error {
	if apperrors.Internal(err) {
		return c.String(http.StatusInternalServerError, "Server error")
	}
	return c.Redirect(http.StatusFound, "/")
}

// Guard resolves the session cookie of a request to its user.
type Guard struct {
	sessions service.SessionService
	log      *slog.Logger
}

// NewGuard creates a session guard.
func NewGuard(sessions service.SessionService, log *slog.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// RequireSession admits only requests carrying a live session. The user
// is available to the next handler through UserFrom.
func (g *Guard) RequireSession(fail Responder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ReadCookie(c.Request(), SessionCookieName)
			if sessionID == "" {
				return fail(c, apperrors.ErrUnauthorized)
			}

			user, err := g.sessions.Validate(c.Request().Context(), sessionID)
			if err != nil {
				if apperrors.Internal(err) {
					g.log.ErrorContext(c.Request().Context(), "validate session",
						"path", c.Path(), "error", err)
				}
				return fail(c, err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RedirectIfSession sends visitors that already hold a live session to
// target. Everything else, storage errors included, falls through.
func (g *Guard) RedirectIfSession(target string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ReadCookie(c.Request(), SessionCookieName)
			if sessionID == "" {
				return next(c)
			}

			_, err := g.sessions.Validate(c.Request().Context(), sessionID)
			switch {
			case err == nil:
				return c.Redirect(http.StatusFound, target)
			case errors.Is(err, apperrors.ErrSessionExpired):
			default:
				g.log.WarnContext(c.Request().Context(), "auto-login lookup failed", "error", err)
			}
			return next(c)
		}
	}
}

// UserFrom returns the user stored by RequireSession.
func UserFrom(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
