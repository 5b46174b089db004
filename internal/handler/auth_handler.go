package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sessionauth/internal/auth"
	"sessionauth/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	cookies     auth.Cookies
	log         *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookies auth.Cookies, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies, log: log}
}

// Register godoc
// @Summary Register a new user
// @Description Requires the captcha_token cookie from GET /captcha. Sets the session_id cookie on success.
// @Tags auth
// @Accept json
// @Produce plain
// @Param request body service.RegisterInput true "Registration data"
// @Success 200 {string} string "Successful Registration and Logged In"
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Failure 500 {string} string
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := bindJSON(c, &req); err != nil {
		return writeText(c, h.log, err, "Error in registration")
	}

	captchaToken := auth.ReadCookie(c.Request(), auth.CaptchaCookieName)
	session, err := h.authService.Register(c.Request().Context(), captchaToken, req)
	if err != nil {
		return writeText(c, h.log, err, "Error in registration")
	}

	c.SetCookie(h.cookies.Session(session.SessionID))
	return c.String(http.StatusOK, "Successful Registration and Logged In")
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce plain
// @Param request body service.LoginInput true "Login credentials"
// @Success 200 {string} string "Login Successful"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 500 {string} string
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req service.LoginInput
	if err := bindJSON(c, &req); err != nil {
		return writeText(c, h.log, err, "Server error during login")
	}

	session, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return writeText(c, h.log, err, "Server error during login")
	}

	c.SetCookie(h.cookies.Session(session.SessionID))
	return c.String(http.StatusOK, "Login Successful")
}

// Logout godoc
// @Summary Logout user
// @Description Deletes the session server-side and clears the cookie. Always redirects.
// @Tags auth
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := auth.ReadCookie(c.Request(), auth.SessionCookieName)
	if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
		h.log.WarnContext(c.Request().Context(), "logout: delete session", "error", err)
	}

	c.SetCookie(h.cookies.ClearSession())
	return c.Redirect(http.StatusFound, "/")
}
