package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sessionauth/internal/auth"
	"sessionauth/internal/captcha"
	"sessionauth/internal/service"
)

// CaptchaHandler issues human-verification challenges.
type CaptchaHandler struct {
	captchas service.CaptchaService
	cookies  auth.Cookies
	log      *slog.Logger
}

// NewCaptchaHandler creates a new captcha handler.
func NewCaptchaHandler(captchas service.CaptchaService, cookies auth.Cookies, log *slog.Logger) *CaptchaHandler {
	return &CaptchaHandler{captchas: captchas, cookies: cookies, log: log}
}

// Issue godoc
// @Summary Issue a captcha challenge
// @Description Returns an SVG image and binds the browser to the challenge with the captcha_token cookie.
// @Tags auth
// @Produce image/svg+xml
// @Success 200 {file} binary
// @Failure 500 {string} string
// @Router /captcha [get]
func (h *CaptchaHandler) Issue(c echo.Context) error {
	challenge, err := h.captchas.Issue(c.Request().Context())
	if err != nil {
		return writeText(c, h.log, err, "Server error")
	}

	c.SetCookie(h.cookies.Captcha(challenge.Token))
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, captcha.ContentType, challenge.Image)
}
