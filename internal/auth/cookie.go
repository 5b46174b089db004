package auth

import (
	"net/http"
	"time"

	"sessionauth/internal/credential"
)

// Cookie names shared with the browser scripts.
const (
	SessionCookieName = "session_id"
	CaptchaCookieName = "captcha_token"
)

// Cookies builds the cookies the service sets. All of them are HttpOnly
// and scoped to "/".
type Cookies struct {
	Secure     bool
	SessionTTL time.Duration
	CaptchaTTL time.Duration
}

// Session returns the cookie carrying a freshly issued session id.
func (c Cookies) Session(sessionID string) *http.Cookie {
	return c.cookie(SessionCookieName, sessionID, c.SessionTTL)
}

// Captcha returns the cookie binding the browser to an issued challenge.
func (c Cookies) Captcha(token string) *http.Cookie {
	return c.cookie(CaptchaCookieName, token, c.CaptchaTTL)
}

// ClearSession returns a cookie that makes the browser drop its session.
func (c Cookies) ClearSession() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serialized as Max-Age=0
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c Cookies) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ReadCookie returns the named cookie from the request's Cookie header,
// or "" when absent.
func ReadCookie(r *http.Request, name string) string {
	return credential.ParseCookies(r.Header.Get("Cookie"))[name]
}
