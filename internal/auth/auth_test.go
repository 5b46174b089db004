package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/logging"
	"sessionauth/internal/model"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) New(userID uint) (*model.Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) Create(ctx context.Context, userID uint) (*model.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, sessionID string) (*model.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockSessionService) Invalidate(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func serve(mw echo.MiddlewareFunc, cookie string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		user := UserFrom(c)
		if user == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, user.Email)
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireSession(t *testing.T) {
	user := &model.User{ID: 7, Email: "a@b.com"}

	tests := []struct {
		name      string
		cookie    string
		responder Responder
		setupMock func(*MockSessionService)
		wantCode  int
		wantBody  string
		location  string
	}{
		{
			name:      "live session passes user on",
			cookie:    "theme=dark; session_id=sid",
			responder: JSONResponder,
			setupMock: func(m *MockSessionService) {
				m.On("Validate", mock.Anything, "sid").Return(user, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "a@b.com",
		},
		{
			name:      "no cookie json",
			responder: JSONResponder,
			wantCode:  http.StatusUnauthorized,
			wantBody:  `{"error":"Unauthorized"}` + "\n",
		},
		{
			name:      "expired session text",
			cookie:    "session_id=sid",
			responder: TextResponder("Database error"),
			setupMock: func(m *MockSessionService) {
				m.On("Validate", mock.Anything, "sid").Return(nil, apperrors.ErrSessionExpired)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: "Session expired",
		},
		{
			name:      "storage error text uses fallback",
			cookie:    "session_id=sid",
			responder: TextResponder("Database error"),
			setupMock: func(m *MockSessionService) {
				m.On("Validate", mock.Anything, "sid").Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "Database error",
		},
		{
			name:      "page redirect",
			cookie:    "session_id=sid",
			responder: RedirectResponder,
			setupMock: func(m *MockSessionService) {
				m.On("Validate", mock.Anything, "sid").Return(nil, apperrors.ErrSessionExpired)
			},
			wantCode: http.StatusFound,
			location: "/",
		},
		{
			name:      "page storage error",
			cookie:    "session_id=sid",
			responder: RedirectResponder,
			setupMock: func(m *MockSessionService) {
				m.On("Validate", mock.Anything, "sid").Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessionService)
			if tt.setupMock != nil {
				tt.setupMock(sessions)
			}
			guard := NewGuard(sessions, logging.Discard())

			rec := serve(guard.RequireSession(tt.responder), tt.cookie)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
			}
			sessions.AssertExpectations(t)
		})
	}
}

func TestRedirectIfSession(t *testing.T) {
	tests := []struct {
		name     string
		cookie   string
		result   error
		wantCode int
	}{
		{"anonymous falls through", "", nil, http.StatusOK},
		{"live session redirects", "session_id=sid", nil, http.StatusFound},
		{"expired falls through", "session_id=sid", apperrors.ErrSessionExpired, http.StatusOK},
		{"storage error falls through", "session_id=sid", errors.New("db down"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessionService)
			if tt.cookie != "" {
				if tt.result == nil {
					sessions.On("Validate", mock.Anything, "sid").Return(&model.User{ID: 1}, nil)
				} else {
					sessions.On("Validate", mock.Anything, "sid").Return(nil, tt.result)
				}
			}
			guard := NewGuard(sessions, logging.Discard())

			rec := serve(guard.RedirectIfSession("/dashboard.html"), tt.cookie)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusFound {
				assert.Equal(t, "/dashboard.html", rec.Header().Get(echo.HeaderLocation))
			} else {
				assert.Equal(t, "anonymous", rec.Body.String())
			}
		})
	}
}

func TestCookies(t *testing.T) {
	cookies := Cookies{Secure: true, SessionTTL: 24 * time.Hour, CaptchaTTL: 5 * time.Minute}

	s := cookies.Session("sid").String()
	assert.Contains(t, s, "session_id=sid")
	assert.Contains(t, s, "Path=/")
	assert.Contains(t, s, "Max-Age=86400")
	assert.Contains(t, s, "HttpOnly")
	assert.Contains(t, s, "Secure")

	assert.Contains(t, cookies.Captcha("tok").String(), "Max-Age=300")

	cleared := cookies.ClearSession().String()
	assert.Contains(t, cleared, "session_id=;")
	assert.Contains(t, cleared, "Max-Age=0")
}

func TestReadCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ReadCookie(req, SessionCookieName))

	req.Header.Set("Cookie", "captcha_token=a%20b; session_id=sid")
	require.Equal(t, "sid", ReadCookie(req, SessionCookieName))
	assert.Equal(t, "a b", ReadCookie(req, CaptchaCookieName))
}
