package router

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sessionauth/internal/auth"
	"sessionauth/internal/handler"
)

// Handlers groups the handler layer wired by Register.
type Handlers struct {
	Captcha *handler.CaptchaHandler
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Page    *handler.PageHandler
	Health  *handler.HealthHandler
}

// Route binds method+path to a handler behind an ordered guard chain.
type Route struct {
	Method  string
	Path    string
	Guards  []echo.MiddlewareFunc
	Handler echo.HandlerFunc
}

// Routes returns the route table. Guards run in the listed order and each
// one either passes or writes the only response of the request.
func Routes(h Handlers, guard *auth.Guard) []Route {
	apiJSON := guard.RequireSession(auth.JSONResponder)
	apiText := guard.RequireSession(auth.TextResponder("Database error"))
	page := guard.RequireSession(auth.RedirectResponder)
	landing := guard.RedirectIfSession("/dashboard.html")

	return []Route{
		{Method: http.MethodGet, Path: "/healthz", Handler: h.Health.Healthz},
		{Method: http.MethodGet, Path: "/captcha", Handler: h.Captcha.Issue},
		{Method: http.MethodGet, Path: "/logout", Handler: h.Auth.Logout},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},

		{Method: http.MethodGet, Path: "/api/user", Guards: []echo.MiddlewareFunc{apiJSON}, Handler: h.User.Me},
		{Method: http.MethodPost, Path: "/api/update-profile", Guards: []echo.MiddlewareFunc{apiText}, Handler: h.User.UpdateProfile},
		{Method: http.MethodPost, Path: "/api/update-password", Guards: []echo.MiddlewareFunc{apiText}, Handler: h.User.UpdatePassword},

		{Method: http.MethodGet, Path: "/", Guards: []echo.MiddlewareFunc{landing}, Handler: h.Page.Serve},
		{Method: http.MethodGet, Path: "/index.html", Guards: []echo.MiddlewareFunc{landing}, Handler: h.Page.Serve},
		{Method: http.MethodGet, Path: "/dashboard.html", Guards: []echo.MiddlewareFunc{page}, Handler: h.Page.Serve},
		{Method: http.MethodGet, Path: "/*", Handler: h.Page.Serve},
	}
}

// Register wires middleware, the route table and the API docs.
func Register(e *echo.Echo, log *slog.Logger, routes []Route) {
	e.Pre(cleanPath)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(log)))
	e.Use(middleware.Recover())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	for _, r := range routes {
		e.Add(r.Method, r.Path, r.Handler, r.Guards...)
	}
}

// cleanPath routes every alias of a path ("//a", "/./a", "/x/../a") as
// its canonical form, so guards bound to a path cannot be bypassed.
func cleanPath(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if cleaned := path.Clean("/" + req.URL.Path); cleaned != req.URL.Path {
			req.URL.Path = cleaned
			req.URL.RawPath = ""
		}
		return next(c)
	}
}

func requestLoggerConfig(log *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			log.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
