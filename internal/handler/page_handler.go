package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sessionauth/internal/static"
)

// PageHandler serves the browser UI from the public directory.
type PageHandler struct {
	dir *static.Dir
	log *slog.Logger
}

// NewPageHandler creates a static page handler.
func NewPageHandler(dir *static.Dir, log *slog.Logger) *PageHandler {
	return &PageHandler{dir: dir, log: log}
}

// Serve writes the file behind the request path.
func (h *PageHandler) Serve(c echo.Context) error {
	f, err := h.dir.Open(c.Request().URL.Path)
	if err != nil {
		return writeText(c, h.log, err, "Server error")
	}
	return c.Blob(http.StatusOK, f.ContentType, f.Content)
}
