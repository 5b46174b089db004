package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sessionauth/internal/auth"
	"sessionauth/internal/service"
)

// UserHandler serves the authenticated user's own account.
type UserHandler struct {
	svc service.UserService
	log *slog.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// UpdateProfileRequest represents a profile update.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdatePasswordRequest represents a password change.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/user [get]
func (h *UserHandler) Me(c echo.Context) error {
	user := auth.UserFrom(c)
	return c.JSON(http.StatusOK, UserResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

// UpdateProfile godoc
// @Summary Update first and last name
// @Tags users
// @Accept json
// @Produce plain
// @Param request body UpdateProfileRequest true "New names"
// @Success 200 {string} string "Profile Updated Successfully"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 500 {string} string
// @Router /api/update-profile [post]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return writeText(c, h.log, err, "Database error")
	}

	user := auth.UserFrom(c)
	if err := h.svc.UpdateProfile(c.Request().Context(), user.ID, req.FirstName, req.LastName); err != nil {
		return writeText(c, h.log, err, "Database error")
	}
	return c.String(http.StatusOK, "Profile Updated Successfully")
}

// UpdatePassword godoc
// @Summary Change password
// @Description A too short new password answers 401, kept for client compatibility.
// @Tags users
// @Accept json
// @Produce plain
// @Param request body UpdatePasswordRequest true "Old and new password"
// @Success 200 {string} string "Password Changed Successfully"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 500 {string} string
// @Router /api/update-password [post]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		return writeText(c, h.log, err, "Database error")
	}

	user := auth.UserFrom(c)
	if err := h.svc.ChangePassword(c.Request().Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		return writeText(c, h.log, err, "Database error")
	}
	return c.String(http.StatusOK, "Password Changed Successfully")
}
