package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/internal/utils"
	"github.com/drivesense/drivesense-backend/services/user"
)

// AuthHandler handles HTTP requests for login and password reset
type AuthHandler struct {
	userUC user.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC user.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Login handles credential verification
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Missing required fields: email and password")
	}

	usr, err := h.userUC.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed",
			logger.Err(err),
			logger.String("email", req.Email))
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", usr)
}

// RequestPasswordReset issues a reset token for the given email
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req models.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Missing required field: email")
	}

	token, err := h.userUC.RequestPasswordReset(c.Request().Context(), req.Email)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset token issued", token)
}

// ConfirmPasswordReset consumes a reset token and sets the new password
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req models.PasswordResetConfirm
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Token == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Missing required fields: token and newPassword")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}
