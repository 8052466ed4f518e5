package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/internal/utils"
	"github.com/drivesense/drivesense-backend/services/user"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC user.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC user.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// CreateUser handles signup requests
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	for field, value := range map[string]string{
		"name":        req.Name,
		"email":       req.Email,
		"phoneNumber": req.PhoneNumber,
		"password":    req.Password,
	} {
		if value == "" {
			return utils.BadRequestResponse(c, "Missing required field: "+field)
		}
	}

	usr, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to create user",
			logger.Err(err),
			logger.String("email", req.Email))
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", usr)
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	usr, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", usr)
}

// UpdateUser handles single-field user updates
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID := c.Param("id")

	var req models.FieldEditRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FieldToChange == "" || req.NewValue == nil {
		return utils.BadRequestResponse(c, "Missing required fields: fieldToChange and newValue")
	}

	err := h.userUC.EditUserField(c.Request().Context(), userID, req.FieldToChange, req.NewValue)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", models.Document{
		req.FieldToChange: req.NewValue,
	})
}

// DeleteUser handles user deletion requests
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID := c.Param("id")

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", models.Document{
		"deletedUserId": userID,
	})
}
