package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/internal/utils"
	"github.com/drivesense/drivesense-backend/services/driver"
)

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	driverUC driver.DriverUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC driver.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// CreateDriver handles driver creation requests
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req models.CreateDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	for field, value := range map[string]string{
		"driverId":    req.DriverID,
		"userId":      req.UserID,
		"name":        req.Name,
		"phoneNumber": req.PhoneNumber,
	} {
		if value == "" {
			return utils.BadRequestResponse(c, "Missing required field: "+field)
		}
	}

	drv, err := h.driverUC.CreateDriver(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to create driver",
			logger.Err(err),
			logger.String("driver_id", req.DriverID))
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", drv)
}

// GetDriver handles driver retrieval. The requesting user is identified by
// the userId query parameter.
func (h *DriverHandler) GetDriver(c echo.Context) error {
	driverID := c.Param("id")
	userID := c.QueryParam("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "Missing required field: userId")
	}

	drv, err := h.driverUC.GetDriverByID(c.Request().Context(), driverID, userID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", drv)
}

// ListDriversByUser returns every driver owned by the path user.
func (h *DriverHandler) ListDriversByUser(c echo.Context) error {
	userID := c.Param("userId")

	drivers, err := h.driverUC.ListDriversByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}

// UpdateDriver handles single-field driver updates
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	driverID := c.Param("id")

	var req models.FieldEditRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.UserID == "" {
		return utils.BadRequestResponse(c, "Missing required field: userId")
	}
	if req.FieldToChange == "" || req.NewValue == nil {
		return utils.BadRequestResponse(c, "Missing required fields: fieldToChange and newValue")
	}

	err := h.driverUC.EditDriverField(c.Request().Context(), driverID, req.UserID, req.FieldToChange, req.NewValue)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", models.Document{
		req.FieldToChange: req.NewValue,
	})
}

// DeleteDriver deletes a driver and cascades over its events, returning the
// per-event outcomes.
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	driverID := c.Param("id")
	userID := c.QueryParam("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "Missing required field: userId")
	}

	result, err := h.driverUC.DeleteDriver(c.Request().Context(), driverID, userID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", result)
}

// AddEmergencyContact appends an emergency contact to a driver
func (h *DriverHandler) AddEmergencyContact(c echo.Context) error {
	driverID := c.Param("id")

	var req models.AddContactRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	for field, value := range map[string]string{
		"userId":      req.UserID,
		"name":        req.Name,
		"phoneNumber": req.PhoneNumber,
	} {
		if value == "" {
			return utils.BadRequestResponse(c, "Missing required field: "+field)
		}
	}

	drv, err := h.driverUC.AddEmergencyContact(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Emergency contact added successfully", drv)
}
