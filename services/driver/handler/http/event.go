package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/internal/utils"
	"github.com/drivesense/drivesense-backend/services/driver"
)

// EventHandler handles HTTP requests for safety event operations
type EventHandler struct {
	driverUC driver.DriverUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(driverUC driver.DriverUC) *EventHandler {
	return &EventHandler{driverUC: driverUC}
}

// AddEventToDriver records a new event through the driver aggregate
func (h *EventHandler) AddEventToDriver(c echo.Context) error {
	driverID := c.Param("id")

	var req models.AddEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.UserID == "" {
		return utils.BadRequestResponse(c, "Missing required field: userId")
	}
	if req.EventID == "" {
		return utils.BadRequestResponse(c, "Missing required field: eventId")
	}

	event, err := h.driverUC.AddEventToDriver(c.Request().Context(), driverID, &req)
	if err != nil {
		logger.Warn("Failed to add event to driver",
			logger.Err(err),
			logger.String("driver_id", driverID),
			logger.String("event_id", req.EventID))
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Event created successfully", event)
}

// ListDriverEvents returns the standalone events stamped with the driver id
func (h *EventHandler) ListDriverEvents(c echo.Context) error {
	driverID := c.Param("id")

	events, err := h.driverUC.ListEventsByDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Events retrieved successfully", events)
}

// CreateEvent records an event addressed by driver id in the payload
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EventID == "" {
		return utils.BadRequestResponse(c, "Missing required field: eventId")
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Missing required field: driverId")
	}

	event, err := h.driverUC.CreateEvent(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to create event",
			logger.Err(err),
			logger.String("event_id", req.EventID),
			logger.String("driver_id", req.DriverID))
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Event created successfully", event)
}

// GetEvent retrieves a standalone event
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID := c.Param("id")

	event, err := h.driverUC.GetEventByID(c.Request().Context(), eventID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event retrieved successfully", event)
}

// UpdateEvent handles single-field event updates
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	eventID := c.Param("id")

	var req models.FieldEditRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FieldToChange == "" || req.NewValue == nil {
		return utils.BadRequestResponse(c, "Missing required fields: fieldToChange and newValue")
	}

	err := h.driverUC.EditEventField(c.Request().Context(), eventID, req.FieldToChange, req.NewValue)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event updated successfully", models.Document{
		req.FieldToChange: req.NewValue,
	})
}

// DeleteEvent removes a standalone event and its embedded copy
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	eventID := c.Param("id")

	if err := h.driverUC.DeleteEvent(c.Request().Context(), eventID); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event deleted successfully", models.Document{
		"deletedEventId": eventID,
	})
}
