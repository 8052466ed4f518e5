package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/driver/handler/http"
)

// Handler coordinates the HTTP handlers for the driver service
type Handler struct {
	driverHandler *http.DriverHandler
	eventHandler  *http.EventHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(driverHandler *http.DriverHandler, eventHandler *http.EventHandler, cfg *models.Config) *Handler {
	return &Handler{
		driverHandler: driverHandler,
		eventHandler:  eventHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the driver and event routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/drivers", h.driverHandler.CreateDriver)
	e.GET("/drivers/:id", h.driverHandler.GetDriver)
	e.PUT("/drivers/:id", h.driverHandler.UpdateDriver)
	e.DELETE("/drivers/:id", h.driverHandler.DeleteDriver)
	e.GET("/drivers/user/:userId", h.driverHandler.ListDriversByUser)
	e.POST("/drivers/:id/emergency-contacts", h.driverHandler.AddEmergencyContact)

	e.POST("/drivers/:id/events", h.eventHandler.AddEventToDriver)
	e.GET("/drivers/:id/events", h.eventHandler.ListDriverEvents)

	e.POST("/events", h.eventHandler.CreateEvent)
	e.GET("/events/:id", h.eventHandler.GetEvent)
	e.PUT("/events/:id", h.eventHandler.UpdateEvent)
	e.DELETE("/events/:id", h.eventHandler.DeleteEvent)
}
