package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/user/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	userHandler *http.UserHandler
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(userHandler *http.UserHandler, authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the user and auth routes. authLimiter guards the
// credential endpoints and may be nil when no limiter is configured.
func (h *Handler) RegisterRoutes(e *echo.Echo, authLimiter echo.MiddlewareFunc) {
	e.POST("/users", h.userHandler.CreateUser)
	e.GET("/users/:id", h.userHandler.GetUser)
	e.PUT("/users/:id", h.userHandler.UpdateUser)
	e.DELETE("/users/:id", h.userHandler.DeleteUser)

	authGroup := e.Group("/auth")
	if authLimiter != nil {
		authGroup.Use(authLimiter)
	}
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/password-reset/request", h.authHandler.RequestPasswordReset)
	authGroup.POST("/password-reset/confirm", h.authHandler.ConfirmPasswordReset)
}
