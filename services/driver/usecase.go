package driver

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/drivesense/drivesense-backend/services/driver DriverUC

// DriverUC represents the driver usecase interface. Driver operations that
// take a userID enforce ownership: the stored driver's userId must match or
// the call fails with apperrors.ErrUnauthorized.
type DriverUC interface {
	CreateDriver(ctx context.Context, req *models.CreateDriverRequest) (*models.Driver, error)
	GetDriverByID(ctx context.Context, driverID, userID string) (*models.Driver, error)
	ListDriversByUser(ctx context.Context, userID string) ([]*models.Driver, error)
	EditDriverField(ctx context.Context, driverID, userID, field string, value interface{}) error
	DeleteDriver(ctx context.Context, driverID, userID string) (*models.CascadeResult, error)
	AddEmergencyContact(ctx context.Context, driverID string, req *models.AddContactRequest) (*models.Driver, error)

	// events
	AddEventToDriver(ctx context.Context, driverID string, req *models.AddEventRequest) (*models.Event, error)
	CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*models.Event, error)
	EditEventField(ctx context.Context, eventID, field string, value interface{}) error
	DeleteEvent(ctx context.Context, eventID string) error
	ListEventsByDriver(ctx context.Context, driverID string) ([]*models.Event, error)
}
