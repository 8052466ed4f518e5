package driver

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/drivesense/drivesense-backend/services/driver DriverRepo,EventRepo

// DriverRepo represents the driver repository interface
type DriverRepo interface {
	SetDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	UpdateDriverFields(ctx context.Context, id string, fields models.Document) error
	DeleteDriver(ctx context.Context, id string) error
	ListDriversByUser(ctx context.Context, userID string) ([]*models.Driver, error)
}

// EventRepo represents the standalone events repository interface
type EventRepo interface {
	SetEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEventFields(ctx context.Context, id string, fields models.Document) error
	DeleteEvent(ctx context.Context, id string) error
	ListEventsByDriver(ctx context.Context, driverID string) ([]*models.Event, error)
}
