package usecase

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/driver"
)

// DriverUC implements the driver usecase: driver CRUD with ownership checks
// and the dual-write bookkeeping that keeps the embedded events array and the
// standalone events collection in sync.
type DriverUC struct {
	driverRepo driver.DriverRepo
	eventRepo  driver.EventRepo
	alertGW    driver.AlertGW
	cfg        *models.Config
}

// NewDriverUC creates a new driver usecase. alertGW may be nil when no
// message broker is configured; alerts are then dropped silently.
func NewDriverUC(driverRepo driver.DriverRepo, eventRepo driver.EventRepo, alertGW driver.AlertGW, cfg *models.Config) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		eventRepo:  eventRepo,
		alertGW:    alertGW,
		cfg:        cfg,
	}
}

// publishAlert pushes a created event to the alert topic. Failures are
// logged and never surface to the caller.
func (u *DriverUC) publishAlert(ctx context.Context, event *models.Event) {
	if u.alertGW == nil {
		return
	}
	if err := u.alertGW.PublishEventAlert(ctx, event); err != nil {
		logger.Warn("Failed to publish event alert",
			logger.Err(err),
			logger.String("event_id", event.EventID),
			logger.String("driver_id", event.DriverID))
	}
}
