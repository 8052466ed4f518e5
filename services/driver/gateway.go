package driver

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/drivesense/drivesense-backend/services/driver AlertGW

// AlertGW publishes safety-event alerts to downstream consumers. Publishing
// is best-effort; callers log failures and carry on.
type AlertGW interface {
	PublishEventAlert(ctx context.Context, event *models.Event) error
}
