package usecase

import (
	"context"
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// AddEventToDriver records a new safety event through the driver aggregate:
// ownership check, append the summary to the embedded array, re-set the full
// driver document, then set the standalone event. The array append is a
// read-modify-write of the whole document; concurrent appends to the same
// driver can lose one summary (last writer wins), while both standalone
// events survive.
func (u *DriverUC) AddEventToDriver(ctx context.Context, driverID string, req *models.AddEventRequest) (*models.Event, error) {
	if req.EventID == "" {
		return nil, fmt.Errorf("eventId is required: %w", apperrors.ErrValidation)
	}

	drv, err := u.authorize(ctx, driverID, req.UserID)
	if err != nil {
		return nil, err
	}

	summary := req.Summary()
	drv.Events = append(drv.Events, summary)
	if err := u.driverRepo.SetDriver(ctx, drv); err != nil {
		return nil, err
	}

	event := summary.Event(drv.DriverID, drv.UserID)
	if err := u.eventRepo.SetEvent(ctx, event); err != nil {
		// Embedded summary is already persisted; the standalone copy is
		// missing until a retry recreates it.
		return nil, err
	}

	u.publishAlert(ctx, event)

	logger.Info("Event added to driver",
		logger.String("event_id", event.EventID),
		logger.String("driver_id", driverID),
		logger.String("status", event.Status))

	return event, nil
}

// CreateEvent records a safety event addressed by driver id alone. The
// standalone document is set first; the owning driver is then loaded to stamp
// userId and link the summary. A missing driver fails with NotFound after the
// standalone write, leaving an orphaned event behind.
func (u *DriverUC) CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	if req.EventID == "" {
		return nil, fmt.Errorf("eventId is required: %w", apperrors.ErrValidation)
	}
	if req.DriverID == "" {
		return nil, fmt.Errorf("driverId is required: %w", apperrors.ErrValidation)
	}

	event := &models.Event{
		EventID:          req.EventID,
		DriverID:         req.DriverID,
		Status:           req.Status,
		TimeStamp:        req.TimeStamp,
		Date:             req.Date,
		VideoLink:        req.VideoLink,
		HeartRate:        req.HeartRate,
		BloodOxygenLevel: req.BloodOxygenLevel,
		VehicleSpeed:     req.VehicleSpeed,
	}
	if err := u.eventRepo.SetEvent(ctx, event); err != nil {
		return nil, err
	}

	drv, err := u.driverRepo.GetDriver(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}

	event.UserID = drv.UserID
	if err := u.eventRepo.UpdateEventFields(ctx, event.EventID, models.Document{"userId": drv.UserID}); err != nil {
		return nil, err
	}

	drv.Events = append(drv.Events, event.Summary())
	if err := u.driverRepo.SetDriver(ctx, drv); err != nil {
		return nil, err
	}

	u.publishAlert(ctx, event)

	logger.Info("Event created",
		logger.String("event_id", event.EventID),
		logger.String("driver_id", event.DriverID),
		logger.String("status", event.Status))

	return event, nil
}

// GetEventByID retrieves a standalone event.
func (u *DriverUC) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	return u.eventRepo.GetEvent(ctx, eventID)
}

// EditEventField updates the standalone event first, then patches the
// matching embedded summary in the owning driver. When the driver or the
// embedded entry cannot be found the standalone update stands and the
// embedded copy stays stale; that divergence is logged, not propagated.
func (u *DriverUC) EditEventField(ctx context.Context, eventID, field string, value interface{}) error {
	if field == "" {
		return fmt.Errorf("fieldToChange is required: %w", apperrors.ErrValidation)
	}

	if err := u.eventRepo.UpdateEventFields(ctx, eventID, models.Document{field: value}); err != nil {
		return err
	}

	event, err := u.eventRepo.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	drv, err := u.driverRepo.GetDriver(ctx, event.DriverID)
	if err != nil {
		logger.Warn("Owning driver not found, embedded event copy left stale",
			logger.Err(err),
			logger.String("event_id", eventID),
			logger.String("driver_id", event.DriverID))
		return nil
	}

	patched := false
	embedded := make([]interface{}, 0, len(drv.Events))
	for _, summary := range drv.Events {
		doc := summary.Document()
		if summary.EventID == eventID {
			doc[field] = value
			patched = true
		}
		embedded = append(embedded, doc)
	}
	if !patched {
		logger.Warn("Event not present in driver's embedded array, nothing to patch",
			logger.String("event_id", eventID),
			logger.String("driver_id", event.DriverID))
		return nil
	}

	return u.driverRepo.UpdateDriverFields(ctx, drv.DriverID, models.Document{"events": embedded})
}

// DeleteEvent removes the standalone event, then filters it out of the
// owning driver's embedded array. A missing driver leaves the standalone
// deletion in place.
func (u *DriverUC) DeleteEvent(ctx context.Context, eventID string) error {
	event, err := u.eventRepo.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if err := u.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return err
	}

	drv, err := u.driverRepo.GetDriver(ctx, event.DriverID)
	if err != nil {
		logger.Warn("Owning driver not found, no embedded event entry to remove",
			logger.Err(err),
			logger.String("event_id", eventID),
			logger.String("driver_id", event.DriverID))
		return nil
	}

	embedded := make([]interface{}, 0, len(drv.Events))
	for _, summary := range drv.Events {
		if summary.EventID == eventID {
			continue
		}
		embedded = append(embedded, summary.Document())
	}

	if err := u.driverRepo.UpdateDriverFields(ctx, drv.DriverID, models.Document{"events": embedded}); err != nil {
		return err
	}

	logger.Info("Event deleted",
		logger.String("event_id", eventID),
		logger.String("driver_id", event.DriverID))

	return nil
}

// ListEventsByDriver returns every standalone event stamped with driverID.
func (u *DriverUC) ListEventsByDriver(ctx context.Context, driverID string) ([]*models.Event, error) {
	return u.eventRepo.ListEventsByDriver(ctx, driverID)
}
