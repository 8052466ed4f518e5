package usecase

import (
	"context"
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// authorize fetches the driver and verifies the caller owns it. Every
// owner-scoped operation goes through here; there is no other enforcement
// point.
func (u *DriverUC) authorize(ctx context.Context, driverID, userID string) (*models.Driver, error) {
	drv, err := u.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if drv.UserID != userID {
		return nil, fmt.Errorf("driver %s does not belong to user %s: %w",
			driverID, userID, apperrors.ErrUnauthorized)
	}
	return drv, nil
}

// CreateDriver creates a driver document. Initial events, when supplied, are
// written to the standalone events collection first; the driver document is
// set last so a partial failure leaves standalone events without an owning
// driver rather than a driver pointing at missing events.
func (u *DriverUC) CreateDriver(ctx context.Context, req *models.CreateDriverRequest) (*models.Driver, error) {
	if req.DriverID == "" {
		return nil, fmt.Errorf("driverId is required: %w", apperrors.ErrValidation)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("userId is required: %w", apperrors.ErrValidation)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("phoneNumber is required: %w", apperrors.ErrValidation)
	}

	status, err := models.ParseDriverStatus(req.Status)
	if err != nil {
		return nil, err
	}

	drv := &models.Driver{
		DriverID:          req.DriverID,
		UserID:            req.UserID,
		Name:              req.Name,
		PhoneNumber:       req.PhoneNumber,
		ProfilePic:        req.ProfilePic,
		ProductID:         req.ProductID,
		EmergencyContacts: req.EmergencyContacts,
		Events:            req.Events,
		TimeStamp:         req.TimeStamp,
		Date:              req.Date,
		HeartRate:         req.HeartRate,
		BloodOxygenLevel:  req.BloodOxygenLevel,
		VehicleSpeed:      req.VehicleSpeed,
		VideoLink:         req.VideoLink,
		Driving:           req.Driving,
		Status:            status,
	}

	for _, summary := range drv.Events {
		if err := u.eventRepo.SetEvent(ctx, summary.Event(drv.DriverID, drv.UserID)); err != nil {
			return nil, err
		}
	}

	if err := u.driverRepo.SetDriver(ctx, drv); err != nil {
		return nil, err
	}

	logger.Info("Driver created",
		logger.String("driver_id", drv.DriverID),
		logger.String("user_id", drv.UserID),
		logger.Int("initial_events", len(drv.Events)))

	return drv, nil
}

// GetDriverByID retrieves a driver after the ownership check.
func (u *DriverUC) GetDriverByID(ctx context.Context, driverID, userID string) (*models.Driver, error) {
	return u.authorize(ctx, driverID, userID)
}

// ListDriversByUser returns every driver owned by userID.
func (u *DriverUC) ListDriversByUser(ctx context.Context, userID string) ([]*models.Driver, error) {
	return u.driverRepo.ListDriversByUser(ctx, userID)
}

// EditDriverField merges a single field into the driver document. Status
// edits are validated against the enum; every other field passes through
// untyped.
func (u *DriverUC) EditDriverField(ctx context.Context, driverID, userID, field string, value interface{}) error {
	if field == "" {
		return fmt.Errorf("fieldToChange is required: %w", apperrors.ErrValidation)
	}

	if _, err := u.authorize(ctx, driverID, userID); err != nil {
		return err
	}

	if field == "status" {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("status must be a string: %w", apperrors.ErrInvalidEnumValue)
		}
		status, err := models.ParseDriverStatus(s)
		if err != nil {
			return err
		}
		value = string(status)
	}

	return u.driverRepo.UpdateDriverFields(ctx, driverID, models.Document{field: value})
}

// DeleteDriver removes the driver and cascades over its embedded event
// summaries. The cascade is best-effort: entries without an eventId are
// skipped, failed deletions are recorded and logged, and the driver document
// is deleted regardless of how many standalone events survived.
func (u *DriverUC) DeleteDriver(ctx context.Context, driverID, userID string) (*models.CascadeResult, error) {
	drv, err := u.authorize(ctx, driverID, userID)
	if err != nil {
		return nil, err
	}

	result := &models.CascadeResult{DriverID: driverID}
	for _, summary := range drv.Events {
		if summary.EventID == "" {
			result.Events = append(result.Events, models.CascadeItem{
				Outcome: models.CascadeSkipped,
				Reason:  "embedded event has no eventId",
			})
			continue
		}
		if err := u.eventRepo.DeleteEvent(ctx, summary.EventID); err != nil {
			logger.Warn("Cascade delete failed for event",
				logger.Err(err),
				logger.String("event_id", summary.EventID),
				logger.String("driver_id", driverID))
			result.Events = append(result.Events, models.CascadeItem{
				EventID: summary.EventID,
				Outcome: models.CascadeFailed,
				Reason:  err.Error(),
			})
			continue
		}
		result.Events = append(result.Events, models.CascadeItem{
			EventID: summary.EventID,
			Outcome: models.CascadeDeleted,
		})
	}

	if err := u.driverRepo.DeleteDriver(ctx, driverID); err != nil {
		return nil, err
	}

	logger.Info("Driver deleted",
		logger.String("driver_id", driverID),
		logger.Int("cascaded_events", len(result.Events)),
		logger.Int("failed_events", result.Failed()))

	return result, nil
}

// AddEmergencyContact appends a contact to the driver and re-sets the full
// document.
func (u *DriverUC) AddEmergencyContact(ctx context.Context, driverID string, req *models.AddContactRequest) (*models.Driver, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("phoneNumber is required: %w", apperrors.ErrValidation)
	}

	drv, err := u.authorize(ctx, driverID, req.UserID)
	if err != nil {
		return nil, err
	}

	drv.EmergencyContacts = append(drv.EmergencyContacts, models.EmergencyContact{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})

	if err := u.driverRepo.SetDriver(ctx, drv); err != nil {
		return nil, err
	}

	return drv, nil
}
