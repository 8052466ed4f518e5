package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/docstore"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/driver/repository"
	"github.com/drivesense/drivesense-backend/services/driver/usecase"
)

// TestDriverLifecycle runs the full aggregate flow against the in-memory
// store: create with an initial event, append events through both entry
// points, edit with embedded-copy sync, and cascade delete.
func TestDriverLifecycle(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	driverRepo := repository.NewDriverRepo(store)
	eventRepo := repository.NewEventRepo(store)
	uc := usecase.NewDriverUC(driverRepo, eventRepo, nil, &models.Config{})

	// Create a driver with one initial event.
	drv, err := uc.CreateDriver(ctx, &models.CreateDriverRequest{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
		Events: []models.EventSummary{
			{EventID: "e0", Status: "Incident", HeartRate: 115},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, drv.Status)

	// The initial event exists standalone, stamped with its owners.
	e0, err := uc.GetEventByID(ctx, "e0")
	require.NoError(t, err)
	assert.Equal(t, "d1", e0.DriverID)
	assert.Equal(t, "u1", e0.UserID)

	// Ownership is enforced on reads.
	_, err = uc.GetDriverByID(ctx, "d1", "someone-else")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	// Append an event through the driver aggregate.
	_, err = uc.AddEventToDriver(ctx, "d1", &models.AddEventRequest{
		UserID:  "u1",
		EventID: "e1",
		Status:  "High Risk",
	})
	require.NoError(t, err)

	// Append another one addressed by driver id alone.
	e2, err := uc.CreateEvent(ctx, &models.CreateEventRequest{
		EventID:  "e2",
		DriverID: "d1",
		Status:   "Incident",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", e2.UserID)

	events, err := uc.ListEventsByDriver(ctx, "d1")
	require.NoError(t, err)
	assert.Len(t, events, 3)

	drv, err = uc.GetDriverByID(ctx, "d1", "u1")
	require.NoError(t, err)
	assert.Len(t, drv.Events, 3)

	// Status edits are validated against the enum.
	err = uc.EditDriverField(ctx, "d1", "u1", "status", "Panicking")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidEnumValue))

	require.NoError(t, uc.EditDriverField(ctx, "d1", "u1", "status", "Severe"))
	drv, err = uc.GetDriverByID(ctx, "d1", "u1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSevere, drv.Status)

	// Editing an event updates both copies.
	require.NoError(t, uc.EditEventField(ctx, "e1", "status", "Reviewed"))

	e1, err := uc.GetEventByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Reviewed", e1.Status)

	drv, err = uc.GetDriverByID(ctx, "d1", "u1")
	require.NoError(t, err)
	for _, s := range drv.Events {
		if s.EventID == "e1" {
			assert.Equal(t, "Reviewed", s.Status)
		}
	}

	// Deleting an event removes both copies.
	require.NoError(t, uc.DeleteEvent(ctx, "e0"))
	_, err = uc.GetEventByID(ctx, "e0")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	drv, err = uc.GetDriverByID(ctx, "d1", "u1")
	require.NoError(t, err)
	assert.Len(t, drv.Events, 2)

	// Cascade delete takes the remaining events with the driver.
	result, err := uc.DeleteDriver(ctx, "d1", "u1")
	require.NoError(t, err)
	assert.Len(t, result.Events, 2)
	assert.Equal(t, 0, result.Failed())
	for _, item := range result.Events {
		assert.Equal(t, models.CascadeDeleted, item.Outcome)
	}

	_, err = uc.GetDriverByID(ctx, "d1", "u1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	_, err = uc.GetEventByID(ctx, "e1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	events, err = uc.ListEventsByDriver(ctx, "d1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListDriversByUser(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	uc := usecase.NewDriverUC(repository.NewDriverRepo(store), repository.NewEventRepo(store), nil, &models.Config{})

	for _, spec := range []struct{ driverID, userID string }{
		{"d1", "u1"},
		{"d2", "u1"},
		{"d3", "u2"},
	} {
		_, err := uc.CreateDriver(ctx, &models.CreateDriverRequest{
			DriverID:    spec.driverID,
			UserID:      spec.userID,
			Name:        "Driver " + spec.driverID,
			PhoneNumber: "+62811111111",
		})
		require.NoError(t, err)
	}

	drivers, err := uc.ListDriversByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, drivers, 2)

	drivers, err = uc.ListDriversByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, drivers)
}
