package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/driver/mocks"
)

func newTestUC(t *testing.T) (*DriverUC, *mocks.MockDriverRepo, *mocks.MockEventRepo, *mocks.MockAlertGW) {
	ctrl := gomock.NewController(t)
	driverRepo := mocks.NewMockDriverRepo(ctrl)
	eventRepo := mocks.NewMockEventRepo(ctrl)
	alertGW := mocks.NewMockAlertGW(ctrl)
	return NewDriverUC(driverRepo, eventRepo, alertGW, &models.Config{}), driverRepo, eventRepo, alertGW
}

func ownedDriver() *models.Driver {
	return &models.Driver{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
		Status:      models.StatusIdle,
	}
}

func TestCreateDriver_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateDriverRequest
	}{
		{name: "missing driverId", req: models.CreateDriverRequest{UserID: "u1", Name: "Budi", PhoneNumber: "1"}},
		{name: "missing userId", req: models.CreateDriverRequest{DriverID: "d1", Name: "Budi", PhoneNumber: "1"}},
		{name: "missing name", req: models.CreateDriverRequest{DriverID: "d1", UserID: "u1", PhoneNumber: "1"}},
		{name: "missing phoneNumber", req: models.CreateDriverRequest{DriverID: "d1", UserID: "u1", Name: "Budi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _ := newTestUC(t)
			_, err := uc.CreateDriver(context.Background(), &tt.req)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestCreateDriver_InvalidStatus(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.CreateDriver(context.Background(), &models.CreateDriverRequest{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
		Status:      "Sleeping",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidEnumValue))
}

func TestCreateDriver_DefaultsToIdle(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)

	driverRepo.EXPECT().SetDriver(gomock.Any(), gomock.Any()).Return(nil)

	drv, err := uc.CreateDriver(context.Background(), &models.CreateDriverRequest{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, drv.Status)
}

func TestCreateDriver_WritesInitialEventsBeforeDriver(t *testing.T) {
	uc, driverRepo, eventRepo, _ := newTestUC(t)

	req := &models.CreateDriverRequest{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
		Events: []models.EventSummary{
			{EventID: "e1", Status: "Incident"},
			{EventID: "e2", Status: "High Risk"},
		},
	}

	gomock.InOrder(
		eventRepo.EXPECT().SetEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.Event) error {
				assert.Equal(t, "e1", e.EventID)
				assert.Equal(t, "d1", e.DriverID)
				assert.Equal(t, "u1", e.UserID)
				return nil
			}),
		eventRepo.EXPECT().SetEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.Event) error {
				assert.Equal(t, "e2", e.EventID)
				return nil
			}),
		driverRepo.EXPECT().SetDriver(gomock.Any(), gomock.Any()).Return(nil),
	)

	drv, err := uc.CreateDriver(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, drv.Events, 2)
}

func TestCreateDriver_StandaloneFailureLeavesDriverUnwritten(t *testing.T) {
	uc, _, eventRepo, _ := newTestUC(t)

	eventRepo.EXPECT().SetEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("store unavailable"))

	_, err := uc.CreateDriver(context.Background(), &models.CreateDriverRequest{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
		Events:      []models.EventSummary{{EventID: "e1"}},
	})
	require.Error(t, err)
}

func TestGetDriverByID_OwnershipEnforced(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)
	ctx := context.Background()

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(ownedDriver(), nil).Times(2)

	drv, err := uc.GetDriverByID(ctx, "d1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "d1", drv.DriverID)

	_, err = uc.GetDriverByID(ctx, "d1", "u2")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestGetDriverByID_MissingDriver(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)

	driverRepo.EXPECT().GetDriver(gomock.Any(), "ghost").
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.GetDriverByID(context.Background(), "ghost", "u1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestEditDriverField_StatusValidated(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)
	ctx := context.Background()

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(ownedDriver(), nil).Times(3)

	err := uc.EditDriverField(ctx, "d1", "u1", "status", "Sleeping")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidEnumValue))

	err = uc.EditDriverField(ctx, "d1", "u1", "status", 42)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidEnumValue))

	driverRepo.EXPECT().
		UpdateDriverFields(gomock.Any(), "d1", models.Document{"status": "Severe"}).
		Return(nil)
	require.NoError(t, uc.EditDriverField(ctx, "d1", "u1", "status", "Severe"))
}

func TestEditDriverField_NonStatusFieldPassesThrough(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(ownedDriver(), nil)
	driverRepo.EXPECT().
		UpdateDriverFields(gomock.Any(), "d1", models.Document{"vehicleSpeed": 90}).
		Return(nil)

	require.NoError(t, uc.EditDriverField(context.Background(), "d1", "u1", "vehicleSpeed", 90))
}

func TestEditDriverField_Unauthorized(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(ownedDriver(), nil)

	err := uc.EditDriverField(context.Background(), "d1", "intruder", "name", "x")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestDeleteDriver_CascadeOutcomes(t *testing.T) {
	uc, driverRepo, eventRepo, _ := newTestUC(t)

	drv := ownedDriver()
	drv.Events = []models.EventSummary{
		{EventID: "e1"},
		{},
		{EventID: "e3"},
	}

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(drv, nil)
	eventRepo.EXPECT().DeleteEvent(gomock.Any(), "e1").Return(nil)
	eventRepo.EXPECT().DeleteEvent(gomock.Any(), "e3").Return(errors.New("store unavailable"))
	driverRepo.EXPECT().DeleteDriver(gomock.Any(), "d1").Return(nil)

	result, err := uc.DeleteDriver(context.Background(), "d1", "u1")
	require.NoError(t, err)

	require.Len(t, result.Events, 3)
	assert.Equal(t, models.CascadeDeleted, result.Events[0].Outcome)
	assert.Equal(t, models.CascadeSkipped, result.Events[1].Outcome)
	assert.Equal(t, models.CascadeFailed, result.Events[2].Outcome)
	assert.Equal(t, 1, result.Failed())
}

func TestDeleteDriver_Unauthorized(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(ownedDriver(), nil)

	_, err := uc.DeleteDriver(context.Background(), "d1", "intruder")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestAddEmergencyContact(t *testing.T) {
	uc, driverRepo, _, _ := newTestUC(t)

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(ownedDriver(), nil)
	driverRepo.EXPECT().SetDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Driver) error {
			require.Len(t, d.EmergencyContacts, 1)
			assert.Equal(t, "Siti", d.EmergencyContacts[0].Name)
			return nil
		})

	drv, err := uc.AddEmergencyContact(context.Background(), "d1", &models.AddContactRequest{
		UserID:      "u1",
		Name:        "Siti",
		PhoneNumber: "+62822222222",
	})
	require.NoError(t, err)
	assert.Len(t, drv.EmergencyContacts, 1)
}

func TestAddEmergencyContact_Validation(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.AddEmergencyContact(context.Background(), "d1", &models.AddContactRequest{
		UserID: "u1",
		Name:   "Siti",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
