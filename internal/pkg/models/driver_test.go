package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

func TestParseDriverStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DriverStatus
		wantErr bool
	}{
		{name: "unstable", input: "Unstable", want: StatusUnstable},
		{name: "severe", input: "Severe", want: StatusSevere},
		{name: "locked in", input: "LockedIn", want: StatusLockedIn},
		{name: "idle", input: "Idle", want: StatusIdle},
		{name: "empty defaults to idle", input: "", want: StatusIdle},
		{name: "wrong case rejected", input: "idle", wantErr: true},
		{name: "unknown value rejected", input: "Sleeping", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDriverStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrInvalidEnumValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDriver_SetStatus(t *testing.T) {
	d := &Driver{Status: StatusIdle}

	require.NoError(t, d.SetStatus("Severe"))
	assert.Equal(t, StatusSevere, d.Status)

	err := d.SetStatus("Panicking")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidEnumValue))
	assert.Equal(t, StatusSevere, d.Status)
}

func TestDriver_DocumentKeySet(t *testing.T) {
	d := &Driver{
		DriverID:    "d1",
		UserID:      "u1",
		Name:        "Budi",
		PhoneNumber: "+62811111111",
		EmergencyContacts: []EmergencyContact{
			{Name: "Siti", PhoneNumber: "+62822222222"},
		},
		Events: []EventSummary{
			{EventID: "e1", Status: "Incident"},
		},
		Status: StatusIdle,
	}

	doc := d.Document()

	// Embedded contacts use snake_case keys; everything else is camelCase.
	assert.Contains(t, doc, "emergency_contacts")
	assert.NotContains(t, doc, "emergencyContacts")

	contacts, ok := doc["emergency_contacts"].([]interface{})
	require.True(t, ok)
	require.Len(t, contacts, 1)
	contact, ok := contacts[0].(Document)
	require.True(t, ok)
	assert.Equal(t, "+62822222222", contact["phone_number"])

	events, ok := doc["events"].([]interface{})
	require.True(t, ok)
	require.Len(t, events, 1)

	assert.Equal(t, "Idle", doc["status"])
}

func TestDriverFromDocument_Roundtrip(t *testing.T) {
	d := &Driver{
		DriverID:         "d1",
		UserID:           "u1",
		Name:             "Budi",
		PhoneNumber:      "+62811111111",
		ProfilePic:       "https://cdn.example.com/budi.jpg",
		ProductID:        3,
		HeartRate:        78,
		BloodOxygenLevel: 97,
		VehicleSpeed:     64,
		Driving:          true,
		Status:           StatusLockedIn,
		EmergencyContacts: []EmergencyContact{
			{Name: "Siti", PhoneNumber: "+62822222222"},
		},
		Events: []EventSummary{
			{EventID: "e1", Status: "Incident", HeartRate: 120},
		},
	}

	got := DriverFromDocument(d.Document())
	assert.Equal(t, d, got)
}

func TestDriverFromDocument_ToleratesNumericWidening(t *testing.T) {
	// Stores hand back numbers as int32/int64/float64 depending on the codec.
	doc := Document{
		"driverId":  "d1",
		"heartRate": int64(80),
		"productId": float64(2),
		"status":    "Idle",
	}

	d := DriverFromDocument(doc)
	assert.Equal(t, 80, d.HeartRate)
	assert.Equal(t, 2, d.ProductID)
}

func TestCascadeResult_Failed(t *testing.T) {
	r := &CascadeResult{
		DriverID: "d1",
		Events: []CascadeItem{
			{EventID: "e1", Outcome: CascadeDeleted},
			{EventID: "e2", Outcome: CascadeFailed, Reason: "store unavailable"},
			{Outcome: CascadeSkipped, Reason: "embedded event has no eventId"},
			{EventID: "e3", Outcome: CascadeFailed, Reason: "store unavailable"},
		},
	}
	assert.Equal(t, 2, r.Failed())

	empty := &CascadeResult{DriverID: "d2"}
	assert.Equal(t, 0, empty.Failed())
}
