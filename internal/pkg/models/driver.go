package models

import (
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

// DriverStatus is the monitored safety state of a driver.
type DriverStatus string

const (
	StatusUnstable DriverStatus = "Unstable"
	StatusSevere   DriverStatus = "Severe"
	StatusLockedIn DriverStatus = "LockedIn"
	StatusIdle     DriverStatus = "Idle"
)

// ValidDriverStatus reports whether s is one of the four allowed states.
func ValidDriverStatus(s string) bool {
	switch DriverStatus(s) {
	case StatusUnstable, StatusSevere, StatusLockedIn, StatusIdle:
		return true
	}
	return false
}

// ParseDriverStatus validates a candidate status value. Empty defaults to Idle.
func ParseDriverStatus(s string) (DriverStatus, error) {
	if s == "" {
		return StatusIdle, nil
	}
	if !ValidDriverStatus(s) {
		return "", fmt.Errorf("status %q must be one of Unstable, Severe, LockedIn, Idle: %w",
			s, apperrors.ErrInvalidEnumValue)
	}
	return DriverStatus(s), nil
}

// Driver is the aggregate root of the safety data for one monitored person.
// Events carries a denormalized copy of the driver's events; the standalone
// events collection remains the source of truth and the two are kept in sync
// by the driver service, not by the store.
type Driver struct {
	DriverID          string             `json:"driverId" bson:"driverId"`
	UserID            string             `json:"userId" bson:"userId"`
	Name              string             `json:"name" bson:"name"`
	PhoneNumber       string             `json:"phoneNumber" bson:"phoneNumber"`
	ProfilePic        string             `json:"profilePic" bson:"profilePic"`
	ProductID         int                `json:"productId" bson:"productId"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts" bson:"emergency_contacts"`
	Events            []EventSummary     `json:"events" bson:"events"`
	TimeStamp         string             `json:"timeStamp" bson:"timeStamp"`
	Date              string             `json:"date" bson:"date"`
	HeartRate         int                `json:"heartRate" bson:"heartRate"`
	BloodOxygenLevel  int                `json:"bloodOxygenLevel" bson:"bloodOxygenLevel"`
	VehicleSpeed      int                `json:"vehicleSpeed" bson:"vehicleSpeed"`
	VideoLink         string             `json:"videoLink" bson:"videoLink"`
	Driving           bool               `json:"driving" bson:"driving"`
	Status            DriverStatus       `json:"status" bson:"status"`
}

// SetStatus mutates the status, rejecting values outside the enum.
func (d *Driver) SetStatus(s string) error {
	status, err := ParseDriverStatus(s)
	if err != nil {
		return err
	}
	d.Status = status
	return nil
}

// Document returns the exact key set persisted for a driver, embedded
// contact and event arrays included.
func (d *Driver) Document() Document {
	contacts := make([]interface{}, 0, len(d.EmergencyContacts))
	for _, c := range d.EmergencyContacts {
		contacts = append(contacts, c.Document())
	}
	events := make([]interface{}, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, e.Document())
	}
	return Document{
		"driverId":           d.DriverID,
		"userId":             d.UserID,
		"name":               d.Name,
		"phoneNumber":        d.PhoneNumber,
		"profilePic":         d.ProfilePic,
		"productId":          d.ProductID,
		"emergency_contacts": contacts,
		"events":             events,
		"timeStamp":          d.TimeStamp,
		"date":               d.Date,
		"heartRate":          d.HeartRate,
		"bloodOxygenLevel":   d.BloodOxygenLevel,
		"vehicleSpeed":       d.VehicleSpeed,
		"videoLink":          d.VideoLink,
		"driving":            d.Driving,
		"status":             string(d.Status),
	}
}

// DriverFromDocument rebuilds a driver from its stored document.
func DriverFromDocument(doc Document) *Driver {
	d := &Driver{
		DriverID:         docString(doc, "driverId"),
		UserID:           docString(doc, "userId"),
		Name:             docString(doc, "name"),
		PhoneNumber:      docString(doc, "phoneNumber"),
		ProfilePic:       docString(doc, "profilePic"),
		ProductID:        docInt(doc, "productId"),
		TimeStamp:        docString(doc, "timeStamp"),
		Date:             docString(doc, "date"),
		HeartRate:        docInt(doc, "heartRate"),
		BloodOxygenLevel: docInt(doc, "bloodOxygenLevel"),
		VehicleSpeed:     docInt(doc, "vehicleSpeed"),
		VideoLink:        docString(doc, "videoLink"),
		Driving:          docBool(doc, "driving"),
		Status:           DriverStatus(docString(doc, "status")),
	}
	for _, raw := range docSlice(doc, "emergency_contacts") {
		if cd := asDocument(raw); cd != nil {
			d.EmergencyContacts = append(d.EmergencyContacts, EmergencyContactFromDocument(cd))
		}
	}
	for _, raw := range docSlice(doc, "events") {
		if ed := asDocument(raw); ed != nil {
			d.Events = append(d.Events, EventSummaryFromDocument(ed))
		}
	}
	return d
}

// CascadeOutcome classifies the fate of one embedded event during a driver
// cascade delete.
type CascadeOutcome string

const (
	CascadeDeleted CascadeOutcome = "deleted"
	CascadeSkipped CascadeOutcome = "skipped"
	CascadeFailed  CascadeOutcome = "failed"
)

// CascadeItem is the per-event result of a cascade delete.
type CascadeItem struct {
	EventID string         `json:"eventId"`
	Outcome CascadeOutcome `json:"outcome"`
	Reason  string         `json:"reason,omitempty"`
}

// CascadeResult records what happened to each embedded event when a driver
// was deleted. Individual failures never abort the cascade.
type CascadeResult struct {
	DriverID string        `json:"driverId"`
	Events   []CascadeItem `json:"events"`
}

// Failed reports how many event deletions failed.
func (r *CascadeResult) Failed() int {
	n := 0
	for _, it := range r.Events {
		if it.Outcome == CascadeFailed {
			n++
		}
	}
	return n
}
