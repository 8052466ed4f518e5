package models

import "time"

// RegisterRequest is the signup payload. Password arrives in the clear and
// is digested before storage; UserID is generated when the client omits it.
type RegisterRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// LoginRequest is the credentials payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FieldEditRequest is the single-field update payload shared by the user,
// driver and event edit endpoints. UserID is required only for owner-scoped
// resources.
type FieldEditRequest struct {
	UserID        string      `json:"userId,omitempty"`
	FieldToChange string      `json:"fieldToChange"`
	NewValue      interface{} `json:"newValue"`
}

// PasswordResetRequest asks for a reset token for the given email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirm consumes a reset token and sets a new password.
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// PasswordResetToken is returned when a reset is requested. Tokens live in
// process memory only and are consumed exactly once.
type PasswordResetToken struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateDriverRequest is the driver creation payload. Optional initial
// events are written to the standalone events collection as part of
// creation.
type CreateDriverRequest struct {
	DriverID          string             `json:"driverId"`
	UserID            string             `json:"userId"`
	Name              string             `json:"name"`
	PhoneNumber       string             `json:"phoneNumber"`
	ProfilePic        string             `json:"profilePic"`
	ProductID         int                `json:"productId"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
	Events            []EventSummary     `json:"events"`
	TimeStamp         string             `json:"timeStamp"`
	Date              string             `json:"date"`
	HeartRate         int                `json:"heartRate"`
	BloodOxygenLevel  int                `json:"bloodOxygenLevel"`
	VehicleSpeed      int                `json:"vehicleSpeed"`
	VideoLink         string             `json:"videoLink"`
	Driving           bool               `json:"driving"`
	Status            string             `json:"status"`
}

// AddContactRequest appends an emergency contact to a driver.
type AddContactRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// AddEventRequest appends an event to a driver and creates the standalone
// event record.
type AddEventRequest struct {
	UserID           string `json:"userId"`
	EventID          string `json:"eventId"`
	Status           string `json:"status"`
	TimeStamp        string `json:"timeStamp"`
	Date             string `json:"date"`
	VideoLink        string `json:"videoLink"`
	HeartRate        int    `json:"heartRate"`
	BloodOxygenLevel int    `json:"bloodOxygenLevel"`
	VehicleSpeed     int    `json:"vehicleSpeed"`
}

// Summary converts the payload into the embedded event form.
func (r *AddEventRequest) Summary() EventSummary {
	return EventSummary{
		EventID:          r.EventID,
		Status:           r.Status,
		TimeStamp:        r.TimeStamp,
		Date:             r.Date,
		VideoLink:        r.VideoLink,
		HeartRate:        r.HeartRate,
		BloodOxygenLevel: r.BloodOxygenLevel,
		VehicleSpeed:     r.VehicleSpeed,
	}
}

// CreateEventRequest creates a standalone event linked to a driver.
type CreateEventRequest struct {
	EventID          string `json:"eventId"`
	DriverID         string `json:"driverId"`
	Status           string `json:"status"`
	TimeStamp        string `json:"timeStamp"`
	Date             string `json:"date"`
	VideoLink        string `json:"videoLink"`
	HeartRate        int    `json:"heartRate"`
	BloodOxygenLevel int    `json:"bloodOxygenLevel"`
	VehicleSpeed     int    `json:"vehicleSpeed"`
}
