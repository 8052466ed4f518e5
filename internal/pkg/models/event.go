package models

// Event is a logged safety incident. It is stored standalone in the events
// collection and mirrored as an EventSummary inside its owning driver's
// embedded events array; driverId/userId are stamped on the standalone copy
// for lookups and ownership checks.
type Event struct {
	EventID          string `json:"eventId" bson:"eventId"`
	DriverID         string `json:"driverId" bson:"driverId"`
	UserID           string `json:"userId" bson:"userId"`
	Status           string `json:"status" bson:"status"`
	TimeStamp        string `json:"timeStamp" bson:"timeStamp"`
	Date             string `json:"date" bson:"date"`
	VideoLink        string `json:"videoLink" bson:"videoLink"`
	HeartRate        int    `json:"heartRate" bson:"heartRate"`
	BloodOxygenLevel int    `json:"bloodOxygenLevel" bson:"bloodOxygenLevel"`
	VehicleSpeed     int    `json:"vehicleSpeed" bson:"vehicleSpeed"`
}

// Summary returns the denormalized copy embedded in the driver document.
func (e *Event) Summary() EventSummary {
	return EventSummary{
		EventID:          e.EventID,
		Status:           e.Status,
		TimeStamp:        e.TimeStamp,
		Date:             e.Date,
		VideoLink:        e.VideoLink,
		HeartRate:        e.HeartRate,
		BloodOxygenLevel: e.BloodOxygenLevel,
		VehicleSpeed:     e.VehicleSpeed,
	}
}

// Document returns the exact key set persisted in the events collection.
func (e *Event) Document() Document {
	doc := e.Summary().Document()
	doc["driverId"] = e.DriverID
	doc["userId"] = e.UserID
	return doc
}

// EventFromDocument rebuilds an event from its stored document.
func EventFromDocument(doc Document) *Event {
	return &Event{
		EventID:          docString(doc, "eventId"),
		DriverID:         docString(doc, "driverId"),
		UserID:           docString(doc, "userId"),
		Status:           docString(doc, "status"),
		TimeStamp:        docString(doc, "timeStamp"),
		Date:             docString(doc, "date"),
		VideoLink:        docString(doc, "videoLink"),
		HeartRate:        docInt(doc, "heartRate"),
		BloodOxygenLevel: docInt(doc, "bloodOxygenLevel"),
		VehicleSpeed:     docInt(doc, "vehicleSpeed"),
	}
}

// EventSummary is the partial, independently stored copy of an event kept
// inside the owning driver document. It shares the event's identity but no
// store constraint ties the two together; the driver service keeps them
// synchronized.
type EventSummary struct {
	EventID          string `json:"eventId" bson:"eventId"`
	Status           string `json:"status" bson:"status"`
	TimeStamp        string `json:"timeStamp" bson:"timeStamp"`
	Date             string `json:"date" bson:"date"`
	VideoLink        string `json:"videoLink" bson:"videoLink"`
	HeartRate        int    `json:"heartRate" bson:"heartRate"`
	BloodOxygenLevel int    `json:"bloodOxygenLevel" bson:"bloodOxygenLevel"`
	VehicleSpeed     int    `json:"vehicleSpeed" bson:"vehicleSpeed"`
}

// Event expands the summary into a standalone event owned by the given
// driver and user.
func (s EventSummary) Event(driverID, userID string) *Event {
	return &Event{
		EventID:          s.EventID,
		DriverID:         driverID,
		UserID:           userID,
		Status:           s.Status,
		TimeStamp:        s.TimeStamp,
		Date:             s.Date,
		VideoLink:        s.VideoLink,
		HeartRate:        s.HeartRate,
		BloodOxygenLevel: s.BloodOxygenLevel,
		VehicleSpeed:     s.VehicleSpeed,
	}
}

// Document returns the embedded entry as stored in the driver's events array.
func (s EventSummary) Document() Document {
	return Document{
		"eventId":          s.EventID,
		"status":           s.Status,
		"timeStamp":        s.TimeStamp,
		"date":             s.Date,
		"videoLink":        s.VideoLink,
		"heartRate":        s.HeartRate,
		"bloodOxygenLevel": s.BloodOxygenLevel,
		"vehicleSpeed":     s.VehicleSpeed,
	}
}

// EventSummaryFromDocument rebuilds a summary from an embedded entry.
func EventSummaryFromDocument(doc Document) EventSummary {
	return EventSummary{
		EventID:          docString(doc, "eventId"),
		Status:           docString(doc, "status"),
		TimeStamp:        docString(doc, "timeStamp"),
		Date:             docString(doc, "date"),
		VideoLink:        docString(doc, "videoLink"),
		HeartRate:        docInt(doc, "heartRate"),
		BloodOxygenLevel: docInt(doc, "bloodOxygenLevel"),
		VehicleSpeed:     docInt(doc, "vehicleSpeed"),
	}
}
