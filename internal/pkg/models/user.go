package models

// User represents an account that owns drivers. Email doubles as the login
// identifier and must be unique across users; uniqueness is enforced by the
// authentication service, not by the store.
type User struct {
	UserID       string `json:"userId" bson:"userId"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PhoneNumber  string `json:"phoneNumber" bson:"phoneNumber"`
	PasswordHash string `json:"-" bson:"passwordHash"`
}

// Document returns the exact key set persisted for a user.
func (u *User) Document() Document {
	return Document{
		"userId":       u.UserID,
		"name":         u.Name,
		"email":        u.Email,
		"phoneNumber":  u.PhoneNumber,
		"passwordHash": u.PasswordHash,
	}
}

// UserFromDocument rebuilds a user from its stored document.
func UserFromDocument(doc Document) *User {
	return &User{
		UserID:       docString(doc, "userId"),
		Name:         docString(doc, "name"),
		Email:        docString(doc, "email"),
		PhoneNumber:  docString(doc, "phoneNumber"),
		PasswordHash: docString(doc, "passwordHash"),
	}
}

// EmergencyContact is a person to notify about a driver's safety events.
type EmergencyContact struct {
	Name        string `json:"name" bson:"name"`
	PhoneNumber string `json:"phoneNumber" bson:"phone_number"`
}

// Document returns the contact entry as embedded inside a driver document.
// The stored key is phone_number, matching the original collection layout.
func (c EmergencyContact) Document() Document {
	return Document{
		"name":         c.Name,
		"phone_number": c.PhoneNumber,
	}
}

// EmergencyContactFromDocument rebuilds a contact from an embedded entry.
func EmergencyContactFromDocument(doc Document) EmergencyContact {
	return EmergencyContact{
		Name:        docString(doc, "name"),
		PhoneNumber: docString(doc, "phone_number"),
	}
}
