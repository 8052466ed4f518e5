package repository

import (
	"github.com/drivesense/drivesense-backend/internal/pkg/docstore"
)

const (
	// DriverCollection is the drivers collection name
	DriverCollection = "drivers"
	// EventCollection is the standalone events collection name
	EventCollection = "events"
)

// DriverRepo handles driver document persistence
type DriverRepo struct {
	store docstore.Store
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(store docstore.Store) *DriverRepo {
	return &DriverRepo{store: store}
}

// EventRepo handles standalone event document persistence
type EventRepo struct {
	store docstore.Store
}

// NewEventRepo creates a new event repository
func NewEventRepo(store docstore.Store) *EventRepo {
	return &EventRepo{store: store}
}
