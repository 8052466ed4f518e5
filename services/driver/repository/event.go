package repository

import (
	"context"
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// SetEvent creates or fully overwrites the standalone event document.
func (r *EventRepo) SetEvent(ctx context.Context, event *models.Event) error {
	return r.store.Set(ctx, EventCollection, event.EventID, event.Document())
}

// GetEvent retrieves a standalone event by id.
func (r *EventRepo) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	doc, ok, err := r.store.Get(ctx, EventCollection, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("event %s: %w", id, apperrors.ErrNotFound)
	}
	return models.EventFromDocument(doc), nil
}

// UpdateEventFields merges the named fields into the event document.
func (r *EventRepo) UpdateEventFields(ctx context.Context, id string, fields models.Document) error {
	err := r.store.Update(ctx, EventCollection, id, fields)
	if err != nil {
		if apperrors.IsStoreError(err) {
			return err
		}
		return fmt.Errorf("event %s: %w", id, err)
	}
	return nil
}

// DeleteEvent removes the standalone event document if present.
func (r *EventRepo) DeleteEvent(ctx context.Context, id string) error {
	return r.store.Delete(ctx, EventCollection, id)
}

// ListEventsByDriver returns every standalone event stamped with driverID.
func (r *EventRepo) ListEventsByDriver(ctx context.Context, driverID string) ([]*models.Event, error) {
	docs, err := r.store.FindByField(ctx, EventCollection, "driverId", driverID)
	if err != nil {
		return nil, err
	}
	events := make([]*models.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, models.EventFromDocument(doc))
	}
	return events, nil
}
