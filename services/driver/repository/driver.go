package repository

import (
	"context"
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// SetDriver creates or fully overwrites the driver document, embedded
// contact and event arrays included.
func (r *DriverRepo) SetDriver(ctx context.Context, driver *models.Driver) error {
	return r.store.Set(ctx, DriverCollection, driver.DriverID, driver.Document())
}

// GetDriver retrieves a driver by id.
func (r *DriverRepo) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	doc, ok, err := r.store.Get(ctx, DriverCollection, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("driver %s: %w", id, apperrors.ErrNotFound)
	}
	return models.DriverFromDocument(doc), nil
}

// UpdateDriverFields merges the named fields into the driver document.
// Replacing the whole events array goes through here as a single field.
func (r *DriverRepo) UpdateDriverFields(ctx context.Context, id string, fields models.Document) error {
	err := r.store.Update(ctx, DriverCollection, id, fields)
	if err != nil {
		if apperrors.IsStoreError(err) {
			return err
		}
		return fmt.Errorf("driver %s: %w", id, err)
	}
	return nil
}

// DeleteDriver removes the driver document. Absent drivers are not an error
// at this layer; the usecase runs its ownership check first.
func (r *DriverRepo) DeleteDriver(ctx context.Context, id string) error {
	return r.store.Delete(ctx, DriverCollection, id)
}

// ListDriversByUser returns every driver owned by the given user.
func (r *DriverRepo) ListDriversByUser(ctx context.Context, userID string) ([]*models.Driver, error) {
	docs, err := r.store.FindByField(ctx, DriverCollection, "userId", userID)
	if err != nil {
		return nil, err
	}
	drivers := make([]*models.Driver, 0, len(docs))
	for _, doc := range docs {
		drivers = append(drivers, models.DriverFromDocument(doc))
	}
	return drivers, nil
}
