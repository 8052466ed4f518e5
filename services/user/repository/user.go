package repository

import (
	"context"
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// CreateUser creates or fully overwrites the user document.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.store.Set(ctx, UserCollection, user.UserID, user.Document())
}

// GetUser retrieves a user by id.
func (r *UserRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	doc, ok, err := r.store.Get(ctx, UserCollection, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	return models.UserFromDocument(doc), nil
}

// UpdateUserField merges a single field into the user document.
func (r *UserRepo) UpdateUserField(ctx context.Context, id, field string, value interface{}) error {
	err := r.store.Update(ctx, UserCollection, id, models.Document{field: value})
	if err != nil {
		if apperrors.IsStoreError(err) {
			return err
		}
		return fmt.Errorf("user %s: %w", id, err)
	}
	return nil
}

// DeleteUser removes the user document. Deleting an absent user is not an
// error at this layer; the usecase checks existence first.
func (r *UserRepo) DeleteUser(ctx context.Context, id string) error {
	return r.store.Delete(ctx, UserCollection, id)
}

// ListUsers returns all user documents.
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	docs, err := r.store.List(ctx, UserCollection)
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, models.UserFromDocument(doc))
	}
	return users, nil
}
