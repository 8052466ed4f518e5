package user

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/drivesense/drivesense-backend/services/user UserRepo

// UserRepo represents the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUserField(ctx context.Context, id, field string, value interface{}) error
	DeleteUser(ctx context.Context, id string) error

	// ListUsers returns every user. Login and email-uniqueness checks scan
	// this list; there is no email index.
	ListUsers(ctx context.Context) ([]*models.User, error)
}
