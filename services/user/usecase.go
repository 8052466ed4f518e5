package user

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/drivesense/drivesense-backend/services/user UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	EditUserField(ctx context.Context, id, field string, value interface{}) error
	DeleteUser(ctx context.Context, id string) error

	// authentication
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	RequestPasswordReset(ctx context.Context, email string) (*models.PasswordResetToken, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}
