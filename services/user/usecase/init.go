package usecase

import (
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/user"
)

// UserUC implements the user usecase: account CRUD plus authentication.
type UserUC struct {
	userRepo user.UserRepo
	tokens   *tokenStore
	cfg      *models.Config
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo user.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		tokens:   newTokenStore(resetTokenTTL),
		cfg:      cfg,
	}
}
