package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

const minPasswordLength = 6

// Register creates a new user account. Email uniqueness is checked with a
// scan over the users collection before the write; two concurrent signups
// with the same email can race past it. Accepted limitation of this design.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("phone number is required: %w", apperrors.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long: %w",
			minPasswordLength, apperrors.ErrValidation)
	}

	existing, err := u.findUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists: %w", req.Email, apperrors.ErrDuplicateEmail)
	}

	userID := req.UserID
	if userID == "" {
		userID = uuid.New().String()
	}

	usr := &models.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashPassword(req.Password),
	}

	if err := u.userRepo.CreateUser(ctx, usr); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", usr.UserID),
		logger.String("email", usr.Email))

	return usr, nil
}

// GetUserByID retrieves a user by id.
func (u *UserUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return u.userRepo.GetUser(ctx, id)
}

// EditUserField merges a single field into the user document. Field names
// are passed through untyped; the store imposes no schema.
func (u *UserUC) EditUserField(ctx context.Context, id, field string, value interface{}) error {
	if field == "" {
		return fmt.Errorf("fieldToChange is required: %w", apperrors.ErrValidation)
	}
	return u.userRepo.UpdateUserField(ctx, id, field, value)
}

// DeleteUser removes the user. Drivers owned by the user are not cascaded.
func (u *UserUC) DeleteUser(ctx context.Context, id string) error {
	if _, err := u.userRepo.GetUser(ctx, id); err != nil {
		return err
	}
	return u.userRepo.DeleteUser(ctx, id)
}

// findUserByEmail linear-scans all users for a matching email. O(users);
// flagged as a scalability boundary, there is no email index.
func (u *UserUC) findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := u.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, usr := range users {
		if strings.EqualFold(usr.Email, email) {
			return usr, nil
		}
	}
	return nil, nil
}
