package usecase

import (
	"context"
	"fmt"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// Authenticate verifies login credentials. It succeeds iff a user with the
// given email exists and its stored digest equals the digest of password.
func (u *UserUC) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	usr, err := u.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
	}
	if usr.PasswordHash != hashPassword(password) {
		return nil, fmt.Errorf("wrong password for %s: %w", email, apperrors.ErrInvalidPassword)
	}
	return usr, nil
}

// RequestPasswordReset issues a single-use reset token for the account with
// the given email. The token lives in process memory only.
func (u *UserUC) RequestPasswordReset(ctx context.Context, email string) (*models.PasswordResetToken, error) {
	usr, err := u.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
	}

	value, expiresAt, err := u.tokens.issue(usr.UserID, usr.Email)
	if err != nil {
		return nil, err
	}

	logger.Info("Password reset requested",
		logger.String("user_id", usr.UserID))

	return &models.PasswordResetToken{
		Token:     value,
		Email:     usr.Email,
		ExpiresAt: expiresAt,
	}, nil
}

// ResetPassword consumes a reset token and stores the new password digest
// through the regular field-edit path.
func (u *UserUC) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long: %w",
			minPasswordLength, apperrors.ErrValidation)
	}

	entry, err := u.tokens.consume(token)
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdateUserField(ctx, entry.userID, "passwordHash", hashPassword(newPassword)); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		logger.String("user_id", entry.userID))

	return nil
}
