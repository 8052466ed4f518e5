package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/services/user/mocks"
)

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	return NewUserUC(repo, &models.Config{}), repo
}

func TestRegister_Success(t *testing.T) {
	uc, repo := newTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	var created *models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			created = u
			return nil
		})

	usr, err := uc.Register(ctx, &models.RegisterRequest{
		Name:        "Budi",
		Email:       "budi@example.com",
		PhoneNumber: "+62811111111",
		Password:    "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, usr.UserID, "userId must be generated when omitted")
	assert.Equal(t, hashPassword("secret123"), usr.PasswordHash)
	assert.NotEqual(t, "secret123", usr.PasswordHash)
	assert.Equal(t, created, usr)
}

func TestRegister_KeepsClientSuppliedUserID(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	usr, err := uc.Register(context.Background(), &models.RegisterRequest{
		UserID:      "u1",
		Name:        "Budi",
		Email:       "budi@example.com",
		PhoneNumber: "+62811111111",
		Password:    "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", usr.UserID)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "missing name", req: models.RegisterRequest{Email: "a@b.c", PhoneNumber: "1", Password: "secret123"}},
		{name: "missing email", req: models.RegisterRequest{Name: "Budi", PhoneNumber: "1", Password: "secret123"}},
		{name: "missing phone", req: models.RegisterRequest{Name: "Budi", Email: "a@b.c", Password: "secret123"}},
		{name: "short password", req: models.RegisterRequest{Name: "Budi", Email: "a@b.c", PhoneNumber: "1", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUC(t)
			_, err := uc.Register(context.Background(), &tt.req)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().ListUsers(gomock.Any()).Return([]*models.User{
		{UserID: "u1", Email: "Budi@Example.com"},
	}, nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:        "Budi",
		Email:       "budi@example.com",
		PhoneNumber: "+62811111111",
		Password:    "secret123",
	})
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateEmail), "email comparison is case-insensitive")
}

func TestEditUserField_RequiresFieldName(t *testing.T) {
	uc, _ := newTestUC(t)

	err := uc.EditUserField(context.Background(), "u1", "", "x")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestDeleteUser_MissingUser(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().GetUser(gomock.Any(), "ghost").
		Return(nil, apperrors.ErrNotFound)

	err := uc.DeleteUser(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDeleteUser_Success(t *testing.T) {
	uc, repo := newTestUC(t)

	gomock.InOrder(
		repo.EXPECT().GetUser(gomock.Any(), "u1").Return(&models.User{UserID: "u1"}, nil),
		repo.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil),
	)

	require.NoError(t, uc.DeleteUser(context.Background(), "u1"))
}
