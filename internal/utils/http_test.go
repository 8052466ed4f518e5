package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: apperrors.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("driver d1: %w", apperrors.ErrNotFound), want: http.StatusNotFound},
		{name: "unauthorized", err: apperrors.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "invalid password", err: apperrors.ErrInvalidPassword, want: http.StatusUnauthorized},
		{name: "invalid or expired token", err: apperrors.ErrInvalidOrExpiredToken, want: http.StatusUnauthorized},
		{name: "invalid enum", err: fmt.Errorf("status %q: %w", "Nope", apperrors.ErrInvalidEnumValue), want: http.StatusBadRequest},
		{name: "duplicate email", err: apperrors.ErrDuplicateEmail, want: http.StatusBadRequest},
		{name: "validation", err: apperrors.ErrValidation, want: http.StatusBadRequest},
		{name: "store error wrapping not found", err: apperrors.NewStoreError("update", "drivers", "d1", apperrors.ErrNotFound), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestServiceErrorResponse_ReturnsMessageVerbatim(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := fmt.Errorf("driver d1 does not belong to user u2: %w", apperrors.ErrUnauthorized)
	require.NoError(t, ServiceErrorResponse(c, err))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, err.Error(), body.Error)
	assert.Equal(t, http.StatusUnauthorized, body.Code)
}

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "created", map[string]string{"id": "d1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "created", body.Message)
}
