package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

func TestMemoryStore_SetAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := Document{"driverId": "d1", "name": "Budi", "heartRate": 72}
	require.NoError(t, store.Set(ctx, "drivers", "d1", doc))

	got, ok, err := store.Get(ctx, "drivers", "d1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Budi", got["name"])
	assert.Equal(t, 72, got["heartRate"])
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	got, ok, err := store.Get(context.Background(), "drivers", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryStore_SetOverwritesWholeDocument(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "drivers", "d1", Document{"name": "Budi", "status": "Idle"}))
	require.NoError(t, store.Set(ctx, "drivers", "d1", Document{"name": "Budi"}))

	got, ok, err := store.Get(ctx, "drivers", "d1")
	require.NoError(t, err)
	require.True(t, ok)
	_, hasStatus := got["status"]
	assert.False(t, hasStatus)
}

func TestMemoryStore_UpdateMergesFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "drivers", "d1", Document{"name": "Budi", "status": "Idle"}))
	require.NoError(t, store.Update(ctx, "drivers", "d1", Document{"status": "Severe"}))

	got, _, err := store.Get(ctx, "drivers", "d1")
	require.NoError(t, err)
	assert.Equal(t, "Severe", got["status"])
	assert.Equal(t, "Budi", got["name"])
}

func TestMemoryStore_UpdateMissingReturnsNotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(context.Background(), "drivers", "nope", Document{"status": "Idle"})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "drivers", "d1", Document{"name": "Budi"}))
	require.NoError(t, store.Delete(ctx, "drivers", "d1"))
	require.NoError(t, store.Delete(ctx, "drivers", "d1"))

	_, ok, err := store.Get(ctx, "drivers", "d1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_FindByField(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "events", "e1", Document{"eventId": "e1", "driverId": "d1"}))
	require.NoError(t, store.Set(ctx, "events", "e2", Document{"eventId": "e2", "driverId": "d1"}))
	require.NoError(t, store.Set(ctx, "events", "e3", Document{"eventId": "e3", "driverId": "d2"}))

	docs, err := store.FindByField(ctx, "events", "driverId", "d1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.FindByField(ctx, "events", "driverId", "d9")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	docs, err := store.List(ctx, "users")
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, store.Set(ctx, "users", "u1", Document{"userId": "u1"}))
	require.NoError(t, store.Set(ctx, "users", "u2", Document{"userId": "u2"}))

	docs, err = store.List(ctx, "users")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := Document{"name": "Budi", "events": []interface{}{Document{"eventId": "e1"}}}
	require.NoError(t, store.Set(ctx, "drivers", "d1", original))

	// Mutating what the caller holds must not leak into the store.
	original["name"] = "changed"
	got, _, err := store.Get(ctx, "drivers", "d1")
	require.NoError(t, err)
	assert.Equal(t, "Budi", got["name"])

	got["name"] = "changed again"
	again, _, err := store.Get(ctx, "drivers", "d1")
	require.NoError(t, err)
	assert.Equal(t, "Budi", again["name"])
}
