// Package docstore is a thin synchronous client over a schemaless document
// database addressed by (collection, document id). All durable storage and
// query guarantees are delegated to the backing store; the adapter only
// attaches collection/id context to failures.
package docstore

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
)

// Document is a schemaless document as stored in a collection.
type Document = models.Document

// Store is the contract every collection access goes through.
//
// Get never fails for the missing-document case; callers branch on the
// returned bool. Delete is idempotent: deleting an absent document is not an
// error. Update merges the named fields into an existing document and fails
// with apperrors.ErrNotFound when the document is absent.
type Store interface {
	// Set creates or fully overwrites the document.
	Set(ctx context.Context, collection, id string, doc Document) error

	// Update merges fields into an existing document, leaving unnamed
	// fields untouched.
	Update(ctx context.Context, collection, id string, fields Document) error

	// Get returns the full document, or ok=false when it does not exist.
	Get(ctx context.Context, collection, id string) (doc Document, ok bool, err error)

	// Delete removes the document if present.
	Delete(ctx context.Context, collection, id string) error

	// FindByField returns every document whose field equals value.
	FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error)

	// List returns every document in the collection. Full scan; used for
	// the email-uniqueness and login lookups, which have no index.
	List(ctx context.Context, collection string) ([]Document, error)
}
