package docstore

import (
	"context"
	"sync"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

// MemoryStore is an in-memory Store used by tests and local development.
// Documents are deep-copied on the way in and out so callers cannot mutate
// stored state through shared maps.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		col = make(map[string]Document)
		s.collections[collection] = col
	}
	col[id] = copyDocument(doc)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collections[collection]
	doc, ok := col[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	for k, v := range fields {
		doc[k] = copyValue(v)
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, false, nil
	}
	return copyDocument(doc), true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, doc := range s.collections[collection] {
		if doc[field] == value {
			docs = append(docs, copyDocument(doc))
		}
	}
	return docs, nil
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, doc := range s.collections[collection] {
		docs = append(docs, copyDocument(doc))
	}
	return docs, nil
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case Document:
		return copyDocument(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = copyValue(t[i])
		}
		return out
	default:
		return v
	}
}
