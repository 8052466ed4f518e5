package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds returned by the service layer. Handlers map these to HTTP
// status codes with errors.Is; messages are returned to the client verbatim.
var (
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidEnumValue      = errors.New("invalid enum value")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrValidation            = errors.New("validation error")
)

// StoreError wraps a failure from the underlying document store with the
// collection/id it occurred on. Store failures are never swallowed silently
// except for best-effort cascade deletes.
type StoreError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *StoreError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("store %s %s/%s: %v", e.Op, e.Collection, e.ID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError attaches collection/id context to an underlying store failure.
func NewStoreError(op, collection, id string, err error) *StoreError {
	return &StoreError{Op: op, Collection: collection, ID: id, Err: err}
}

// IsStoreError reports whether err carries store failure context.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
