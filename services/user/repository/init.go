package repository

import (
	"github.com/drivesense/drivesense-backend/internal/pkg/docstore"
)

// UserCollection is the document collection users are stored in.
const UserCollection = "users"

// UserRepo persists users in the document store.
type UserRepo struct {
	store docstore.Store
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(store docstore.Store) *UserRepo {
	return &UserRepo{store: store}
}
