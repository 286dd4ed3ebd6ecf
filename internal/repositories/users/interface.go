package users

import (
	"context"

	"github.com/dmitrijs2005/timediary/internal/models"
)

// Repository owns the users collection. Users are append-only: they are
// created on registration and never updated or removed.
type Repository interface {
	// GetAll returns every registered user.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByUsername returns the user with the exact (case-sensitive) username,
	// or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create appends a new user and persists the collection.
	Create(ctx context.Context, user *models.User) error

	// EnsureSeeded writes the default user list when no usable record exists.
	EnsureSeeded(ctx context.Context) error
}
