package sessions

import (
	"context"

	"github.com/dmitrijs2005/timediary/internal/models"
)

// Repository owns the current-user pointer, held separately from the users
// collection. At most one user is current at a time; absence means anonymous.
type Repository interface {
	// Current returns the logged-in user, or (nil, nil) when anonymous.
	Current(ctx context.Context) (*models.User, error)

	// Set makes user the current session.
	Set(ctx context.Context, user *models.User) error

	// Clear drops the session pointer. Always succeeds on a healthy store.
	Clear(ctx context.Context) error

	// EnsureSeeded writes an explicit anonymous marker when no record exists.
	EnsureSeeded(ctx context.Context) error
}
