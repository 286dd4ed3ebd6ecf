package stats

import (
	"context"

	"github.com/dmitrijs2005/timediary/internal/models"
)

// Repository owns the display-only counters record. The counters are vanity
// values: they are seeded once and never recomputed from the actual
// collections. Only the user counter ever moves, on registration.
type Repository interface {
	// Get returns the persisted counters, or the seed defaults when no usable
	// record exists.
	Get(ctx context.Context) (models.Stats, error)

	// IncrementUsers adds one to the user counter, starting from the baseline
	// when the counter is unset.
	IncrementUsers(ctx context.Context) error

	// EnsureSeeded writes the default counters when no usable record exists.
	EnsureSeeded(ctx context.Context) error
}
