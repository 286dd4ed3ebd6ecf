package diaries

import (
	"context"

	"github.com/dmitrijs2005/timediary/internal/models"
)

// Repository owns the diaries collection, including the comments nested in
// each diary. Diaries are never edited or deleted; the only mutations are the
// monotonic view counter and the append-only comment list.
type Repository interface {
	// GetAll returns every diary in stored order.
	GetAll(ctx context.Context) ([]models.Diary, error)

	// GetByID returns a single diary, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Diary, error)

	// GetByCategory returns all diaries with the given category label.
	// The result may be empty.
	GetByCategory(ctx context.Context, category string) ([]models.Diary, error)

	// IncrementViews adds one view to the diary. An unknown id is a silent
	// no-op: nothing is written and no error is returned.
	IncrementViews(ctx context.Context, id string) error

	// AddComment appends the comment to the diary it references and persists
	// the collection. Returns common.ErrNotFound when the diary id does not
	// resolve, leaving the stored record untouched.
	AddComment(ctx context.Context, comment *models.Comment) error

	// EnsureSeeded writes the default diaries when no usable record exists.
	EnsureSeeded(ctx context.Context) error
}
