package diaries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/timediary/internal/common"
	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/storage"
)

// StoreRepository implements Repository over the key/value store. The whole
// collection lives under a single key and is rewritten on every mutation.
type StoreRepository struct {
	store storage.Store
}

// NewStoreRepository returns a StoreRepository bound to the given store.
func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) load(ctx context.Context) ([]models.Diary, error) {
	raw, err := r.store.Get(ctx, storage.KeyDiaries)
	if err != nil {
		return nil, fmt.Errorf("failed to load diaries: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var diaries []models.Diary
	if err := json.Unmarshal(raw, &diaries); err != nil {
		return nil, nil
	}
	return diaries, nil
}

func (r *StoreRepository) save(ctx context.Context, diaries []models.Diary) error {
	raw, err := json.Marshal(diaries)
	if err != nil {
		return fmt.Errorf("failed to marshal diaries: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyDiaries, raw); err != nil {
		return fmt.Errorf("failed to save diaries: %w", err)
	}
	return nil
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]models.Diary, error) {
	return r.load(ctx)
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*models.Diary, error) {
	diaries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range diaries {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) GetByCategory(ctx context.Context, category string) ([]models.Diary, error) {
	diaries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Diary
	for _, d := range diaries {
		if d.Category == category {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *StoreRepository) IncrementViews(ctx context.Context, id string) error {
	diaries, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range diaries {
		if diaries[i].ID == id {
			diaries[i].Views++
			return r.save(ctx, diaries)
		}
	}

	// Unknown id: nothing to count, nothing to persist.
	return nil
}

func (r *StoreRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	diaries, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range diaries {
		if diaries[i].ID == comment.DiaryID {
			diaries[i].Comments = append(diaries[i].Comments, *comment)
			return r.save(ctx, diaries)
		}
	}
	return common.ErrNotFound
}

func (r *StoreRepository) EnsureSeeded(ctx context.Context) error {
	raw, err := r.store.Get(ctx, storage.KeyDiaries)
	if err != nil {
		return fmt.Errorf("failed to check diaries record: %w", err)
	}
	if raw != nil {
		var diaries []models.Diary
		if json.Unmarshal(raw, &diaries) == nil {
			return nil
		}
	}
	return r.save(ctx, models.DefaultDiaries())
}
