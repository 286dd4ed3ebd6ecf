package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/storage"
)

// StoreRepository implements Repository over the key/value store.
type StoreRepository struct {
	store storage.Store
}

// NewStoreRepository returns a StoreRepository bound to the given store.
func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) save(ctx context.Context, s models.Stats) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyStats, raw); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

func (r *StoreRepository) Get(ctx context.Context) (models.Stats, error) {
	raw, err := r.store.Get(ctx, storage.KeyStats)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	if raw == nil {
		return models.DefaultStats(), nil
	}

	var s models.Stats
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.DefaultStats(), nil
	}
	return s, nil
}

func (r *StoreRepository) IncrementUsers(ctx context.Context) error {
	raw, err := r.store.Get(ctx, storage.KeyStats)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var s models.Stats
	if raw != nil {
		// Malformed content decodes as an empty record.
		_ = json.Unmarshal(raw, &s)
	}
	if s.TotalUsers == 0 {
		s.TotalUsers = models.DefaultTotalUsers
	}
	s.TotalUsers++

	return r.save(ctx, s)
}

func (r *StoreRepository) EnsureSeeded(ctx context.Context) error {
	raw, err := r.store.Get(ctx, storage.KeyStats)
	if err != nil {
		return fmt.Errorf("failed to check stats record: %w", err)
	}
	if raw != nil {
		var s models.Stats
		if json.Unmarshal(raw, &s) == nil {
			return nil
		}
	}
	return r.save(ctx, models.DefaultStats())
}
