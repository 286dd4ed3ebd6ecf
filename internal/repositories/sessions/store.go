package sessions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/storage"
)

// StoreRepository implements Repository over the key/value store. The session
// record is either a JSON user object or the literal null for anonymous.
type StoreRepository struct {
	store storage.Store
}

// NewStoreRepository returns a StoreRepository bound to the given store.
func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) Current(ctx context.Context) (*models.User, error) {
	raw, err := r.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	// A malformed record means anonymous, not an error.
	var user *models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, nil
	}
	return user, nil
}

func (r *StoreRepository) Set(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *StoreRepository) Clear(ctx context.Context) error {
	return r.Set(ctx, nil)
}

func (r *StoreRepository) EnsureSeeded(ctx context.Context) error {
	raw, err := r.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("failed to check session record: %w", err)
	}
	if raw != nil {
		return nil
	}
	return r.Clear(ctx)
}
