package users

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

// load reads the users record. Absent or malformed content yields an empty
// collection.
func (r *StoreRepository) load(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func (r *StoreRepository) save(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (r *StoreRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.load(ctx)
}

func (r *StoreRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.save(ctx, users)
}

func (r *StoreRepository) EnsureSeeded(ctx context.Context) error {
	raw, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return fmt.Errorf("failed to check users record: %w", err)
	}
	if raw != nil {
		var users []models.User
		if json.Unmarshal(raw, &users) == nil {
			return nil
		}
	}
	return r.save(ctx, models.DefaultUsers())
}
