package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/timediary/internal/logging"
	"github.com/dmitrijs2005/timediary/internal/repositories/diaries"
	"github.com/dmitrijs2005/timediary/internal/repositories/sessions"
	"github.com/dmitrijs2005/timediary/internal/repositories/stats"
	"github.com/dmitrijs2005/timediary/internal/repositories/users"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory storage.Store for unit tests.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type testEnv struct {
	store    *memStore
	users    *users.StoreRepository
	sessions *sessions.StoreRepository
	stats    *stats.StoreRepository
	diaries  *diaries.StoreRepository

	identity IdentityService
	content  ContentService
	statsSvc StatsService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	s := newMemStore()
	env := &testEnv{
		store:    s,
		users:    users.NewStoreRepository(s),
		sessions: sessions.NewStoreRepository(s),
		stats:    stats.NewStoreRepository(s),
		diaries:  diaries.NewStoreRepository(s),
	}

	require.NoError(t, env.users.EnsureSeeded(ctx))
	require.NoError(t, env.sessions.EnsureSeeded(ctx))
	require.NoError(t, env.stats.EnsureSeeded(ctx))
	require.NoError(t, env.diaries.EnsureSeeded(ctx))

	log := discardLogger()
	env.identity = NewIdentityService(env.users, env.sessions, env.stats, log)
	env.content = NewContentService(env.diaries, log)
	env.statsSvc = NewStatsService(env.stats)

	return env
}
