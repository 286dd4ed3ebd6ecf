package diaries

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/timediary/internal/common"
	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func seededRepo(t *testing.T) (*StoreRepository, *memStore) {
	t.Helper()
	s := newMemStore()
	r := NewStoreRepository(s)
	require.NoError(t, r.EnsureSeeded(context.Background()))
	return r, s
}

func TestEnsureSeeded_FreshStoreWritesThreeDiaries(t *testing.T) {
	r, _ := seededRepo(t)

	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, d := range all {
		assert.NotNil(t, d.Comments)
		assert.Empty(t, d.Comments)
	}
}

func TestEnsureSeeded_DoesNotOverwriteExistingRecord(t *testing.T) {
	r, _ := seededRepo(t)
	ctx := context.Background()

	require.NoError(t, r.IncrementViews(ctx, "1"))
	require.NoError(t, r.EnsureSeeded(ctx))

	d, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1235, d.Views)
}

func TestGetByID(t *testing.T) {
	r, _ := seededRepo(t)
	ctx := context.Background()

	d, err := r.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "咖啡与午后", d.Title)

	_, err = r.GetByID(ctx, "nonexistent-id")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByCategory(t *testing.T) {
	r, _ := seededRepo(t)
	ctx := context.Background()

	got, err := r.GetByCategory(ctx, "生活")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "雨中的宁静", got[0].Title)

	empty, err := r.GetByCategory(ctx, "美食")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIncrementViews_AddsExactlyOnePerCall(t *testing.T) {
	r, _ := seededRepo(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, r.IncrementViews(ctx, "3"))
	}

	d, err := r.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 2156+n, d.Views)
}

func TestIncrementViews_UnknownIDLeavesRecordUntouched(t *testing.T) {
	r, s := seededRepo(t)
	ctx := context.Background()

	before := append([]byte(nil), s.data[storage.KeyDiaries]...)
	require.NoError(t, r.IncrementViews(ctx, "nonexistent-id"))
	assert.Equal(t, before, s.data[storage.KeyDiaries])
}

func TestAddComment_AppendsPreservingOrder(t *testing.T) {
	r, _ := seededRepo(t)
	ctx := context.Background()

	first := &models.Comment{ID: "c1", DiaryID: "1", UserID: "u1", Username: "alice", Content: "hello"}
	second := &models.Comment{ID: "c2", DiaryID: "1", UserID: "u2", Username: "bob", Content: "hi"}
	require.NoError(t, r.AddComment(ctx, first))
	require.NoError(t, r.AddComment(ctx, second))

	d, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, d.Comments, 2)
	assert.Equal(t, *first, d.Comments[0])
	assert.Equal(t, *second, d.Comments[1])
}

func TestAddComment_UnknownDiaryFailsAndLeavesRecordUntouched(t *testing.T) {
	r, s := seededRepo(t)
	ctx := context.Background()

	before := append([]byte(nil), s.data[storage.KeyDiaries]...)
	err := r.AddComment(ctx, &models.Comment{ID: "c1", DiaryID: "nonexistent-id", Content: "hi"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, before, s.data[storage.KeyDiaries])
}

func TestPersistenceRoundTrip(t *testing.T) {
	r, s := seededRepo(t)
	ctx := context.Background()

	require.NoError(t, r.IncrementViews(ctx, "1"))
	require.NoError(t, r.AddComment(ctx, &models.Comment{ID: "c1", DiaryID: "2", Username: "alice", Content: "hello"}))

	before, err := r.GetAll(ctx)
	require.NoError(t, err)

	// A fresh repository over the same store must read back deep-equal state.
	reloaded := NewStoreRepository(s)
	for _, want := range before {
		got, err := reloaded.GetByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	}
}

func TestGetAll_MalformedRecordReadsAsEmpty(t *testing.T) {
	s := newMemStore()
	s.data[storage.KeyDiaries] = []byte(`{broken`)
	r := NewStoreRepository(s)

	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
