package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/ports"
)

func TestSessionStoreSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	sess := domainauth.Session{
		ID:        "s-1",
		UserID:    "u-1",
		Email:     "dev@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStoreRejectsEmptyID(t *testing.T) {
	store := NewSessionStore()
	err := store.Save(context.Background(), domainauth.Session{ExpiresAt: time.Now().Add(time.Hour)})
	assert.Error(t, err)
}

func TestSessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	now := time.Now()
	store.now = func() time.Time { return now }

	sess := domainauth.Session{ID: "s-exp", Role: domainauth.RoleUser, ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, sess))

	// Advance past expiry; the next Get evicts the session.
	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "s-exp")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStoreRejectsExpiredSave(t *testing.T) {
	store := NewSessionStore()
	err := store.Save(context.Background(), domainauth.Session{
		ID:        "s-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestContentRepoListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo([]*model.Content{
		{ID: "c1", Title: "Spring Hackathon", Category: model.CategoryContest, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "c2", Title: "Go Workshop", Category: model.CategoryEducation, CreatedAt: time.Now()},
	})

	all, err := repo.List(ctx, model.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, "c2", all[0].ID)

	contests, err := repo.List(ctx, model.ContentFilter{Category: model.CategoryContest})
	require.NoError(t, err)
	require.Len(t, contests, 1)
	assert.Equal(t, "c1", contests[0].ID)
}

func TestContentRepoGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo([]*model.Content{{ID: "c1", Title: "Spring Hackathon"}})

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Spring Hackathon", got.Title)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentRepoCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo(nil)

	created, err := repo.Create(ctx, &model.Content{Title: "New Event"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestContentRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo([]*model.Content{{ID: "c1", Title: "Original"}})

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	got.Title = "Mutated"

	again, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}

func TestAccountRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepo([]*model.Account{{ID: "a1", Email: "a@example.com"}})

	deleted, err := repo.Delete(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCacheTTL(t *testing.T) {
	ctx := context.Background()
	cache := NewCache()

	now := time.Now()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(2 * time.Minute)
	got, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewCache()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), 0))

	ok, err := cache.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
