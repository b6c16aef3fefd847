package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgrewal/tinylink/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo, err := New(filepath.Join(t.TempDir(), "links.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return repo
}

func TestRepository_CreateAndGetLink(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateLink(ctx, "abc123", "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "abc123", created.Code)
	assert.Equal(t, "https://example.com/a", created.URL)
	assert.Equal(t, 0, created.Clicks)
	assert.Nil(t, created.LastClickedAt)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetLink(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, created.Code, got.Code)
	assert.Equal(t, created.URL, got.URL)
	assert.Equal(t, 0, got.Clicks)
	assert.Nil(t, got.LastClickedAt)
}

func TestRepository_CreateLink_Conflict(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.CreateLink(ctx, "abc123", "https://example.com/a")
	require.NoError(t, err)

	_, err = repo.CreateLink(ctx, "abc123", "https://example.com/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeConflict)

	// The original row must be untouched
	got, err := repo.GetLink(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", got.URL)
}

func TestRepository_GetLink_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetLink(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_GetAllLinks_Ordering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, code := range []string{"first1", "second", "third3"} {
		_, err := repo.CreateLink(ctx, code, "https://example.com/"+code)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	links, err := repo.GetAllLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)

	// Most recent first
	assert.Equal(t, "third3", links[0].Code)
	assert.Equal(t, "second", links[1].Code)
	assert.Equal(t, "first1", links[2].Code)
}

func TestRepository_GetAllLinks_Empty(t *testing.T) {
	repo := newTestRepository(t)

	links, err := repo.GetAllLinks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestRepository_DeleteLink(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.CreateLink(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteLink(ctx, "abc123"))

	_, err = repo.GetLink(ctx, "abc123")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again reports absence rather than succeeding silently
	err = repo.DeleteLink(ctx, "abc123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_CodeExists(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	exists, err := repo.CodeExists(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.CreateLink(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	exists, err = repo.CodeExists(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_RegisterClick(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.CreateLink(ctx, "abc123", "https://example.com")
	require.NoError(t, err)

	clickedAt := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.RegisterClick(ctx, "abc123", clickedAt))
	}

	got, err := repo.GetLink(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Clicks)
	require.NotNil(t, got.LastClickedAt)
	assert.WithinDuration(t, clickedAt, *got.LastClickedAt, time.Second)
}

func TestRepository_RegisterClick_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.RegisterClick(context.Background(), "missing", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Ping(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
