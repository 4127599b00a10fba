package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/internal/domain/entity"
)

func newTestStateRepository(t *testing.T) *SQLiteStateRepository {
	t.Helper()
	repo, err := OpenStateRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestStateRepositoryLoadEmpty(t *testing.T) {
	repo := newTestStateRepository(t)

	persisted, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	repo := newTestStateRepository(t)
	ctx := context.Background()

	state := entity.State{
		Lines:    []entity.CartLine{{ProductID: "sku-1", Quantity: 3, UnitPrice: 12.5}},
		Wishlist: []string{"sku-2", "sku-3"},
	}
	require.NoError(t, repo.Save(ctx, "user-1", state))

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.UserID)
	assert.Equal(t, state, persisted.State)
	assert.False(t, persisted.UpdatedAt.IsZero())
}

func TestStateRepositorySaveOverwritesSlot(t *testing.T) {
	repo := newTestStateRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "user-1", entity.State{Lines: []entity.CartLine{{ProductID: "sku-1", Quantity: 1}}}))
	require.NoError(t, repo.Save(ctx, "user-2", entity.State{Wishlist: []string{"sku-9"}}))

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "user-2", persisted.UserID)
	assert.Empty(t, persisted.State.Lines)
	assert.Equal(t, []string{"sku-9"}, persisted.State.Wishlist)
}

func TestStateRepositoryClear(t *testing.T) {
	repo := newTestStateRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "user-1", entity.State{Wishlist: []string{"sku-1"}}))
	require.NoError(t, repo.Clear(ctx))

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestStateRepositoryRequiresPath(t *testing.T) {
	_, err := OpenStateRepository("  ")
	assert.Error(t, err)
}
