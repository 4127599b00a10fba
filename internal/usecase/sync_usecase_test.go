package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsync/internal/domain/entity"
	"shopsync/internal/infrastructure/localstate"
	apperrors "shopsync/pkg/errors"
)

func newSyncFixture(userID string) (*SyncController, *localstate.Cache, *fakeCartRemote, *fakeWishlistRemote, *fakeStateRepository) {
	cache := localstate.New()
	cart := &fakeCartRemote{}
	wishlist := &fakeWishlistRemote{}
	states := &fakeStateRepository{}
	ctrl := NewSyncController(cache, cart, wishlist, states, sessionFor(userID))
	return ctrl, cache, cart, wishlist, states
}

func TestMutateAddLineCommitsCanonicalState(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")
	cart.setFn = func(userID, productID string, quantity int) ([]entity.CartLine, error) {
		return []entity.CartLine{{ProductID: "sku-1", Quantity: 1}}, nil
	}

	err := ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, []entity.CartLine{{ProductID: "sku-1", Quantity: 1}}, cache.Lines())
}

func TestMutateRemovalIsImmediateAndConfirmed(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")
	cache.Set(entity.State{Lines: []entity.CartLine{{ProductID: "sku-1", Quantity: 2}}})

	cart.setFn = func(userID, productID string, quantity int) ([]entity.CartLine, error) {
		// The optimistic removal is visible before the remote resolves.
		assert.Empty(t, cache.Lines())
		assert.Equal(t, 0, quantity)
		return []entity.CartLine{}, nil
	}

	err := ctrl.Mutate(context.Background(), entity.SetQuantity{ProductID: "sku-1", Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, cache.Lines())
}

func TestMutateRollsBackOnRemoteFailure(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")
	cache.Set(entity.State{Lines: []entity.CartLine{{ProductID: "sku-1", Quantity: 1}}})
	before := cache.State()

	cart.setFn = func(userID, productID string, quantity int) ([]entity.CartLine, error) {
		return nil, apperrors.Internal("backend exploded", nil)
	}

	err := ctrl.Mutate(context.Background(), entity.SetQuantity{ProductID: "sku-1", Quantity: 3})
	assert.True(t, apperrors.Is(err, "SYNC_FAILED"))
	assert.Equal(t, before, cache.State())
}

func TestMutateUnauthenticatedMakesNoCall(t *testing.T) {
	ctrl, cache, cart, wishlist, _ := newSyncFixture("")

	err := ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-2", Quantity: 1})
	assert.True(t, apperrors.Is(err, "UNAUTHENTICATED"))
	assert.Empty(t, cart.calls())
	assert.Zero(t, wishlist.toggleCount())
	assert.Empty(t, cache.Lines())
}

func TestMutateSendsMergedAbsoluteQuantity(t *testing.T) {
	ctrl, _, cart, _, _ := newSyncFixture("user-1")

	require.NoError(t, ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 2}))
	require.NoError(t, ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 3}))

	assert.Equal(t, []int{2, 5}, cart.calls())
}

func TestMutateServerClampWins(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")
	cart.setFn = func(userID, productID string, quantity int) ([]entity.CartLine, error) {
		// Stock allows 3
		return []entity.CartLine{{ProductID: productID, Quantity: 3}}, nil
	}

	require.NoError(t, ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 10}))

	line, ok := cache.State().Line("sku-1")
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
}

func TestMutateSameKeySerialized(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")
	cache.Set(entity.State{Lines: []entity.CartLine{{ProductID: "sku-1", Quantity: 1}}})

	firstInFlight := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	cart.setFn = func(userID, productID string, quantity int) ([]entity.CartLine, error) {
		once.Do(func() {
			close(firstInFlight)
			<-release
		})
		return []entity.CartLine{{ProductID: productID, Quantity: quantity}}, nil
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, ctrl.Mutate(context.Background(), entity.SetQuantity{ProductID: "sku-1", Quantity: 2}))
	}()
	<-firstInFlight
	go func() {
		defer wg.Done()
		assert.NoError(t, ctrl.Mutate(context.Background(), entity.SetQuantity{ProductID: "sku-1", Quantity: 5}))
	}()

	// Let the second mutation reach the per-product lock, then unblock.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, []int{2, 5}, cart.calls())
	line, _ := cache.State().Line("sku-1")
	assert.Equal(t, 5, line.Quantity)
}

func TestMutateWishlistToggle(t *testing.T) {
	ctrl, cache, _, wishlist, _ := newSyncFixture("user-1")
	wishlist.toggleFn = func(userID, productID string) ([]string, error) {
		return []string{productID}, nil
	}

	require.NoError(t, ctrl.Mutate(context.Background(), entity.AddWishlistEntry{ProductID: "sku-1"}))
	assert.Equal(t, []string{"sku-1"}, cache.WishlistItems())
	assert.Equal(t, 1, wishlist.toggleCount())
}

func TestMutateIdempotentWishlistAddSkipsNetwork(t *testing.T) {
	ctrl, cache, _, wishlist, _ := newSyncFixture("user-1")
	cache.Set(entity.State{Wishlist: []string{"sku-1"}})

	// A second toggle would flip membership off; the no-op must not hit
	// the network at all.
	require.NoError(t, ctrl.Mutate(context.Background(), entity.AddWishlistEntry{ProductID: "sku-1"}))
	assert.Zero(t, wishlist.toggleCount())
	assert.Equal(t, []string{"sku-1"}, cache.WishlistItems())
}

func TestMutateWishlistRollbackOnFailure(t *testing.T) {
	ctrl, cache, _, wishlist, _ := newSyncFixture("user-1")
	cache.Set(entity.State{Wishlist: []string{"sku-1"}})

	wishlist.toggleFn = func(userID, productID string) ([]string, error) {
		return nil, apperrors.Internal("boom", nil)
	}

	err := ctrl.Mutate(context.Background(), entity.RemoveWishlistEntry{ProductID: "sku-1"})
	assert.True(t, apperrors.Is(err, "SYNC_FAILED"))
	assert.Equal(t, []string{"sku-1"}, cache.WishlistItems())
}

func TestMutatePersistsAfterSuccess(t *testing.T) {
	ctrl, _, _, _, states := newSyncFixture("user-1")

	require.NoError(t, ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 2}))

	require.NotNil(t, states.persisted)
	assert.Equal(t, "user-1", states.persisted.UserID)
	line, ok := states.persisted.State.Line("sku-1")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestMutateSwallowsPersistenceFailure(t *testing.T) {
	ctrl, cache, _, _, states := newSyncFixture("user-1")
	states.saveErr = apperrors.PersistenceFailed("disk full", nil)

	err := ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 1})
	assert.NoError(t, err)
	assert.Len(t, cache.Lines(), 1)
}

func TestMutateAfterCloseIsRejected(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")
	ctrl.Close()

	err := ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-1", Quantity: 1})
	assert.Error(t, err)
	assert.Empty(t, cart.calls())
	assert.Empty(t, cache.Lines())
}

func TestMutateDifferentProductsIndependent(t *testing.T) {
	ctrl, cache, cart, _, _ := newSyncFixture("user-1")

	blocked := make(chan struct{})
	release := make(chan struct{})
	cart.setFn = func(userID, productID string, quantity int) ([]entity.CartLine, error) {
		if productID == "sku-slow" {
			close(blocked)
			<-release
		}
		state := cache.State()
		return state.Lines, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-slow", Quantity: 1}))
	}()
	<-blocked

	// A different product is not queued behind the in-flight call.
	done := make(chan struct{})
	go func() {
		assert.NoError(t, ctrl.Mutate(context.Background(), entity.AddLine{ProductID: "sku-fast", Quantity: 1}))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("independent product mutation was blocked")
	}

	close(release)
	wg.Wait()
}
