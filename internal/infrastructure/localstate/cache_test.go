package localstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopsync/internal/domain/entity"
)

func TestCacheApplyAndRead(t *testing.T) {
	cache := New()

	assert.True(t, cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 2, UnitPrice: 5}))
	assert.True(t, cache.Apply(entity.AddWishlistEntry{ProductID: "sku-2"}))

	assert.Equal(t, []entity.CartLine{{ProductID: "sku-1", Quantity: 2, UnitPrice: 5}}, cache.Lines())
	assert.Equal(t, []string{"sku-2"}, cache.WishlistItems())
}

func TestCacheSnapshotRestore(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 1})
	cache.Apply(entity.AddWishlistEntry{ProductID: "sku-2"})

	snap := cache.Snapshot()
	cache.Apply(entity.SetQuantity{ProductID: "sku-1", Quantity: 9})
	cache.Apply(entity.RemoveWishlistEntry{ProductID: "sku-2"})

	cache.Restore(snap)
	assert.Equal(t, snap.State, cache.State())
}

func TestCacheSnapshotIsImmutable(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 1})

	snap := cache.Snapshot()
	cache.Apply(entity.SetQuantity{ProductID: "sku-1", Quantity: 9})

	line, ok := snap.State.Line("sku-1")
	assert.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
}

func TestCacheRestoreProductScope(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 1})
	cache.Apply(entity.AddLine{ProductID: "sku-2", Quantity: 1})

	snap := cache.Snapshot()

	// Failed mutation on sku-1, concurrent success on sku-2.
	cache.Apply(entity.SetQuantity{ProductID: "sku-1", Quantity: 7})
	cache.Apply(entity.SetQuantity{ProductID: "sku-2", Quantity: 3})

	cache.RestoreProduct("sku-1", snap)

	one, _ := cache.State().Line("sku-1")
	two, _ := cache.State().Line("sku-2")
	assert.Equal(t, 1, one.Quantity, "failed mutation rolled back")
	assert.Equal(t, 3, two.Quantity, "unrelated mutation untouched")
}

func TestCacheRestoreProductReinsertsAtPosition(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 1})
	cache.Apply(entity.AddLine{ProductID: "sku-2", Quantity: 1})
	cache.Apply(entity.AddLine{ProductID: "sku-3", Quantity: 1})

	snap := cache.Snapshot()
	cache.Apply(entity.RemoveLine{ProductID: "sku-2"})
	cache.RestoreProduct("sku-2", snap)

	ids := make([]string, 0, 3)
	for _, line := range cache.Lines() {
		ids = append(ids, line.ProductID)
	}
	assert.Equal(t, []string{"sku-1", "sku-2", "sku-3"}, ids)
	assert.Equal(t, snap.State, cache.State())
}

func TestCacheRestoreProductWishlistMembership(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddWishlistEntry{ProductID: "sku-1"})

	snap := cache.Snapshot()
	cache.Apply(entity.RemoveWishlistEntry{ProductID: "sku-1"})
	cache.RestoreProduct("sku-1", snap)

	assert.True(t, cache.State().InWishlist("sku-1"))
}

func TestCacheRestoreProductWishlistReinsertsAtPosition(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddWishlistEntry{ProductID: "sku-1"})
	cache.Apply(entity.AddWishlistEntry{ProductID: "sku-2"})
	cache.Apply(entity.AddWishlistEntry{ProductID: "sku-3"})

	snap := cache.Snapshot()
	cache.Apply(entity.RemoveWishlistEntry{ProductID: "sku-1"})
	cache.RestoreProduct("sku-1", snap)

	assert.Equal(t, []string{"sku-1", "sku-2", "sku-3"}, cache.WishlistItems())
	assert.Equal(t, snap.State, cache.State())
}

func TestCacheReplaceCart(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 10})

	// Server clamped the quantity; its answer wins.
	cache.ReplaceCart([]entity.CartLine{{ProductID: "sku-1", Quantity: 3}})

	line, _ := cache.State().Line("sku-1")
	assert.Equal(t, 3, line.Quantity)
}

func TestCacheSubscribe(t *testing.T) {
	cache := New()
	ch, cancel := cache.Subscribe()
	defer cancel()

	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 1})
	select {
	case <-ch:
	default:
		t.Fatal("expected change notification")
	}

	// A no-op apply does not notify.
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 0})
	select {
	case <-ch:
		t.Fatal("unexpected notification for no-op")
	default:
	}
}

func TestCacheReadsReturnCopies(t *testing.T) {
	cache := New()
	cache.Apply(entity.AddLine{ProductID: "sku-1", Quantity: 1})

	lines := cache.Lines()
	lines[0].Quantity = 99

	fresh, _ := cache.State().Line("sku-1")
	assert.Equal(t, 1, fresh.Quantity)
}
