package localstate

import (
	"sync"

	"shopsync/internal/domain/entity"
)

// Cache holds the current believed-true cart and wishlist for rendering,
// independent of network latency. It is mutated only through the sync
// layer; UI code reads it and subscribes for change notification.
type Cache struct {
	mu      sync.RWMutex
	state   entity.State
	subs    map[int]chan struct{}
	nextSub int
}

func New() *Cache {
	return &Cache{
		subs: make(map[int]chan struct{}),
	}
}

// Lines returns the current cart lines in stable insertion order.
func (c *Cache) Lines() []entity.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.CartLine, len(c.state.Lines))
	copy(out, c.state.Lines)
	return out
}

// WishlistItems returns the current wishlist membership in insertion order.
func (c *Cache) WishlistItems() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.state.Wishlist))
	copy(out, c.state.Wishlist)
	return out
}

// State returns a deep copy of the whole state.
func (c *Cache) State() entity.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Apply applies the intent optimistically and reports whether anything
// changed. Subscribers are notified only on change.
func (c *Cache) Apply(in entity.Intent) bool {
	c.mu.Lock()
	next, changed := c.state.Apply(in)
	if changed {
		c.state = next
	}
	c.mu.Unlock()
	if changed {
		c.notify()
	}
	return changed
}

// Snapshot captures an immutable copy of the state for rollback.
func (c *Cache) Snapshot() entity.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return entity.Snapshot{State: c.state.Clone()}
}

// Restore replaces the whole state with a previously captured snapshot.
func (c *Cache) Restore(snap entity.Snapshot) {
	c.mu.Lock()
	c.state = snap.State.Clone()
	c.mu.Unlock()
	c.notify()
}

// RestoreProduct rolls back only the given product from the snapshot: its
// cart line (or absence) and its wishlist membership. Mutations in flight
// for other products are left untouched.
func (c *Cache) RestoreProduct(productID string, snap entity.Snapshot) {
	c.mu.Lock()
	next := c.state.Clone()

	kept := next.Lines[:0]
	for _, line := range next.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	next.Lines = kept
	if prevLine, hadLine := snap.State.Line(productID); hadLine {
		// Reinstate at the position it held before the mutation.
		idx := len(next.Lines)
		for i, line := range snap.State.Lines {
			if line.ProductID == productID {
				idx = i
				break
			}
		}
		if idx > len(next.Lines) {
			idx = len(next.Lines)
		}
		next.Lines = append(next.Lines[:idx], append([]entity.CartLine{prevLine}, next.Lines[idx:]...)...)
	}

	keptWl := next.Wishlist[:0]
	for _, id := range next.Wishlist {
		if id != productID {
			keptWl = append(keptWl, id)
		}
	}
	next.Wishlist = keptWl
	if snap.State.InWishlist(productID) {
		// Reinstate at the position it held before the mutation.
		idx := len(next.Wishlist)
		for i, id := range snap.State.Wishlist {
			if id == productID {
				idx = i
				break
			}
		}
		if idx > len(next.Wishlist) {
			idx = len(next.Wishlist)
		}
		next.Wishlist = append(next.Wishlist[:idx], append([]string{productID}, next.Wishlist[idx:]...)...)
	}

	c.state = next
	c.mu.Unlock()
	c.notify()
}

// ReplaceCart swaps in the canonical cart returned by the server.
func (c *Cache) ReplaceCart(lines []entity.CartLine) {
	c.mu.Lock()
	c.state.Lines = make([]entity.CartLine, len(lines))
	copy(c.state.Lines, lines)
	c.mu.Unlock()
	c.notify()
}

// ReplaceWishlist swaps in the canonical membership returned by the server.
func (c *Cache) ReplaceWishlist(items []string) {
	c.mu.Lock()
	c.state.Wishlist = make([]string, len(items))
	copy(c.state.Wishlist, items)
	c.mu.Unlock()
	c.notify()
}

// Set replaces the whole state, used at session bootstrap and teardown.
func (c *Cache) Set(state entity.State) {
	c.mu.Lock()
	c.state = state.Clone()
	c.mu.Unlock()
	c.notify()
}

// Subscribe registers for change notification. The returned channel gets a
// non-blocking signal per change; the cancel func must be called when the
// subscriber goes away.
func (c *Cache) Subscribe() (<-chan struct{}, func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan struct{}, 1)
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
	return ch, cancel
}

func (c *Cache) notify() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
