package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	"shopsync/internal/infrastructure/localstate"
	"shopsync/pkg/errors"
	"shopsync/pkg/logger"
)

// SyncController is the only path through which cart and wishlist
// mutations reach the backend. It applies each intent optimistically to
// the local cache, pushes it remotely, and reconciles on response:
// success commits the canonical server state, failure rolls the mutated
// product back to its pre-mutation snapshot.
type SyncController struct {
	cache    *localstate.Cache
	cart     repository.CartRemote
	wishlist repository.WishlistRemote
	states   repository.StateRepository
	session  func() *entity.Session
	sourceID string

	mu     sync.Mutex
	keys   map[string]*sync.Mutex
	closed bool
}

func NewSyncController(
	cache *localstate.Cache,
	cart repository.CartRemote,
	wishlist repository.WishlistRemote,
	states repository.StateRepository,
	session func() *entity.Session,
) *SyncController {
	return &SyncController{
		cache:    cache,
		cart:     cart,
		wishlist: wishlist,
		states:   states,
		session:  session,
		sourceID: uuid.NewString(),
		keys:     make(map[string]*sync.Mutex),
	}
}

// SourceID identifies this client instance in logs.
func (s *SyncController) SourceID() string {
	return s.sourceID
}

// Mutate applies the intent optimistically, pushes it to the backend and
// reconciles. Same-product mutations are serialized so a rollback from an
// earlier call can never stomp the optimistic result of a later one;
// different products proceed independently. There is no automatic retry.
//
// A no-op intent (idempotent wishlist re-add, non-positive add) returns
// success without a network call: pushing it anyway would flip the
// backend's toggle endpoint the wrong way.
func (s *SyncController) Mutate(ctx context.Context, in entity.Intent) error {
	sess := s.session()
	if sess == nil || sess.UserID == "" {
		return errors.Unauthenticated("sign in to update your cart", nil)
	}

	lock := s.lockFor(in.Product())
	lock.Lock()
	defer lock.Unlock()

	if s.isClosed() {
		return errors.Internal("sync controller is closed", nil)
	}

	snap := s.cache.Snapshot()
	if !s.cache.Apply(in) {
		return nil
	}

	var (
		canonicalCart     []entity.CartLine
		canonicalWishlist []string
		err               error
	)
	switch v := in.(type) {
	case entity.AddLine:
		// The endpoint takes an absolute quantity, so send the merged
		// total from the optimistic state.
		quantity := 0
		if line, ok := s.cache.State().Line(v.ProductID); ok {
			quantity = line.Quantity
		}
		canonicalCart, err = s.cart.SetQuantity(ctx, sess.UserID, v.ProductID, quantity)
	case entity.SetQuantity:
		quantity := v.Quantity
		if quantity < 0 {
			quantity = 0
		}
		canonicalCart, err = s.cart.SetQuantity(ctx, sess.UserID, v.ProductID, quantity)
	case entity.RemoveLine:
		canonicalCart, err = s.cart.SetQuantity(ctx, sess.UserID, v.ProductID, 0)
	case entity.AddWishlistEntry:
		canonicalWishlist, err = s.wishlist.Toggle(ctx, sess.UserID, v.ProductID)
	case entity.RemoveWishlistEntry:
		canonicalWishlist, err = s.wishlist.Toggle(ctx, sess.UserID, v.ProductID)
	default:
		return errors.BadRequest("unknown mutation intent", nil)
	}

	if err != nil {
		if !s.isClosed() {
			s.cache.RestoreProduct(in.Product(), snap)
		}
		logger.LogSyncError(in.Product(), "mutate", err)
		return errors.SyncFailed("cart update failed", err)
	}

	if s.isClosed() {
		// The owning session was torn down while the call was in flight;
		// neither commit nor persist.
		return nil
	}

	if canonicalCart != nil {
		s.cache.ReplaceCart(canonicalCart)
	}
	if canonicalWishlist != nil {
		s.cache.ReplaceWishlist(canonicalWishlist)
	}

	s.persist(ctx, sess.UserID)
	return nil
}

// Close marks the controller stale. In-flight mutations resolve as no-ops
// so a late response cannot update state owned by a newer session.
func (s *SyncController) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *SyncController) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *SyncController) lockFor(productID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.keys[productID]
	if !ok {
		lock = &sync.Mutex{}
		s.keys[productID] = lock
	}
	return lock
}

// persist mirrors the committed state locally. Best-effort: a full local
// disk must not fail a mutation the backend already accepted.
func (s *SyncController) persist(ctx context.Context, userID string) {
	if s.states == nil {
		return
	}
	if err := s.states.Save(ctx, userID, s.cache.State()); err != nil {
		logger.LogPersistenceError("save", err)
	}
}
