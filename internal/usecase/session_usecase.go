package usecase

import (
	"context"
	"sync"
	"time"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	"shopsync/internal/infrastructure/localstate"
	"shopsync/pkg/errors"
	"shopsync/pkg/logger"
)

// SessionUseCase owns the session lifecycle: login, resume from a stored
// token, bootstrap of local state, and logout. The local cache lives
// exactly as long as the session.
type SessionUseCase struct {
	auth     repository.AuthRemote
	cart     repository.CartRemote
	wishlist repository.WishlistRemote
	states   repository.StateRepository
	cache    *localstate.Cache

	mu      sync.RWMutex
	current *entity.Session
}

func NewSessionUseCase(
	auth repository.AuthRemote,
	cart repository.CartRemote,
	wishlist repository.WishlistRemote,
	states repository.StateRepository,
	cache *localstate.Cache,
) *SessionUseCase {
	return &SessionUseCase{
		auth:     auth,
		cart:     cart,
		wishlist: wishlist,
		states:   states,
		cache:    cache,
	}
}

// Current returns the active session, or nil when signed out.
func (u *SessionUseCase) Current() *entity.Session {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current
}

// Login exchanges credentials for a token, establishes the session and
// bootstraps local state.
func (u *SessionUseCase) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	token, err := u.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return u.Resume(ctx, token)
}

// Resume establishes a session from an existing bearer token, then
// bootstraps local state.
func (u *SessionUseCase) Resume(ctx context.Context, token string) (*entity.Session, error) {
	session, err := entity.SessionFromToken(token)
	if err != nil {
		return nil, err
	}
	if !session.Valid(time.Now()) {
		return nil, errors.Unauthenticated("session token expired", nil)
	}

	u.mu.Lock()
	u.current = session
	u.mu.Unlock()

	if err := u.Bootstrap(ctx); err != nil {
		return session, err
	}
	return session, nil
}

// Bootstrap seeds the cache: the persisted local snapshot first, so the UI
// can render immediately, then the authoritative remote state. A persisted
// snapshot belonging to a different user is discarded and cleared, never
// merged, so nothing leaks across accounts on a shared device.
func (u *SessionUseCase) Bootstrap(ctx context.Context) error {
	session := u.Current()
	if session == nil || session.UserID == "" {
		return errors.Unauthenticated("no active session", nil)
	}

	if u.states != nil {
		persisted, err := u.states.Load(ctx)
		switch {
		case err != nil:
			logger.LogPersistenceError("load", err)
		case persisted == nil:
			// Nothing persisted yet.
		case persisted.UserID != session.UserID:
			logger.Info("Discarding persisted state for different user")
			if err := u.states.Clear(ctx); err != nil {
				logger.LogPersistenceError("clear", err)
			}
		default:
			u.cache.Set(persisted.State)
		}
	}

	lines, err := u.cart.Get(ctx, session.UserID)
	if err != nil {
		return errors.SyncFailed("cart hydrate failed", err)
	}
	items, err := u.wishlist.Get(ctx, session.UserID)
	if err != nil {
		return errors.SyncFailed("wishlist hydrate failed", err)
	}

	u.cache.Set(entity.State{Lines: lines, Wishlist: items})
	if u.states != nil {
		if err := u.states.Save(ctx, session.UserID, u.cache.State()); err != nil {
			logger.LogPersistenceError("save", err)
		}
	}
	return nil
}

// Logout drops the session, empties the cache and clears the persisted
// slot.
func (u *SessionUseCase) Logout(ctx context.Context) {
	u.mu.Lock()
	u.current = nil
	u.mu.Unlock()

	u.cache.Set(entity.State{})
	if u.states != nil {
		if err := u.states.Clear(ctx); err != nil {
			logger.LogPersistenceError("clear", err)
		}
	}
}
