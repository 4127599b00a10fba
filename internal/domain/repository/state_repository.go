package repository

import (
	"context"
	"time"

	"shopsync/internal/domain/entity"
)

// PersistedState is the single locally persisted slot: the last known cart
// and wishlist for one user, kept so a restart can render immediately
// before the remote hydrate completes.
type PersistedState struct {
	UserID    string
	State     entity.State
	UpdatedAt time.Time
}

// StateRepository mirrors the in-memory state to local storage.
// Implementations are best-effort: callers log failures and continue, a
// broken local mirror never blocks the in-memory flow.
type StateRepository interface {
	Save(ctx context.Context, userID string, state entity.State) error

	// Load returns nil when no state has been persisted.
	Load(ctx context.Context) (*PersistedState, error)

	Clear(ctx context.Context) error
}
