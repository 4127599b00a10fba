package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	apperrors "shopsync/pkg/errors"
)

const stateSchema = `
CREATE TABLE IF NOT EXISTS session_state (
	slot INTEGER PRIMARY KEY CHECK (slot = 1),
	user_id TEXT NOT NULL,
	payload TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStateRepository persists the single {user, cart, wishlist} slot in
// a local SQLite file so a restart can render the last known state before
// the remote hydrate completes.
type SQLiteStateRepository struct {
	db *sql.DB
}

func OpenStateRepository(path string) (*SQLiteStateRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.PersistenceFailed("state db path is required", nil)
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperrors.PersistenceFailed("open state db", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, apperrors.PersistenceFailed("ping state db", err)
	}
	if _, err := db.Exec(stateSchema); err != nil {
		_ = db.Close()
		return nil, apperrors.PersistenceFailed("create state schema", err)
	}
	return &SQLiteStateRepository{db: db}, nil
}

func (r *SQLiteStateRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteStateRepository) Save(ctx context.Context, userID string, state entity.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return apperrors.PersistenceFailed("encode state", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session_state (slot, user_id, payload, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			user_id = excluded.user_id,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		userID, string(payload), time.Now().UTC().UnixMilli())
	if err != nil {
		return apperrors.PersistenceFailed("save state", err)
	}
	return nil
}

func (r *SQLiteStateRepository) Load(ctx context.Context) (*repository.PersistedState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, payload, updated_at FROM session_state WHERE slot = 1`)

	var (
		userID    string
		payload   string
		updatedAt int64
	)
	if err := row.Scan(&userID, &payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.PersistenceFailed("load state", err)
	}

	var state entity.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, apperrors.PersistenceFailed("decode state", err)
	}
	return &repository.PersistedState{
		UserID:    userID,
		State:     state,
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}, nil
}

func (r *SQLiteStateRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_state`); err != nil {
		return apperrors.PersistenceFailed("clear state", err)
	}
	return nil
}
