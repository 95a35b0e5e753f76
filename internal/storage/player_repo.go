package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const MainPlayerKey = "main_user"

type PlayerRepo struct {
	db Querier
}

func NewPlayerRepo(db Querier) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// WithTx returns a repo bound to tx.
func (r *PlayerRepo) WithTx(tx *sql.Tx) *PlayerRepo {
	return &PlayerRepo{db: tx}
}

// Get returns the stored blob for key, or nil if the player has never been saved.
func (r *PlayerRepo) Get(ctx context.Context, key string) (*PlayerState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, data, updated_at FROM player_state WHERE key = ?`, key)

	var (
		s    PlayerState
		data string
	)
	if err := row.Scan(&s.Key, &data, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("player get: %w", err)
	}
	s.Data = []byte(data)
	return &s, nil
}

// Put replaces the whole blob for key.
func (r *PlayerRepo) Put(ctx context.Context, key string, data []byte, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO player_state (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data), updatedAt)
	if err != nil {
		return fmt.Errorf("player put: %w", err)
	}
	return nil
}

func (r *PlayerRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM check_in_log WHERE player_key = ?`, key); err != nil {
		return fmt.Errorf("player delete log: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("player delete: %w", err)
	}
	return nil
}
