package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player_state (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		// One row per processed check-in, including resubmissions for the same date.
		`CREATE TABLE IF NOT EXISTS check_in_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			submission_id TEXT NOT NULL DEFAULT '',
			player_key TEXT NOT NULL,
			date TEXT NOT NULL,
			score INTEGER NOT NULL,
			grade TEXT NOT NULL,
			xp_awarded INTEGER NOT NULL,
			level INTEGER NOT NULL,
			recorded_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_check_in_log_player_recorded ON check_in_log(player_key, recorded_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
