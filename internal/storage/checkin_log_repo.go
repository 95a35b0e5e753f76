package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type CheckInLogRepo struct {
	db Querier
}

func NewCheckInLogRepo(db Querier) *CheckInLogRepo {
	return &CheckInLogRepo{db: db}
}

// WithTx returns a repo bound to tx.
func (r *CheckInLogRepo) WithTx(tx *sql.Tx) *CheckInLogRepo {
	return &CheckInLogRepo{db: tx}
}

func (r *CheckInLogRepo) Insert(ctx context.Context, e CheckInLogEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO check_in_log (submission_id, player_key, date, score, grade, xp_awarded, level, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.SubmissionID, e.PlayerKey, e.Date, e.Score, e.Grade, e.XPAwarded, e.Level, e.RecordedAt)
	if err != nil {
		return 0, fmt.Errorf("check-in log insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("check-in log last insert id: %w", err)
	}
	return id, nil
}

func (r *CheckInLogRepo) CountSince(ctx context.Context, playerKey string, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM check_in_log
		WHERE player_key = ? AND recorded_at >= ?
	`, playerKey, since)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("check-in log count: %w", err)
	}
	return n, nil
}

// ListRecent returns up to limit entries, newest first.
func (r *CheckInLogRepo) ListRecent(ctx context.Context, playerKey string, limit int) ([]CheckInLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, submission_id, player_key, date, score, grade, xp_awarded, level, recorded_at
		FROM check_in_log
		WHERE player_key = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, playerKey, limit)
	if err != nil {
		return nil, fmt.Errorf("check-in log list: %w", err)
	}
	defer rows.Close()

	var out []CheckInLogEntry
	for rows.Next() {
		var e CheckInLogEntry
		if err := rows.Scan(&e.ID, &e.SubmissionID, &e.PlayerKey, &e.Date, &e.Score, &e.Grade, &e.XPAwarded, &e.Level, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("check-in log scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check-in log rows: %w", err)
	}
	return out, nil
}
