package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPlayerRepoRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPlayerRepo(db)

	st, err := repo.Get(ctx, MainPlayerKey)
	require.NoError(t, err)
	require.Nil(t, st)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Put(ctx, MainPlayerKey, []byte(`{"a":1}`), at))
	require.NoError(t, repo.Put(ctx, MainPlayerKey, []byte(`{"a":2}`), at.Add(time.Hour)))

	st, err = repo.Get(ctx, MainPlayerKey)
	require.NoError(t, err)
	require.NotNil(t, st)
	require.Equal(t, MainPlayerKey, st.Key)
	require.Equal(t, `{"a":2}`, string(st.Data))
	require.True(t, st.UpdatedAt.Equal(at.Add(time.Hour)), "updated_at = %v", st.UpdatedAt)

	other, err := repo.Get(ctx, "someone_else")
	require.NoError(t, err)
	require.Nil(t, other)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPlayerRepo(db)
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := repo.WithTx(tx).Put(ctx, MainPlayerKey, []byte(`{}`), time.Now().UTC()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	st, err := repo.Get(ctx, MainPlayerKey)
	require.NoError(t, err)
	require.Nil(t, st)

	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		return repo.WithTx(tx).Put(ctx, MainPlayerKey, []byte(`{}`), time.Now().UTC())
	})
	require.NoError(t, err)
	st, err = repo.Get(ctx, MainPlayerKey)
	require.NoError(t, err)
	require.NotNil(t, st)
}

func TestCheckInLogListAndCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	logs := NewCheckInLogRepo(db)
	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	for i, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		id, err := logs.Insert(ctx, CheckInLogEntry{
			PlayerKey:  MainPlayerKey,
			Date:       date,
			Score:      50 + i*10,
			Grade:      "C",
			XPAwarded:  25,
			Level:      1,
			RecordedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
		require.Positive(t, id)
	}
	_, err := logs.Insert(ctx, CheckInLogEntry{PlayerKey: "other", Date: "2026-03-03", Grade: "E", RecordedAt: base})
	require.NoError(t, err)

	got, err := logs.ListRecent(ctx, MainPlayerKey, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2026-03-03", got[0].Date)
	require.Equal(t, "2026-03-02", got[1].Date)
	require.Equal(t, 70, got[0].Score)

	n, err := logs.CountSince(ctx, MainPlayerKey, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, NewPlayerRepo(db).Delete(ctx, MainPlayerKey))
	got, err = logs.ListRecent(ctx, MainPlayerKey, 10)
	require.NoError(t, err)
	require.Empty(t, got)
	got, err = logs.ListRecent(ctx, "other", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv("LIFESCORE_DB", "/tmp/from-env.db")
	p, err := ResolveDBPath("  /tmp/configured.db ")
	require.NoError(t, err)
	require.Equal(t, "/tmp/configured.db", p)

	// The environment is the config package's concern; only the default remains here.
	p, err = ResolveDBPath("")
	require.NoError(t, err)
	def, err := DefaultDBPath()
	require.NoError(t, err)
	require.Equal(t, def, p)
}
