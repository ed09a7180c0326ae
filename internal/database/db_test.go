package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('orders','order_items')`).Scan(&n)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))

	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO orders(id, total, item_count, created_at) VALUES ('o1', '0', 0, ?)`, Now()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&n))
	require.Zero(t, n)
}
