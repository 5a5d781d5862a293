package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "compass.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUp_CreatesTables(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, Up(context.Background(), db))

	for _, name := range []string{"Dungeon", "Equipment", "Dungeon_Equipment", "goose_db_version"} {
		if !tableExists(t, db, name) {
			t.Fatalf("expected table %s to exist after migrations", name)
		}
	}
}

func TestUp_IsIdempotent(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db))
	require.NoError(t, Up(ctx, db), "second run must be a no-op")
}

func TestUp_StatusDefaultsToActive(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Up(context.Background(), db))

	_, err := db.Exec(`INSERT INTO Dungeon(Glyph) VALUES ('g')`)
	require.NoError(t, err)

	var status string
	require.NoError(t, db.QueryRow(`SELECT Status FROM Dungeon WHERE Glyph='g'`).Scan(&status))
	require.Equal(t, "Active", status)
}
