package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_FreshDatabase(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"nodes", "todos", "timeline_settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpenDB_AppliesPragmas(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	var fk int
	require.NoError(t, database.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var timeout int
	require.NoError(t, database.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

// TestMigrate_UpgradePath_LegacyNodesTable simulates upgrading a database
// created before labels could be repositioned: the nodes table has no
// titleOffset column. Verifies that:
// 1. Data inserted under the old schema survives migration
// 2. The titleOffset column is added and reads as NULL for old rows
func TestMigrate_UpgradePath_LegacyNodesTable(t *testing.T) {
	// Create a raw DB without using OpenDB (to manually control schema).
	database, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	legacyStatements := []string{
		`CREATE TABLE nodes (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			date        TEXT NOT NULL,
			type        TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE todos (
			id        TEXT PRIMARY KEY,
			nodeId    TEXT NOT NULL,
			text      TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (nodeId) REFERENCES nodes(id)
		)`,
	}
	for _, stmt := range legacyStatements {
		_, err := database.Exec(stmt)
		require.NoError(t, err)
	}

	_, err = database.Exec(
		`INSERT INTO nodes (id, title, date, type, description) VALUES ('n1', 'Kickoff', '2024-01-01', 'milestone', '')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	var title string
	var offset sql.NullString
	err = database.QueryRow(`SELECT title, titleOffset FROM nodes WHERE id = 'n1'`).Scan(&title, &offset)
	require.NoError(t, err)
	assert.Equal(t, "Kickoff", title)
	assert.False(t, offset.Valid, "legacy rows should have a NULL titleOffset")
}
