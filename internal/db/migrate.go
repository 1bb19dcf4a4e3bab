package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateNodesTitleOffset(db); err != nil {
		return fmt.Errorf("migrating nodes titleOffset column: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS nodes (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		date        TEXT NOT NULL,
		type        TEXT NOT NULL,
		description TEXT,
		titleOffset TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS todos (
		id        TEXT PRIMARY KEY,
		nodeId    TEXT NOT NULL,
		text      TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (nodeId) REFERENCES nodes(id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_todos_node ON todos(nodeId)`,

	`CREATE TABLE IF NOT EXISTS timeline_settings (
		id        TEXT PRIMARY KEY DEFAULT 'default',
		startDate TEXT NOT NULL,
		endDate   TEXT NOT NULL
	)`,
}

// migrateNodesTitleOffset upgrades a legacy nodes table created before the
// title label could be repositioned. Existing rows keep a NULL offset,
// which reads decode as {0,0}.
func migrateNodesTitleOffset(db *sql.DB) error {
	var createSQL string
	err := db.QueryRow(`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'nodes'`).Scan(&createSQL)
	if err != nil {
		return fmt.Errorf("loading nodes schema: %w", err)
	}
	if strings.Contains(strings.ToLower(createSQL), "titleoffset") {
		return nil
	}
	if _, err := db.Exec(`ALTER TABLE nodes ADD COLUMN titleOffset TEXT`); err != nil {
		return fmt.Errorf("adding titleOffset column: %w", err)
	}
	return nil
}
