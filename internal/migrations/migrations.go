// Package migrations versions the closed tab history schema.
package migrations

import (
	"database/sql"
	"errors"
	"fmt"
)

// Migration is one schema step
type Migration struct {
	Version int
	Name    string
	Up      string
}

// All lists every migration in order
var All = []Migration{
	{
		Version: 1,
		Name:    "Create closed_tabs",
		Up: `
			CREATE TABLE IF NOT EXISTS closed_tabs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				tab_id TEXT NOT NULL,
				name TEXT NOT NULL,
				content TEXT NOT NULL,
				closed_at INTEGER NOT NULL
			);
		`,
	},
	{
		Version: 2,
		Name:    "Index closed_tabs by tab id",
		Up: `
			CREATE INDEX IF NOT EXISTS idx_closed_tabs_tab_id ON closed_tabs(tab_id);
		`,
	},
}

// Run applies every migration newer than the recorded version.
// Each step runs in its own transaction together with its bookkeeping row.
func Run(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	for _, migration := range All {
		if migration.Version <= current {
			continue
		}
		if err := apply(db, migration); err != nil {
			return err
		}
	}

	return nil
}

func apply(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.Up); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", migration.Version, migration.Name, err)
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
		migration.Version, migration.Name,
	); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	return tx.Commit()
}

// CurrentVersion returns the highest applied migration, 0 for a fresh database
func CurrentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	return version, nil
}
