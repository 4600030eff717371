package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The planner persists its state as named slots of JSON, one row per slot.
// This mirrors the flat key namespace the data model was designed around
// (planner-events, planner-tasks, planner-view, planner-selected-day,
// planner-time-range) rather than normalizing into per-entity tables.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
