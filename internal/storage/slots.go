// Package storage is the persistence adapter between the planner's
// in-memory state and its durable slot store. Values cross this boundary
// already rehydrated: readers receive native time.Time instants, never the
// ISO-8601 strings kept on disk.
package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// Slot keys. One flat namespace, each slice of planner state persisted
// independently.
const (
	SlotEvents      = "planner-events"
	SlotTasks       = "planner-tasks"
	SlotView        = "planner-view"
	SlotSelectedDay = "planner-selected-day"
	SlotTimeRange   = "planner-time-range"
)

var allSlots = []string{SlotEvents, SlotTasks, SlotView, SlotSelectedDay, SlotTimeRange}

// SlotStore reads and writes named slots of serialized planner state.
//
// Writes are fire-and-forget: a failed write is logged and the in-memory
// state stays authoritative for the rest of the session. Reads fall back to
// the caller's default on absence or parse failure and never return an
// error. The worst case is losing unsaved state on the next start, never
// corrupting it.
type SlotStore struct {
	db   *sql.DB
	logf func(format string, args ...any)
}

// NewSlotStore creates a SlotStore over an open planner database.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db, logf: log.Printf}
}

// SetLogger replaces the destination for write-failure reports.
func (s *SlotStore) SetLogger(logf func(format string, args ...any)) {
	s.logf = logf
}

// put upserts a raw serialized value under key, logging failures.
func (s *SlotStore) put(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		s.logf("storage: could not save %s: %v", key, err)
	}
}

// get returns the raw serialized value under key, or ok=false if the slot
// was never written or cannot be read.
func (s *SlotStore) get(key string) (value string, ok bool) {
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Has reports whether a slot has ever been written.
func (s *SlotStore) Has(key string) bool {
	_, ok := s.get(key)
	return ok
}

// Reset deletes every planner slot in one transaction. Callers are required
// to confirm with the user before invoking; exposing the wipe as a single
// call keeps confirmation and action from racing.
func (s *SlotStore) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting reset transaction: %w", err)
	}
	for _, key := range allSlots {
		if _, err := tx.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
			tx.Rollback()
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}
	return nil
}
