package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/migrations"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/types"
	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrEmpty is returned by Pop when nothing has been closed
	ErrEmpty = errors.New("no closed tabs")
	// ErrNotFound is returned by Take for an unknown entry
	ErrNotFound = errors.New("closed tab not found")
)

// inMemoryDSN keeps one private database per connection; the pool is
// pinned to a single connection so every query sees the same data.
const inMemoryDSN = ":memory:"

// Manager stores recently closed tabs in an in-memory SQLite database.
// Nothing is written to disk and the history ends with the process.
type Manager struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

// NewManager opens the store. limit bounds the number of entries kept;
// a limit of 0 disables recording.
func NewManager(limit int) (*Manager, error) {
	if limit < 0 {
		return nil, fmt.Errorf("history limit must not be negative (got %d)", limit)
	}

	db, err := sql.Open("sqlite3", inMemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db, limit: limit, now: time.Now}
	if err := m.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	if err := migrations.Run(m.db); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Limit returns the maximum number of entries kept
func (m *Manager) Limit() int {
	return m.limit
}

// Record stores a closed tab and trims the oldest entries past the limit
func (m *Manager) Record(tab types.Tab) error {
	if m.limit == 0 {
		return nil
	}

	_, err := m.db.Exec(
		`INSERT INTO closed_tabs (tab_id, name, content, closed_at) VALUES (?, ?, ?, ?)`,
		tab.ID, tab.Name, tab.Content, m.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save closed tab: %w", err)
	}

	_, err = m.db.Exec(
		`DELETE FROM closed_tabs WHERE id NOT IN (SELECT id FROM closed_tabs ORDER BY id DESC LIMIT ?)`,
		m.limit,
	)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	return nil
}

// List returns closed tabs, most recent first
func (m *Manager) List() ([]types.ClosedTab, error) {
	rows, err := m.db.Query(`SELECT id, tab_id, name, content, closed_at FROM closed_tabs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var entries []types.ClosedTab
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (types.ClosedTab, error) {
	var entry types.ClosedTab
	var closedAt int64
	if err := s.Scan(&entry.ID, &entry.TabID, &entry.Name, &entry.Content, &closedAt); err != nil {
		return types.ClosedTab{}, err
	}
	entry.ClosedAt = time.Unix(0, closedAt)
	return entry, nil
}

// Take removes and returns one entry
func (m *Manager) Take(id int64) (types.ClosedTab, error) {
	entry, err := scanEntry(m.db.QueryRow(
		`SELECT id, tab_id, name, content, closed_at FROM closed_tabs WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return types.ClosedTab{}, ErrNotFound
	}
	if err != nil {
		return types.ClosedTab{}, fmt.Errorf("failed to load closed tab: %w", err)
	}

	if _, err := m.db.Exec(`DELETE FROM closed_tabs WHERE id = ?`, id); err != nil {
		return types.ClosedTab{}, fmt.Errorf("failed to delete closed tab: %w", err)
	}

	return entry, nil
}

// Pop removes and returns the most recently closed tab
func (m *Manager) Pop() (types.ClosedTab, error) {
	var id int64
	err := m.db.QueryRow(`SELECT id FROM closed_tabs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ClosedTab{}, ErrEmpty
	}
	if err != nil {
		return types.ClosedTab{}, fmt.Errorf("failed to load closed tab: %w", err)
	}
	return m.Take(id)
}

// Count returns the number of stored entries
func (m *Manager) Count() (int, error) {
	var count int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM closed_tabs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}

// Clear removes every entry
func (m *Manager) Clear() error {
	if _, err := m.db.Exec(`DELETE FROM closed_tabs`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close releases the database
func (m *Manager) Close() error {
	return m.db.Close()
}
