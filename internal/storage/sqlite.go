// Package storage provides SQLite-based persistence for maze runs and
// player settings. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/mazewalk/internal/core"
)

// DefaultPath is where the database lives unless --db says otherwise.
const DefaultPath = "~/.mazewalk/mazewalk.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one recorded visit to a maze.
type Run struct {
	ID          int64
	LayoutID    string
	Profile     string // "local" or the SSH user
	Ticks       int
	Seconds     float64
	Turns       int
	CellsWalked int
	Blocked     int
	Footsteps   int
	CreatedAt   time.Time
}

// Totals aggregates every run on one layout.
type Totals struct {
	LayoutID    string
	Runs        int
	CellsWalked int
	Turns       int
	Footsteps   int
	Seconds     float64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id TEXT NOT NULL,
			profile TEXT NOT NULL DEFAULT 'local',
			ticks INTEGER NOT NULL DEFAULT 0,
			seconds REAL NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			cells_walked INTEGER NOT NULL DEFAULT 0,
			blocked INTEGER NOT NULL DEFAULT 0,
			footsteps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_layout_id ON runs(layout_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS settings (
			profile TEXT PRIMARY KEY,
			turn_speed INTEGER NOT NULL,
			walk_speed REAL NOT NULL,
			field_of_view REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished visit.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Profile == "" {
		r.Profile = "local"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (layout_id, profile, ticks, seconds, turns, cells_walked, blocked, footsteps)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.LayoutID, r.Profile, r.Ticks, r.Seconds, r.Turns, r.CellsWalked, r.Blocked, r.Footsteps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty layoutID returns runs on every layout.
func (s *Store) RecentRuns(layoutID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, layout_id, profile, ticks, seconds, turns, cells_walked, blocked, footsteps, created_at
		 FROM runs`
	args := []any{}
	if layoutID != "" {
		query += ` WHERE layout_id = ?`
		args = append(args, layoutID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.LayoutID,
			&r.Profile,
			&r.Ticks,
			&r.Seconds,
			&r.Turns,
			&r.CellsWalked,
			&r.Blocked,
			&r.Footsteps,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Totals retrieves aggregated statistics for one layout.
func (s *Store) Totals(layoutID string) (*Totals, error) {
	t := &Totals{LayoutID: layoutID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cells_walked), 0), COALESCE(SUM(turns), 0),
		        COALESCE(SUM(footsteps), 0), COALESCE(SUM(seconds), 0), MAX(created_at)
		 FROM runs WHERE layout_id = ?`,
		layoutID,
	).Scan(&t.Runs, &t.CellsWalked, &t.Turns, &t.Footsteps, &t.Seconds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.LastPlayed = parseTime(lastPlayed)

	return t, nil
}

// AllTotals retrieves totals for every layout that has been played.
func (s *Store) AllTotals() (map[string]*Totals, error) {
	rows, err := s.db.Query(
		`SELECT layout_id, COUNT(*), SUM(cells_walked), SUM(turns), SUM(footsteps), SUM(seconds), MAX(created_at)
		 FROM runs
		 GROUP BY layout_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]*Totals)
	for rows.Next() {
		var t Totals
		var lastPlayed any
		if err := rows.Scan(&t.LayoutID, &t.Runs, &t.CellsWalked, &t.Turns, &t.Footsteps, &t.Seconds, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan totals row: %w", err)
		}
		t.LastPlayed = parseTime(lastPlayed)
		totals[t.LayoutID] = &t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return totals, nil
}

// ClearRuns deletes all runs for the given layout.
func (s *Store) ClearRuns(layoutID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE layout_id = ?", layoutID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveSettings stores the settings for a profile, replacing any earlier value.
func (s *Store) SaveSettings(profile string, settings core.Settings) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (profile, turn_speed, walk_speed, field_of_view, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   turn_speed = excluded.turn_speed,
		   walk_speed = excluded.walk_speed,
		   field_of_view = excluded.field_of_view,
		   updated_at = excluded.updated_at`,
		profile, settings.TurnSpeed, settings.WalkSpeed, settings.FieldOfView,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// LoadSettings returns the stored settings for a profile, clamped to the
// offered ranges. ok is false when the profile has never saved any.
func (s *Store) LoadSettings(profile string) (settings core.Settings, ok bool, err error) {
	err = s.db.QueryRow(
		`SELECT turn_speed, walk_speed, field_of_view FROM settings WHERE profile = ?`,
		profile,
	).Scan(&settings.TurnSpeed, &settings.WalkSpeed, &settings.FieldOfView)

	if errors.Is(err, sql.ErrNoRows) {
		return core.Settings{}, false, nil
	}
	if err != nil {
		return core.Settings{}, false, fmt.Errorf("storage: cannot load settings: %w", err)
	}
	return settings.Clamp(), true, nil
}

// parseTime converts a DATETIME column to time.Time; handles both
// time.Time and string as the driver may return either.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
