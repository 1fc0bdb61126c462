// Package storage provides SQLite-based persistence for the interaction
// journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// InteractionEntry is one recorded prop toggle.
type InteractionEntry struct {
	ID        int64
	SceneID   string
	PropID    string
	State     string
	CreatedAt time.Time
}

// SessionEntry summarizes one play session.
type SessionEntry struct {
	ID           int64
	SceneID      string
	DurationSecs int
	Interactions int
	CreatedAt    time.Time
}

// ToggleCount aggregates how often a prop was switched into a state.
type ToggleCount struct {
	PropID string
	State  string
	Count  int
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			prop_id TEXT NOT NULL,
			state TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_interactions_scene ON interactions(scene_id);
		CREATE INDEX IF NOT EXISTS idx_interactions_prop ON interactions(scene_id, prop_id);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			interactions INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene ON sessions(scene_id);
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

// RecordInteraction journals one prop toggle.
// Returns the ID of the inserted record.
func (s *Store) RecordInteraction(sceneID, propID, state string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO interactions (scene_id, prop_id, state) VALUES (?, ?, ?)",
		sceneID, propID, state,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record interaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordSession journals one finished play session.
func (s *Store) RecordSession(sceneID string, durationSecs, interactions int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (scene_id, duration_secs, interactions) VALUES (?, ?, ?)",
		sceneID, durationSecs, interactions,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentInteractions retrieves the latest N journal entries for a scene,
// newest first.
func (s *Store) RecentInteractions(sceneID string, limit int) ([]InteractionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, prop_id, state, created_at
		 FROM interactions
		 WHERE scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query interactions: %w", err)
	}
	defer rows.Close()

	var entries []InteractionEntry
	for rows.Next() {
		var e InteractionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SceneID, &e.PropID, &e.State, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ToggleCounts aggregates, per prop and state, how often it was toggled in a
// scene. Ordered by count descending.
func (s *Store) ToggleCounts(sceneID string) ([]ToggleCount, error) {
	rows, err := s.db.Query(
		`SELECT prop_id, state, COUNT(*)
		 FROM interactions
		 WHERE scene_id = ?
		 GROUP BY prop_id, state
		 ORDER BY COUNT(*) DESC, prop_id`,
		sceneID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query toggle counts: %w", err)
	}
	defer rows.Close()

	var counts []ToggleCount
	for rows.Next() {
		var c ToggleCount
		if err := rows.Scan(&c.PropID, &c.State, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// RecentSessions retrieves the latest N play sessions for a scene.
func (s *Store) RecentSessions(sceneID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, duration_secs, interactions, created_at
		 FROM sessions
		 WHERE scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SceneID, &e.DurationSecs, &e.Interactions, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearJournal deletes all journal entries for the given scene.
func (s *Store) ClearJournal(sceneID string) error {
	if _, err := s.db.Exec("DELETE FROM interactions WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear interactions: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE scene_id = ?", sceneID); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
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
