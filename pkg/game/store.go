package game

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists one row per finished game session. It is a session log for
// the replay browser, not a leaderboard.
type Store struct {
	db *sql.DB
}

// SessionRecord describes one completed run.
type SessionRecord struct {
	ID         int64     `json:"id"`
	StartedAt  time.Time `json:"startedAt"`
	EndedAt    time.Time `json:"endedAt"`
	Score      int       `json:"score"`
	Difficulty int       `json:"difficulty"`
	Skin       string    `json:"skin"`
	Length     int       `json:"length"`
	RecordFile string    `json:"recordFile"`
}

// OpenStore opens (creating if needed) the sqlite database at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		ended_at DATETIME NOT NULL,
		score INTEGER NOT NULL,
		difficulty INTEGER NOT NULL,
		skin TEXT NOT NULL,
		length INTEGER NOT NULL,
		record_file TEXT
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (st *Store) Close() error {
	return st.db.Close()
}

// SaveSession inserts a finished run and returns its row id.
func (st *Store) SaveSession(rec SessionRecord) (int64, error) {
	res, err := st.db.Exec(
		`INSERT INTO sessions (started_at, ended_at, score, difficulty, skin, length, record_file)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt, rec.EndedAt, rec.Score, rec.Difficulty, rec.Skin, rec.Length, rec.RecordFile,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}
	return res.LastInsertId()
}

// RecentSessions returns up to limit sessions, newest first.
func (st *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	rows, err := st.db.Query(
		`SELECT id, started_at, ended_at, score, difficulty, skin, length, COALESCE(record_file, '')
		 FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.StartedAt, &rec.EndedAt, &rec.Score,
			&rec.Difficulty, &rec.Skin, &rec.Length, &rec.RecordFile); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
