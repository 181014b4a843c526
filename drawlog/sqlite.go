package drawlog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"inspiration_drawer/drawer"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS draw_log (
    position INTEGER PRIMARY KEY,
    entry TEXT NOT NULL
);
`

// SQLiteStore keeps the same log in a sqlite database, one row per entry.
type SQLiteStore struct {
	Path string
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// Load returns the stored entries ordered by position. A row that does
// not decode is reported as a ParseError naming its position.
func (s *SQLiteStore) Load() ([]drawer.LogEntry, error) {
	conn, err := s.open()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(`SELECT position, entry FROM draw_log ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query draw log: %w", err)
	}
	defer rows.Close()

	entries := []drawer.LogEntry{}
	for rows.Next() {
		var (
			pos int
			raw string
		)
		if err := rows.Scan(&pos, &raw); err != nil {
			return nil, fmt.Errorf("scan draw log: %w", err)
		}
		var e drawer.LogEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, &ParseError{Path: fmt.Sprintf("%s#%d", s.Path, pos), Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draw log: %w", err)
	}
	return entries, nil
}

// Save replaces every row in one transaction.
func (s *SQLiteStore) Save(entries []drawer.LogEntry) error {
	conn, err := s.open()
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM draw_log`); err != nil {
		return fmt.Errorf("clear draw log: %w", err)
	}
	for i, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode entry %d: %w", i, err)
		}
		if _, err := tx.Exec(`INSERT INTO draw_log(position, entry) VALUES(?,?)`, i, string(raw)); err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
