package mapping

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps event IDs in a local database instead of a mapping
// spreadsheet, for setups that run from a single machine.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if necessary creates) the mapping database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping database: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS event_ids (
		row_index INTEGER PRIMARY KEY,
		event_id TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating event_ids table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) ReadIDs() ([]string, error) {
	rows, err := s.db.Query("SELECT row_index, event_id FROM event_ids ORDER BY row_index")
	if err != nil {
		return nil, fmt.Errorf("querying event_ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var idx int
		var id string
		if err := rows.Scan(&idx, &id); err != nil {
			return nil, fmt.Errorf("scanning event_ids row: %w", err)
		}
		// Pad gaps so list position equals row index.
		for len(ids) <= idx {
			ids = append(ids, "")
		}
		ids[idx] = id
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) WriteID(rowIndex int, eventID string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO event_ids (row_index, event_id) VALUES (?, ?)",
		rowIndex, eventID)
	if err != nil {
		return fmt.Errorf("writing event ID for row %d: %w", rowIndex, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
