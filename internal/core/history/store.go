package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the append-only record of completed requests. It lives in an
// in-memory SQLite database, so its contents last exactly as long as the
// owning process. There is no delete path: entries are appended, listed,
// and looked up, never removed.
type Store struct {
	db *sql.DB
}

// NewStore opens a fresh in-memory store.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// A single conn keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			method      TEXT NOT NULL,
			url         TEXT NOT NULL,
			status      INTEGER NOT NULL,
			status_text TEXT NOT NULL,
			size        INTEGER,
			time_ns     INTEGER,
			body        TEXT,
			headers     TEXT,
			cookies     TEXT,
			timestamp   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_url ON history(url);
	`)
	if err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	return nil
}

// Append inserts a new entry and returns its id. Insertion order is the
// order completions arrive, which is the only ordering the store knows.
func (s *Store) Append(e Entry) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO history (method, url, status, status_text, size, time_ns, body, headers, cookies, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Method, e.URL, e.Status, e.StatusText, e.Size, e.Time.Nanoseconds(),
		e.Body, e.Headers, e.Cookies,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("appending history: %w", err)
	}
	return result.LastInsertId()
}

// List returns all entries in insertion order.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, method, url, status, status_text, size, time_ns, body, headers, cookies, timestamp
		FROM history
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Get returns a single entry by id.
func (s *Store) Get(id int64) (Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, method, url, status, status_text, size, time_ns, body, headers, cookies, timestamp
		FROM history
		WHERE id = ?`, id)

	e, err := scanEntry(row.Scan)
	if err != nil {
		return Entry{}, fmt.Errorf("loading history entry %d: %w", id, err)
	}
	return e, nil
}

// Len returns the number of entries.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// Close closes the database connection, discarding all entries.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(scan func(...any) error) (Entry, error) {
	var e Entry
	var timeNs int64
	var ts string
	err := scan(&e.ID, &e.Method, &e.URL, &e.Status, &e.StatusText,
		&e.Size, &timeNs, &e.Body, &e.Headers, &e.Cookies, &ts)
	if err != nil {
		return Entry{}, err
	}
	e.Time = time.Duration(timeNs)
	e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
	return e, nil
}
