package locations

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// slotKey is the single string key under which the serialized list is
// stored, matching the original persisted-storage layout.
const slotKey = "savedLocations"

// SQLiteBackend persists the slot in a single-row sqlite table. It
// satisfies Backend so the store is oblivious to which backend runs
// underneath.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (and if needed creates) the database at path.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Load() ([]byte, error) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (b *SQLiteBackend) Save(data []byte) error {
	_, err := b.db.Exec(`INSERT INTO slots(key, value, updated_at) VALUES(?,?,?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		slotKey, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
