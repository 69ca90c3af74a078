package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection shared by the item and recovery stores.
type DB struct {
	conn *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id           TEXT PRIMARY KEY,
	post_type    TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	location     TEXT NOT NULL DEFAULT '',
	thumbnail    TEXT NOT NULL DEFAULT '',
	date         DATETIME NOT NULL,
	contact_name TEXT NOT NULL DEFAULT '',
	email        TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'open',
	created_at   DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_date   ON items(date);
CREATE INDEX IF NOT EXISTS idx_items_status ON items(status);

CREATE TABLE IF NOT EXISTS recoveries (
	id                 TEXT PRIMARY KEY,
	original_item_id   TEXT NOT NULL,
	recovered_by_name  TEXT NOT NULL,
	recovered_by_email TEXT NOT NULL,
	recovered_location TEXT NOT NULL DEFAULT '',
	recovered_date     DATETIME NOT NULL,
	created_at         DATETIME NOT NULL
);

-- At most one recovery per item. The insert racing a concurrent claim for
-- the same item loses here, not in application code.
CREATE UNIQUE INDEX IF NOT EXISTS idx_recoveries_original_item_id
	ON recoveries(original_item_id);

CREATE INDEX IF NOT EXISTS idx_recoveries_claimant_email
	ON recoveries(recovered_by_email);
`

// Open creates or opens the SQLite database at path and applies the schema.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer, many readers.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close shuts down the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
