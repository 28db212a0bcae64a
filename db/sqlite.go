package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the SQLite file at path in WAL mode
// and applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(2)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return conn, nil
}

func migrate(conn *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS usage_entries (
			id TEXT PRIMARY KEY,
			timestamp_ms INTEGER NOT NULL,
			endpoint TEXT NOT NULL,
			input_tokens INTEGER,
			output_tokens INTEGER,
			character_count INTEGER,
			cost_usd REAL NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_usage_timestamp ON usage_entries(timestamp_ms DESC)`,
	}
	for _, m := range migrations {
		if _, err := conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
