package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the default path of the snapshot export database
func DBPath() string {
	return filepath.Join("data", "velib-snapshots.db")
}

// Open ensures the schema exists at dbPath and returns a handle to it.
// The parent directory is created when missing.
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	if err := EnsureSnapshotSchema(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// EnsureSnapshotSchema creates the snapshot tables if they do not exist.
// Existing rows are left alone.
func EnsureSnapshotSchema(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at TEXT NOT NULL,
			source_url TEXT,
			station_count INTEGER NOT NULL,
			bikes_total INTEGER NOT NULL,
			docks_total INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshot_stations (
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			municipal_code TEXT NOT NULL,
			insee_code TEXT NOT NULL,
			commune_name TEXT NOT NULL,
			station_code TEXT NOT NULL,
			bikes_available INTEGER,
			docks_available INTEGER,
			capacity INTEGER,
			last_updated TEXT NOT NULL,
			PRIMARY KEY (snapshot_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_snapshot_stations_code ON snapshot_stations(station_code);
	`)
	if err != nil {
		return fmt.Errorf("creating snapshot tables: %w", err)
	}

	return nil
}
