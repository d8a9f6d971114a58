// Package snapshots exports fetched station snapshots to SQLite.
// It is write-once storage for offline analysis; the dashboard never reads it.
package snapshots

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ngmaloney/velib-terminal/internal/database"
	"github.com/ngmaloney/velib-terminal/internal/models"
	"github.com/ngmaloney/velib-terminal/internal/stats"
)

// Snapshot is one exported fetch
type Snapshot struct {
	ID        int64 // Database primary key (0 until saved)
	FetchedAt time.Time
	SourceURL string
	Summary   stats.Summary
	Stations  []models.Station // empty in List results
}

// Repository persists snapshots in a SQLite file
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// Save writes the snapshot and its stations in one transaction and sets snap.ID
func (r *Repository) Save(ctx context.Context, snap *Snapshot) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now()
	}
	snap.Summary = stats.Aggregate(snap.Stations)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (fetched_at, source_url, station_count, bikes_total, docks_total) VALUES (?, ?, ?, ?, ?)`,
		snap.FetchedAt.UTC().Format(time.RFC3339Nano),
		snap.SourceURL,
		snap.Summary.Stations,
		snap.Summary.Bikes,
		snap.Summary.Docks,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_stations (
			snapshot_id, position, name, municipal_code, insee_code, commune_name,
			station_code, bikes_available, docks_available, capacity, last_updated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing station insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range snap.Stations {
		_, err := stmt.ExecContext(ctx,
			id, i,
			s.Name, s.MunicipalCode, s.InseeCode, s.CommuneName, s.StationCode,
			nullableInt(s.BikesAvailable),
			nullableInt(s.DocksAvailable),
			nullableInt(s.Capacity),
			s.LastUpdated,
		)
		if err != nil {
			return fmt.Errorf("saving station %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	snap.ID = id
	return nil
}

// List returns every saved snapshot, newest first, without stations
func (r *Repository) List(ctx context.Context) ([]Snapshot, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, fetched_at, source_url, station_count, bikes_total, docks_total
		FROM snapshots ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var fetchedAt string
		var sourceURL sql.NullString

		if err := rows.Scan(&snap.ID, &fetchedAt, &sourceURL, &snap.Summary.Stations, &snap.Summary.Bikes, &snap.Summary.Docks); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snap.SourceURL = sourceURL.String
		snap.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing fetched_at of snapshot %d: %w", snap.ID, err)
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// Stations returns the stations of snapshot id in feed order. Nothing in the
// commands reads stations back; it exists to check the export round-trip in
// tests.
func (r *Repository) Stations(ctx context.Context, id int64) ([]models.Station, error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT name, municipal_code, insee_code, commune_name, station_code,
		       bikes_available, docks_available, capacity, last_updated
		FROM snapshot_stations WHERE snapshot_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot stations: %w", err)
	}
	defer rows.Close()

	stations := make([]models.Station, 0)
	for rows.Next() {
		var s models.Station
		var bikes, docks, capacity sql.NullInt64

		if err := rows.Scan(&s.Name, &s.MunicipalCode, &s.InseeCode, &s.CommuneName, &s.StationCode,
			&bikes, &docks, &capacity, &s.LastUpdated); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		s.BikesAvailable = intPtr(bikes)
		s.DocksAvailable = intPtr(docks)
		s.Capacity = intPtr(capacity)
		stations = append(stations, s)
	}

	return stations, rows.Err()
}

func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return int64(*n)
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	return models.IntPtr(int(n.Int64))
}
