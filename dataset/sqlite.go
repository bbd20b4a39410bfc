package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RyanBlaney/ritmo-radar/features"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Store persists feature records to SQLite so extraction runs can be
// compared across invocations. Records are grouped under a run id.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path and migrates the
// schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("dataset: pinging sqlite db: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("dataset: migration failed: %w", err)
	}
	return store, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS feature_records (
			run_id             TEXT NOT NULL REFERENCES runs(id),
			source_path        TEXT NOT NULL,
			label              TEXT NOT NULL,
			hp_drain_rate      REAL NOT NULL,
			circle_size        REAL NOT NULL,
			overall_difficulty REAL NOT NULL,
			approach_rate      REAL NOT NULL,
			slider_multiplier  REAL NOT NULL,
			slider_tick_rate   REAL NOT NULL,
			avg_dist           REAL NOT NULL,
			avg_time           REAL NOT NULL,
			wholes             REAL NOT NULL,
			halves             REAL NOT NULL,
			thirds             REAL NOT NULL,
			fourths            REAL NOT NULL,
			sixths             REAL NOT NULL,
			eigths             REAL NOT NULL,
			twelfths           REAL NOT NULL,
			sixteenths         REAL NOT NULL,
			other              REAL NOT NULL
		);
	`)
	return err
}

// BeginRun registers a new extraction run and returns its id.
func (s *Store) BeginRun(ctx context.Context) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, created_at) VALUES (?, ?)",
		runID, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("dataset: registering run: %w", err)
	}
	return runID, nil
}

// SaveRecord stores one feature record under the given run.
func (s *Store) SaveRecord(ctx context.Context, runID, sourcePath string, record features.Record) error {
	p := record.Features.RhythmPercents
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feature_records (
			run_id, source_path, label,
			hp_drain_rate, circle_size, overall_difficulty, approach_rate,
			slider_multiplier, slider_tick_rate, avg_dist, avg_time,
			wholes, halves, thirds, fourths, sixths, eigths, twelfths, sixteenths, other
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, sourcePath, record.Label,
		record.Difficulty.HPDrainRate, record.Difficulty.CircleSize,
		record.Difficulty.OverallDifficulty, record.Difficulty.ApproachRate,
		record.Difficulty.SliderMultiplier, record.Difficulty.SliderTickRate,
		record.Features.AvgDistance, record.Features.AvgTimeGap,
		p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7], p[8])
	if err != nil {
		return fmt.Errorf("dataset: storing record for %s: %w", sourcePath, err)
	}
	return nil
}

// RecordCount returns the number of records stored under a run.
func (s *Store) RecordCount(ctx context.Context, runID string) (int, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM feature_records WHERE run_id = ?", runID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("dataset: counting records: %w", err)
	}
	return count, nil
}
