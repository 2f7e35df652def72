package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/checker"
)

// Scan is one recorded scan summary.
type Scan struct {
	RunID         string    `json:"run_id"`
	File          string    `json:"file"`
	ReferenceDate string    `json:"reference_date"`
	MaxAgeDays    int       `json:"max_age_days"`
	RowsEvaluated int       `json:"rows_evaluated"`
	RowsSkipped   int       `json:"rows_skipped"`
	DateErrors    int       `json:"date_errors"`
	ExpiredCount  int       `json:"expired_count"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// Store persists scan summaries to a SQLite database. Only summaries
// are stored: no record contents and in particular no secrets ever
// reach the database.
type Store struct {
	db *sql.DB

	insertStmt *sql.Stmt
	listStmt   *sql.Stmt
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("history db path cannot be empty")
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scans (
		run_id TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		reference_date TEXT NOT NULL,
		max_age_days INTEGER NOT NULL,
		rows_evaluated INTEGER NOT NULL,
		rows_skipped INTEGER NOT NULL,
		date_errors INTEGER NOT NULL,
		expired_count INTEGER NOT NULL,
		recorded_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_scans_recorded_at ON scans(recorded_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`
		INSERT INTO scans (run_id, file, reference_date, max_age_days,
			rows_evaluated, rows_skipped, date_errors, expired_count, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}

	s.listStmt, err = s.db.Prepare(`
		SELECT run_id, file, reference_date, max_age_days,
			rows_evaluated, rows_skipped, date_errors, expired_count, recorded_at
		FROM scans
		ORDER BY recorded_at DESC, run_id
		LIMIT ?`)
	return err
}

// RecordScan stores the summary of a completed scan.
func (s *Store) RecordScan(ctx context.Context, res *checker.Result) error {
	_, err := s.insertStmt.ExecContext(ctx,
		res.RunID,
		res.File,
		res.ReferenceDate,
		res.MaxAgeDays,
		res.RowsEvaluated,
		res.RowsSkipped,
		res.DateErrors,
		res.ExpiredCount,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record scan %s: %w", res.RunID, err)
	}
	return nil
}

// ListScans returns up to limit recorded scans, newest first.
func (s *Store) ListScans(ctx context.Context, limit int) ([]Scan, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.listStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var sc Scan
		var recordedAt int64
		if err := rows.Scan(
			&sc.RunID,
			&sc.File,
			&sc.ReferenceDate,
			&sc.MaxAgeDays,
			&sc.RowsEvaluated,
			&sc.RowsSkipped,
			&sc.DateErrors,
			&sc.ExpiredCount,
			&recordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		sc.RecordedAt = time.Unix(recordedAt, 0).UTC()
		scans = append(scans, sc)
	}
	return scans, rows.Err()
}

// Close releases the prepared statements and the database handle.
func (s *Store) Close() error {
	if s.insertStmt != nil {
		s.insertStmt.Close()
	}
	if s.listStmt != nil {
		s.listStmt.Close()
	}
	return s.db.Close()
}
