package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/scipdup/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveReport persists one report and its findings in a single transaction.
func (s *SQLiteStorage) SaveReport(ctx context.Context, report *types.Report, filter FilterRecord) (*Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	run := &Run{
		FilePath:       report.Path,
		Patterns:       strings.Join(filter.Patterns, ","),
		FunctionsOnly:  filter.FunctionsOnly,
		UniqueCount:    report.UniqueCount(),
		CollisionCount: report.CollisionCount(),
		CreatedAt:      now,
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs (file_path, patterns, functions_only, unique_count, collision_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.FilePath, run.Patterns, run.FunctionsOnly, run.UniqueCount, run.CollisionCount, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert run: %w", err)
	}

	run.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}

	for i := range report.Findings {
		f := &report.Findings[i]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO findings (run_id, symbol, first_line, lines, collision, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, string(f.Symbol), f.FirstLine(), joinLines(f.Lines), f.IsCollision(), now)
		if err != nil {
			return nil, fmt.Errorf("failed to insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return run, nil
}

// GetRun retrieves a single run by ID
func (s *SQLiteStorage) GetRun(ctx context.Context, runID int64) (*Run, error) {
	query := `
		SELECT id, file_path, patterns, functions_only, unique_count, collision_count, created_at
		FROM runs
		WHERE id = ?
	`
	var run Run
	err := s.db.QueryRowContext(ctx, query, runID).Scan(
		&run.ID, &run.FilePath, &run.Patterns, &run.FunctionsOnly,
		&run.UniqueCount, &run.CollisionCount, &run.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns returns recent runs, newest first, optionally filtered to one
// input path. A non-positive limit lists everything.
func (s *SQLiteStorage) ListRuns(ctx context.Context, filePath string, limit int) ([]*Run, error) {
	query := `
		SELECT id, file_path, patterns, functions_only, unique_count, collision_count, created_at
		FROM runs
	`
	args := make([]interface{}, 0, 2)
	if filePath != "" {
		query += " WHERE file_path = ?"
		args = append(args, filePath)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	runs := make([]*Run, 0)
	for rows.Next() {
		var run Run
		err := rows.Scan(
			&run.ID, &run.FilePath, &run.Patterns, &run.FunctionsOnly,
			&run.UniqueCount, &run.CollisionCount, &run.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// ListFindingsByRun returns a run's findings ordered by symbol
func (s *SQLiteStorage) ListFindingsByRun(ctx context.Context, runID int64) ([]*FindingRecord, error) {
	query := `
		SELECT id, run_id, symbol, first_line, lines, collision, created_at
		FROM findings
		WHERE run_id = ?
		ORDER BY symbol
	`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	findings := make([]*FindingRecord, 0)
	for rows.Next() {
		var f FindingRecord
		err := rows.Scan(
			&f.ID, &f.RunID, &f.Symbol, &f.FirstLine, &f.Lines, &f.Collision, &f.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		findings = append(findings, &f)
	}
	return findings, rows.Err()
}

// joinLines serializes an occurrence list as "12,40,88"
func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ",")
}

// SplitLines parses a stored occurrence list back into line numbers.
func SplitLines(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	lines := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid stored line list %q: %w", s, err)
		}
		lines[i] = n
	}
	return lines, nil
}
