package storage

import (
	"context"
	"time"

	"github.com/dshills/scipdup/pkg/types"
)

// Storage defines the interface for persisting and querying analysis run
// history. The core analysis pipeline never reads from here; history exists
// so collision counts can be compared across indexer versions and across
// invocations.
type Storage interface {
	// Run operations
	SaveReport(ctx context.Context, report *types.Report, filter FilterRecord) (*Run, error)
	GetRun(ctx context.Context, runID int64) (*Run, error)
	ListRuns(ctx context.Context, filePath string, limit int) ([]*Run, error)

	// Finding operations
	ListFindingsByRun(ctx context.Context, runID int64) ([]*FindingRecord, error)

	// Database operations
	Close() error
}

// FilterRecord is the filter configuration persisted alongside a run, so a
// stored run is interpretable without the invocation that produced it.
type FilterRecord struct {
	Patterns      []string
	FunctionsOnly bool
}

// Run represents one persisted analysis of one input file
type Run struct {
	ID             int64
	FilePath       string
	Patterns       string // Comma-joined pattern list
	FunctionsOnly  bool
	UniqueCount    int
	CollisionCount int
	CreatedAt      time.Time
}

// FindingRecord represents one persisted per-symbol finding
type FindingRecord struct {
	ID        int64
	RunID     int64
	Symbol    string
	FirstLine int
	// Lines is the full ascending occurrence list, comma-joined
	Lines     string
	Collision bool
	CreatedAt time.Time
}
