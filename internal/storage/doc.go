// Package storage persists analysis run history in SQLite.
//
// History exists so collision counts can be compared across index files
// produced by different SCIP generators (rust-analyzer vs verus-analyzer)
// and across indexer versions. The analysis pipeline itself never reads from
// here; a stored run is a completed report, nothing more.
//
//	store, err := storage.NewSQLiteStorage("~/.scipdup/scipdup.db")
//	run, err := store.SaveReport(ctx, report, storage.FilterRecord{
//	    Patterns:      []string{"neg", "mul"},
//	    FunctionsOnly: true,
//	})
//
// # Drivers
//
// Two interchangeable SQLite drivers are selected at build time:
//   - default (CGO_ENABLED=0): modernc.org/sqlite, pure Go
//   - -tags sqlite_cgo: github.com/mattn/go-sqlite3, C-backed
//
// # Schema
//
// Migrations are versioned and applied in order on open, gated by semver
// comparison against the recorded schema version. Schema v1 holds two
// tables: runs (one per analyzed file per invocation, with pattern list and
// counts) and findings (per-symbol occurrence lists, cascade-deleted with
// their run).
package storage
