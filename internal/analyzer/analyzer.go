package analyzer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/scipdup/internal/correlator"
	"github.com/dshills/scipdup/internal/loader"
	"github.com/dshills/scipdup/internal/selector"
	"github.com/dshills/scipdup/pkg/types"
)

// Analyzer coordinates the analysis pipeline for one or more index files:
// load -> select -> correlate -> classify.
type Analyzer struct {
	correlator *correlator.Correlator
	cache      *resultCache

	// Worker pool configuration for multi-file runs
	workers int
}

// Config contains configuration for the analyzer
type Config struct {
	Workers   int  // Number of concurrent workers (default: runtime.NumCPU())
	CacheSize int  // Result cache entries (default: 128; 0 uses the default)
	UseCache  bool // Whether to serve repeat analyses from the cache
}

// FileResult pairs one input path with its report or its error. Failures are
// recovered at the per-file boundary, so a multi-file run always yields one
// result per input in input order.
type FileResult struct {
	Path   string
	Report *types.Report
	Err    error
}

// New creates a new Analyzer instance
func New(config *Config) *Analyzer {
	if config == nil {
		config = &Config{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	a := &Analyzer{
		correlator: correlator.New(),
		workers:    workers,
	}
	if config.UseCache {
		a.cache = newResultCache(config.CacheSize)
	}
	return a
}

// AnalyzeFile runs the full two-pass analysis on a single index file. Input
// validation failures come back as *types.InputError; a candidate that
// cannot be correlated back to the raw text comes back as
// *types.CorrelationError.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string, filter selector.Filter) (*types.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index, raw, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	var key cacheKey
	if a.cache != nil {
		key = computeCacheKey(raw, filter)
		if cached, ok := a.cache.get(key); ok {
			if cached.Path == path {
				return cached, nil
			}
			// The key covers content and filter only, so a hit can come
			// from a byte-identical file at another path. Findings are
			// immutable and shared; the path must be the caller's.
			report := *cached
			report.Path = path
			return &report, nil
		}
	}

	sel := selector.New(filter)
	candidates := sel.Select(index)

	occurrences, err := a.correlator.Correlate(raw, candidates)
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		Path:     path,
		Patterns: sel.Filter().Patterns,
		Findings: correlator.Classify(occurrences),
	}

	if a.cache != nil {
		a.cache.add(key, report)
	}

	return report, nil
}

// AnalyzeFiles analyzes each input path as an independent unit of work and
// returns one result per path in input order. Files fan out across a bounded
// worker pool; one failing file never aborts the others. Only context
// cancellation stops the run early.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string, filter selector.Filter) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	semaphore := make(chan struct{}, a.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
				// Acquire semaphore
			}
			defer func() { <-semaphore }()

			report, err := a.AnalyzeFile(gctx, path, filter)
			if err != nil && gctx.Err() != nil {
				// Cancellation aborts the run; it is not a per-file failure.
				return gctx.Err()
			}
			results[i] = FileResult{Path: path, Report: report, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
