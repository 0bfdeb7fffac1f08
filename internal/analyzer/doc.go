// Package analyzer coordinates the collision-detection pipeline:
// load -> select -> correlate -> classify.
//
//	a := analyzer.New(nil)
//	report, err := a.AnalyzeFile(ctx, "index.json", selector.DefaultFilter())
//
// Multi-file runs treat every path as an independent unit of work with no
// shared mutable state and fan out across a bounded worker pool:
//
//	results, err := a.AnalyzeFiles(ctx, paths, filter)
//	// one FileResult per path, in input order
//
// Per-file errors are captured in the corresponding FileResult rather than
// failing the group; only context cancellation ends a run early.
//
// With Config.UseCache, completed reports are memoized in an LRU keyed by
// content hash plus filter, for server mode where the same file is analyzed
// repeatedly.
package analyzer
