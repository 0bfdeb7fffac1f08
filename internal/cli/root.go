package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/scipdup/internal/analyzer"
	"github.com/dshills/scipdup/internal/reporter"
	"github.com/dshills/scipdup/internal/selector"
	"github.com/dshills/scipdup/internal/storage"
)

// ErrAnalysisFailed signals that at least one input file failed validation
// or parsing. The per-file details have already been reported; callers
// should exit non-zero without printing it again.
var ErrAnalysisFailed = errors.New("analysis failed for one or more files")

// AnalyzeOptions holds the root command's flag values
type AnalyzeOptions struct {
	Patterns   []string
	AllSymbols bool
	Save       bool
	DBPath     string
	Workers    int
}

// NewRootCmd creates the top-level scipdup command. The root command itself
// analyzes the given index files; `serve` and `history` are subcommands.
// The filter defaults live here, not in the selector, so the core stays
// free of implicit global state.
func NewRootCmd(version string) *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "scipdup [flags] JSON_FILE...",
		Short: "Detect SCIP symbol collisions between impl blocks",
		Long: `Scipdup analyzes SCIP index files (converted to JSON) and detects symbol
collisions: distinct impl blocks that the indexer mapped to the identical
symbol identifier string, usually because the naming scheme discarded
type-distinguishing information.

Convert an index first:
  scip print --json index.scip > index.json`,
		Example: `  # Analyze a single file
  scipdup index.json

  # Compare index files from different SCIP generators
  scipdup index-ra.json index-va.json

  # Search for different trait-method names
  scipdup --pattern add --pattern sub index.json

  # Include non-function symbols (Output types, etc.)
  scipdup --all index.json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Version = version

	cmd.Flags().StringArrayVarP(&opts.Patterns, "pattern", "p", nil,
		"pattern to search for in symbol names (default: neg, mul); repeatable")
	cmd.Flags().BoolVarP(&opts.AllSymbols, "all", "a", false,
		"include all matching symbols, not just functions ending in '().'")
	cmd.Flags().BoolVar(&opts.Save, "save", false,
		"persist each successful report to the run history database")
	cmd.Flags().StringVar(&opts.DBPath, "db", "",
		"history database directory (default ~/.scipdup)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0,
		"maximum files analyzed concurrently (default: number of CPUs)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewHistoryCmd())

	return cmd
}

// runAnalyze executes the root analysis across all input files
func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	filter := selector.DefaultFilter()
	filter.FunctionsOnly = !opts.AllSymbols
	if len(opts.Patterns) > 0 {
		filter.Patterns = opts.Patterns
	}

	a := analyzer.New(&analyzer.Config{Workers: opts.Workers})

	results, err := a.AnalyzeFiles(cmd.Context(), args, filter)
	if err != nil {
		return err
	}

	rep := reporter.New(cmd.OutOrStdout())
	ok := rep.WriteResults(results)

	if opts.Save {
		if err := saveResults(cmd, results, filter, opts.DBPath); err != nil {
			return err
		}
	}

	if !ok {
		return ErrAnalysisFailed
	}
	return nil
}

// saveResults persists every successful report to the history database
func saveResults(cmd *cobra.Command, results []analyzer.FileResult, filter selector.Filter, dbPath string) error {
	store, err := openHistory(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	record := storage.FilterRecord{
		Patterns:      filter.Patterns,
		FunctionsOnly: filter.FunctionsOnly,
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		run, err := store.SaveReport(cmd.Context(), res.Report, record)
		if err != nil {
			return fmt.Errorf("failed to save report for %s: %w", res.Path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved run %d for %s\n", run.ID, res.Path)
	}
	return nil
}
