package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/scipdup/internal/storage"
)

// NewHistoryCmd creates the "history" command, which lists saved runs.
func NewHistoryCmd() *cobra.Command {
	var (
		dbPath   string
		filePath string
		limit    int
	)

	cmd := &cobra.Command{
		Use:          "history",
		Short:        "List saved analysis runs, newest first",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := store.ListRuns(cmd.Context(), filePath, limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
				return nil
			}

			w := cmd.OutOrStdout()
			for _, run := range runs {
				flag := ""
				if run.CollisionCount > 0 {
					flag = fmt.Sprintf("  (%d collision(s))", run.CollisionCount)
				}
				fmt.Fprintf(w, "#%d  %s  %s  patterns=[%s]  unique=%d%s\n",
					run.ID,
					run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.FilePath,
					run.Patterns,
					run.UniqueCount,
					flag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "",
		"history database directory (default ~/.scipdup)")
	cmd.Flags().StringVar(&filePath, "file", "",
		"only list runs for this input file path")
	cmd.Flags().IntVar(&limit, "limit", 20,
		"maximum number of runs to list")

	return cmd
}

// openHistory opens the run-history database, defaulting to ~/.scipdup and
// creating the directory on first use.
func openHistory(dbPath string) (storage.Storage, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".scipdup")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return storage.NewSQLiteStorage(filepath.Join(dbPath, "scipdup.db"))
}
