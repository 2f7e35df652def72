package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/cli"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/config"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/history"
)

var historyFlags struct {
	db     string
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scan summaries",
	Long: `List scan summaries previously recorded with "check --history",
newest first.

Examples:
  # Show the last 20 scans
  credhyg history --db scans.db

  # JSON output for scripting
  credhyg history --db scans.db --limit 5 --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFlags.db, "db", "", "history database path (falls back to history.path in the config file)")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of scans to show")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(historyFlags.format)
	if err != nil {
		return cli.NewConfigError("format", err.Error())
	}

	dbPath := historyFlags.db
	if dbPath == "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return cli.NewConfigError("", err.Error())
		}
		dbPath = cfg.History.Path
	}
	if dbPath == "" {
		return cli.NewConfigError("db", "no history database specified (use --db or history.path in the config file)")
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	scans, err := store.ListScans(cmd.Context(), historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(os.Stdout, scans)
	}

	if len(scans) == 0 {
		fmt.Println("no recorded scans")
		return nil
	}
	for _, sc := range scans {
		fmt.Printf("%s  %s  %s  expired %d/%d (max age %d days, %d skipped, %d date errors)\n",
			sc.RecordedAt.Format("2006-01-02 15:04:05"),
			sc.RunID,
			sc.File,
			sc.ExpiredCount,
			sc.RowsEvaluated,
			sc.MaxAgeDays,
			sc.RowsSkipped,
			sc.DateErrors,
		)
	}
	return nil
}
