package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/checker"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/cli"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/config"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/history"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/telemetry/logging"
)

var checkFlags struct {
	maxAge      int
	dateFormat  string
	format      string
	historyPath string
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check credential ages in a CSV file",
	Long: `Scan a CSV credential file and count records whose age exceeds the
maximum. The expected row format is:

  name,username,password,url,creation_date

Fields beyond the fifth are ignored. The first row is always discarded
as a header. One warning is logged per expired credential, naming the
entry, its age and the threshold; secrets are never logged.

Examples:
  # Default 90-day threshold
  credhyg check credentials.csv

  # Custom threshold and date format
  credhyg check credentials.csv --max_age 180 --date_format "%Y-%m-%d"

  # JSON result for scripting
  credhyg check credentials.csv --format json

  # Record the scan summary to a history database
  credhyg check credentials.csv --history scans.db`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkFlags.maxAge, "max_age", 90, "maximum credential age in days before an alert is raised")
	checkCmd.Flags().StringVar(&checkFlags.dateFormat, "date_format", "%Y-%m-%d", "creation-date format (strptime directives or Go layout)")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
	checkCmd.Flags().StringVar(&checkFlags.historyPath, "history", "", "record the scan summary to this SQLite database")
}

// resolveConfig loads the layered configuration and applies flag
// overrides. It runs before any input file is opened.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}

	if cmd.Flags().Changed("max_age") {
		cfg.MaxAge = checkFlags.maxAge
	}
	if cmd.Flags().Changed("date_format") {
		cfg.DateFormat = checkFlags.dateFormat
	}
	if checkFlags.historyPath != "" {
		cfg.History.Path = checkFlags.historyPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	if cfg.MaxAge <= 0 {
		return nil, cli.NewConfigError("max_age", fmt.Sprintf("must be a positive integer, got %d", cfg.MaxAge))
	}
	if !checker.ValidateDateFormat(cfg.DateFormat) {
		return nil, cli.NewConfigError("date_format", fmt.Sprintf("%q cannot parse the reference date", cfg.DateFormat))
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	format, err := cli.ParseOutputFormat(checkFlags.format)
	if err != nil {
		return cli.NewConfigError("format", err.Error())
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return cli.NewConfigError("log_level", err.Error())
	}

	c, err := checker.New(checker.Options{
		MaxAgeDays:  cfg.MaxAge,
		DatePattern: cfg.DateFormat,
		Logger:      logger,
	})
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	res, err := c.CheckFile(args[0])
	if err != nil {
		return cli.NewCommandError("check", err)
	}

	if res.ExpiredCount > 0 {
		logger.Info("credentials exceeding the maximum age found",
			"count", res.ExpiredCount,
			"max_age_days", res.MaxAgeDays,
		)
	} else {
		logger.Info("no credentials exceeding the maximum age found",
			"max_age_days", res.MaxAgeDays,
		)
	}

	recordHistory(cmd, cfg, logger, res)

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(os.Stdout, res)
	}
	return cli.NewFormatter(format).FormatTo(os.Stdout, summaryLine(res))
}

// recordHistory stores the scan summary when a history database is
// configured. Failures are logged and never change the scan outcome.
func recordHistory(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, res *checker.Result) {
	if cfg.History.Path == "" {
		return
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("cannot open history database", "path", cfg.History.Path, "error", err)
		return
	}
	defer store.Close()

	if err := store.RecordScan(cmd.Context(), res); err != nil {
		logger.Warn("cannot record scan history", "path", cfg.History.Path, "error", err)
	}
}

func summaryLine(res *checker.Result) string {
	if res.ExpiredCount == 0 {
		return fmt.Sprintf("checked %d records: none exceed the maximum age of %d days",
			res.RowsEvaluated, res.MaxAgeDays)
	}
	return fmt.Sprintf("checked %d records: %d exceed the maximum age of %d days",
		res.RowsEvaluated, res.ExpiredCount, res.MaxAgeDays)
}
