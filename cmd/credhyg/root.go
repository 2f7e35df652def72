package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "credhyg",
	Short: "Credential age checker",
	Long: `Credhyg reads a CSV file of credential entries and flags records whose
creation date exceeds a configurable age threshold.

Each data row is expected to carry at least five fields:
  name,username,password,url,creation_date

The first row is always treated as a header and discarded. Rows with too
few fields or unparseable dates are logged and skipped; they never abort
a scan. The process exits 0 on any completed scan (even one that found
expired credentials) and 1 on configuration or file errors.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Every fatal condition surfaces as
// exactly one line on stderr before the non-zero exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", "", "log level: DEBUG, INFO, WARNING, ERROR, CRITICAL (default INFO)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log_format", "", "log output format: text, json (default text)")
}
