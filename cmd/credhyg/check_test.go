package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/checker"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/cli"
)

func TestCheckCommandFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"max_age", "90"},
		{"date_format", "%Y-%m-%d"},
		{"format", "text"},
		{"history", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := checkCmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not registered", tt.flag)
			}
			if f.DefValue != tt.want {
				t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
			}
		})
	}
}

func TestCheckCommandRequiresFileArgument(t *testing.T) {
	if err := checkCmd.Args(checkCmd, nil); err == nil {
		t.Error("no positional argument accepted, want error")
	}
	if err := checkCmd.Args(checkCmd, []string{"credentials.csv"}); err != nil {
		t.Errorf("single argument rejected: %v", err)
	}
	if err := checkCmd.Args(checkCmd, []string{"a.csv", "b.csv"}); err == nil {
		t.Error("two positional arguments accepted, want error")
	}
}

func TestResolveConfigRejectsNonPositiveMaxAge(t *testing.T) {
	if err := checkCmd.Flags().Set("max_age", "-1"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer checkCmd.Flags().Set("max_age", "90")

	_, err := resolveConfig(checkCmd)
	if err == nil {
		t.Fatal("resolveConfig() accepted max_age=-1, want error")
	}
	var cfgErr *cli.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *cli.ConfigError", err)
	}
	if !strings.Contains(err.Error(), "max_age") {
		t.Errorf("error %q does not mention max_age", err.Error())
	}
}

func TestResolveConfigRejectsBadDateFormat(t *testing.T) {
	if err := checkCmd.Flags().Set("date_format", "%Q"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer checkCmd.Flags().Set("date_format", "%Y-%m-%d")

	_, err := resolveConfig(checkCmd)
	if err == nil {
		t.Fatal("resolveConfig() accepted an invalid date format, want error")
	}
	if !strings.Contains(err.Error(), "date_format") {
		t.Errorf("error %q does not mention date_format", err.Error())
	}
}

func TestResolveConfigAppliesFlagOverrides(t *testing.T) {
	if err := checkCmd.Flags().Set("max_age", "120"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer checkCmd.Flags().Set("max_age", "90")

	cfg, err := resolveConfig(checkCmd)
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}
	if cfg.MaxAge != 120 {
		t.Errorf("MaxAge = %d, want flag override 120", cfg.MaxAge)
	}
}

func TestSummaryLine(t *testing.T) {
	res := &checker.Result{RowsEvaluated: 3, ExpiredCount: 2, MaxAgeDays: 90}
	got := summaryLine(res)
	if !strings.Contains(got, "2 exceed") || !strings.Contains(got, "90 days") {
		t.Errorf("summaryLine() = %q, want count and threshold", got)
	}

	res = &checker.Result{RowsEvaluated: 3, ExpiredCount: 0, MaxAgeDays: 90}
	got = summaryLine(res)
	if !strings.Contains(got, "none exceed") {
		t.Errorf("summaryLine() = %q, want the no-findings wording", got)
	}
}
