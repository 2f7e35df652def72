package main

import (
	"strings"
	"testing"
)

func TestHistoryCommandFlagDefaults(t *testing.T) {
	if f := historyCmd.Flags().Lookup("limit"); f == nil || f.DefValue != "20" {
		t.Errorf("--limit default = %v, want 20", f)
	}
	if f := historyCmd.Flags().Lookup("db"); f == nil || f.DefValue != "" {
		t.Errorf("--db default = %v, want empty", f)
	}
}

func TestHistoryCommandRequiresDatabase(t *testing.T) {
	err := runHistory(historyCmd, nil)
	if err == nil {
		t.Fatal("runHistory() without a database succeeded, want error")
	}
	if !strings.Contains(err.Error(), "history database") {
		t.Errorf("error %q does not explain the missing database", err.Error())
	}
}
