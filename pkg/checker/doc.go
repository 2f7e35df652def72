// Package checker implements the credential age evaluation pass.
//
// # Overview
//
// A Checker scans a CSV credential file in a single sequential pass,
// parses each record's creation date, computes its age in whole days
// against a per-run reference date, and collects the records whose age
// strictly exceeds the configured maximum:
//
//	c, err := checker.New(checker.Options{
//	    MaxAgeDays:  90,
//	    DatePattern: "%Y-%m-%d",
//	})
//	if err != nil {
//	    // invalid threshold or date pattern
//	}
//	res, err := c.CheckFile("credentials.csv")
//
// Row-local problems (too few fields, unparseable dates) are logged and
// skipped; they never abort the scan or affect the expired count. File
// access failures and mid-scan read errors abort the scan and discard
// any partial count.
//
// # Determinism
//
// The reference date is read once per run from Options.Now (defaulting
// to time.Now), so every row in one invocation is compared against the
// same "today". Tests inject a fixed clock.
package checker
