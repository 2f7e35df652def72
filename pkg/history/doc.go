// Package history provides the optional SQLite scan-history store.
//
// History is an opt-in sidecar around the evaluation pass: a summary
// row (run ID, file, reference date, threshold, counters) is written
// only after a scan completes successfully, and a write failure never
// changes the scan result or the process exit code. The evaluator
// itself stays persistence-free.
package history
