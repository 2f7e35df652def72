// Credhyg checks the age of credentials recorded in a CSV file and
// alerts on entries older than a configurable threshold.
//
// Usage:
//
//	# Check credentials.csv, alert if older than 90 days (default)
//	credhyg check credentials.csv
//
//	# Alert if older than 180 days
//	credhyg check credentials.csv --max_age 180
//
//	# Use a different creation-date format
//	credhyg check credentials.csv --date_format "%Y-%m-%d"
//
//	# Record the scan summary and review past scans
//	credhyg check credentials.csv --history scans.db
//	credhyg history --db scans.db
//
//	# Show version information
//	credhyg version
package main

func main() {
	Execute()
}
