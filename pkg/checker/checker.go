package checker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Options configures a Checker.
type Options struct {
	// MaxAgeDays is the age threshold in whole days. A record is
	// expired when its age is strictly greater than this. Must be
	// positive.
	MaxAgeDays int

	// DatePattern is the creation-date pattern, in strptime form
	// (%Y-%m-%d) or as a native Go layout. It must pass
	// ValidateDateFormat.
	DatePattern string

	// Now supplies the reference clock. Read exactly once per scan.
	// Defaults to time.Now.
	Now func() time.Time

	// Logger receives per-row diagnostics and alerts. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Checker evaluates credential files against an age threshold. A
// Checker is stateless across scans and safe to reuse.
type Checker struct {
	maxAgeDays int
	layout     string
	now        func() time.Time
	logger     *slog.Logger
}

// New validates opts and builds a Checker. Validation happens here,
// before any file access: a non-positive threshold or a pattern that
// fails ValidateDateFormat is rejected immediately.
func New(opts Options) (*Checker, error) {
	if opts.MaxAgeDays <= 0 {
		return nil, fmt.Errorf("max age must be a positive number of days, got %d", opts.MaxAgeDays)
	}
	if !ValidateDateFormat(opts.DatePattern) {
		return nil, fmt.Errorf("invalid date format %q: cannot parse reference date %s", opts.DatePattern, referenceDate)
	}
	layout, err := TranslateDatePattern(opts.DatePattern)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Checker{
		maxAgeDays: opts.MaxAgeDays,
		layout:     layout,
		now:        now,
		logger:     logger.With("component", "checker"),
	}, nil
}

// CheckFile scans the credential file at path. It returns a Result on
// any completed pass (even one that skipped every row) and an error
// otherwise: *FileAccessError when the file cannot be opened,
// *ProcessingError when the scan aborts mid-read. On error no partial
// count is returned.
func (c *Checker) CheckFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	// One clock read per run: every row is aged against the same day.
	today := dateOnly(c.now())

	res := &Result{
		RunID:         uuid.NewString(),
		File:          path,
		ReferenceDate: today.Format(time.DateOnly),
		MaxAgeDays:    c.maxAgeDays,
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	// The first row is always a header, discarded regardless of
	// content. An empty file yields a zero count.
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		return nil, &ProcessingError{Path: path, Err: err}
	}
	if !validUTF8(header) {
		return nil, &ProcessingError{Path: path, Err: fmt.Errorf("invalid UTF-8 encoding on line 1")}
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ProcessingError{Path: path, Err: err}
		}

		// Quoted fields can span physical lines, so diagnostics take
		// the record's position from the reader.
		line, _ := r.FieldPos(0)

		if !validUTF8(row) {
			return nil, &ProcessingError{Path: path, Err: fmt.Errorf("invalid UTF-8 encoding on line %d", line)}
		}

		if len(row) < minRecordFields {
			res.RowsSkipped++
			c.logger.Warn("skipping row with insufficient fields",
				"line", line,
				"fields", len(row),
			)
			continue
		}

		rec := recordFromRow(row)
		res.RowsEvaluated++

		created, err := time.Parse(c.layout, rec.CreationDate)
		if err != nil {
			res.DateErrors++
			c.logger.Error("invalid creation date in row",
				"line", line,
				"name", rec.Name,
				"creation_date", rec.CreationDate,
			)
			continue
		}

		age := daysBetween(created, today)
		if age < 0 {
			c.logger.Debug("creation date is in the future",
				"line", line,
				"name", rec.Name,
				"age_days", age,
			)
		}

		if age > c.maxAgeDays {
			res.ExpiredCount++
			res.Findings = append(res.Findings, Finding{
				Name:     rec.Name,
				Username: rec.Username,
				URL:      rec.URL,
				AgeDays:  age,
			})
			c.logger.Warn("credential exceeds maximum age",
				"name", rec.Name,
				"username", rec.Username,
				"url", rec.URL,
				"age_days", age,
				"max_age_days", c.maxAgeDays,
			)
		}
	}

	return res, nil
}

// validUTF8 reports whether every field of row is valid UTF-8. The
// input file is specified as UTF-8; anything else aborts the scan.
func validUTF8(row []string) bool {
	for _, field := range row {
		if !utf8.ValidString(field) {
			return false
		}
	}
	return true
}

// dateOnly truncates t to midnight UTC of its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference to - from. Negative when
// from is later.
func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)) / (24 * time.Hour))
}
