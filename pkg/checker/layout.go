package checker

import (
	"fmt"
	"strings"
	"time"
)

// referenceDate is the fixed date string a candidate pattern must parse
// to be considered valid. Pattern validation is purely syntactic and
// happens before any input file is touched.
const referenceDate = "2024-01-01"

// strptime directive to Go layout mapping. Only date and time-of-day
// directives are supported; anything else fails translation.
var strptimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'H': "15",
	'M': "04",
	'S': "05",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'p': "PM",
	'z': "-0700",
	'Z': "MST",
	'%': "%",
}

// TranslateDatePattern converts a strptime-style pattern (%Y-%m-%d) to a
// Go time layout. Patterns containing no % directives are treated as
// native Go layouts and returned unchanged.
func TranslateDatePattern(pattern string) (string, error) {
	if !strings.ContainsRune(pattern, '%') {
		return pattern, nil
	}

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			b.WriteByte(pattern[i])
			continue
		}
		if i+1 >= len(pattern) {
			return "", fmt.Errorf("trailing %% in date pattern %q", pattern)
		}
		i++
		layout, ok := strptimeDirectives[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in date pattern %q", pattern[i], pattern)
		}
		b.WriteString(layout)
	}
	return b.String(), nil
}

// ValidateDateFormat reports whether pattern is usable for this run. A
// pattern is valid when it translates to a Go layout that successfully
// parses the fixed reference date. No file I/O is performed.
func ValidateDateFormat(pattern string) bool {
	layout, err := TranslateDatePattern(pattern)
	if err != nil {
		return false
	}
	_, err = time.Parse(layout, referenceDate)
	return err == nil
}
