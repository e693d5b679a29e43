package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Provider fiscal periods look like "2024-Q3". Quarter 4 tags annual/TTM
// entries depending on the statement's duration.
var fiscalPeriodRe = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)

// periodEndingLayouts are tried in order when parsing period-ending dates.
var periodEndingLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
}

// ParseFiscalPeriod extracts (year, quarter) from a provider fiscal-period
// string. ok is false when the string does not match the expected pattern;
// callers drop that statement and keep going.
func ParseFiscalPeriod(s string) (year, quarter int, ok bool) {
	m := fiscalPeriodRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	quarter, _ = strconv.Atoi(m[2])
	return year, quarter, true
}

// FormatFiscalPeriod renders (year, quarter) back into the provider form.
func FormatFiscalPeriod(year, quarter int) string {
	return fmt.Sprintf("%04d-Q%d", year, quarter)
}

// ParsePeriodEnding parses a period-ending date string. Unlike a malformed
// fiscal period, a malformed date is an error: the statement cannot be
// stored without its calendar date.
func ParsePeriodEnding(s string) (time.Time, error) {
	for _, layout := range periodEndingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing period ending %q: unrecognized date format", s)
}
