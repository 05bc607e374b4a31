// Package timestamp normalizes the timestamps returned by the hosted store and
// builds the UTC day ranges used by every report query.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"barbacoa-pos/internal/domain"
)

// ErrEmpty is wrapped by ParseError when the raw value is blank.
var ErrEmpty = errors.New("empty timestamp")

// ParseError reports a timestamp that could not be parsed even after repair.
// Aggregations treat it as "skip this row".
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse timestamp %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	// "+0 0:00" as seen in some exported rows.
	zeroOffsetWithSpace = regexp.MustCompile(`([+-])0\s+0:00$`)
	// "+0500" or "+05 00".
	offsetWithoutColon = regexp.MustCompile(`([+-]\d{2})\s?(\d{2})$`)
)

// Layouts tried in order after repair. Fractional seconds are accepted by
// time.Parse even when the layout does not spell them out.
var layouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// Normalize applies the narrow offset repairs without parsing.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	s = zeroOffsetWithSpace.ReplaceAllString(s, "${1}00:00")
	s = offsetWithoutColon.ReplaceAllString(s, "${1}:${2}")
	return s
}

// Parse repairs and parses an upstream timestamp. The offset of the input is
// preserved in the returned time; timestamps without an offset are UTC.
func Parse(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, &ParseError{Raw: raw, Err: ErrEmpty}
	}

	s := Normalize(raw)
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, &ParseError{Raw: raw, Err: lastErr}
}

// ExtractDateKey returns the YYYY-MM-DD part of raw without parsing it, so a
// malformed offset does not hide the calendar date.
func ExtractDateKey(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if i := strings.Index(s, "T"); i >= 0 {
		key := s[:i]
		return key, key != ""
	}
	if len(s) >= 10 {
		return s[:10], true
	}
	return "", false
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// DayRange returns the inclusive UTC bounds of the calendar day of date:
// 00:00:00.000000 through 23:59:59.999999.
func DayRange(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24*time.Hour - time.Microsecond)
}

// Range returns the inclusive UTC bounds covering every day from start to end.
func Range(start, end time.Time) (time.Time, time.Time, error) {
	from, _ := DayRange(start)
	lastDay, to := DayRange(end)
	if lastDay.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidRange
	}
	return from, to, nil
}

// MonthRange returns the inclusive UTC bounds of a calendar month.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: got %d", domain.ErrInvalidMonth, month)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0).Add(-time.Microsecond), nil
}
