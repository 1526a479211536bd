package domain

import (
	"math"
	"regexp"
	"time"
)

// DateLayout is the calendar-date storage and display format.
const DateLayout = "2006-01-02"

var leadingDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// fallbackLayouts are tried, in order, when the input string does not
// start with a YYYY-MM-DD group.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// timeValuer is the shape of opaque timestamp wrappers that expose a
// conversion to time.Time.
type timeValuer interface {
	Time() time.Time
}

// NormalizeDate converts a heterogeneous date value into a canonical
// local-midnight time. Accepted inputs: a string with a leading
// YYYY-MM-DD group (trailing characters tolerated), a time.Time or
// *time.Time, or any value exposing Time() time.Time. Returns ok=false
// for absent, malformed, or impossible calendar dates; it never panics.
//
// String parsing always interprets the year/month/day groups in the
// local timezone, never UTC, so a deadline renders on the same calendar
// day regardless of the viewer's UTC offset.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case string:
		return normalizeDateString(d)
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return Midnight(d.In(time.Local)), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return Midnight(d.In(time.Local)), true
	case timeValuer:
		t := d.Time()
		if t.IsZero() {
			return time.Time{}, false
		}
		return Midnight(t.In(time.Local)), true
	default:
		return time.Time{}, false
	}
}

func normalizeDateString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if leadingDatePattern.MatchString(s) {
		// ParseInLocation rejects impossible dates such as 2024-02-30.
		t, err := time.ParseInLocation(DateLayout, s[:len(DateLayout)], time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Midnight(t.In(time.Local)), true
		}
	}
	return time.Time{}, false
}

// Midnight truncates t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference to − from, both taken at
// midnight. Rounding absorbs DST transitions (23h/25h days).
func DaysBetween(from, to time.Time) int {
	d := Midnight(to).Sub(Midnight(from))
	return int(math.Round(d.Hours() / 24))
}
