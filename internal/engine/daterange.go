// Package engine implements the vehicle availability and booking pricing
// engine: pure, synchronous computations over caller-supplied booking and
// exception collections. The engine never reads a clock, performs I/O, or
// caches results; callers re-supply fresh collections after any mutation.
package engine

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDay converts a yyyy-mm-dd string into a UTC-midnight time.Time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", s)
	}
	return t, nil
}

// Day truncates t to UTC midnight so all range arithmetic works on whole days.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive [Start,End] day interval: both endpoints are
// occupied days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds an inclusive range, rejecting end-before-start with
// ErrInvalidRange. Same-day start and end is a valid one-day range.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidRange, end.Format(dayLayout), start.Format(dayLayout))
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange builds a range from two yyyy-mm-dd strings.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := ParseDay(startStr)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDay(endStr)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(start, end)
}

// Contains reports whether d falls on a day inside the inclusive range.
func (r DateRange) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Intersects reports whether two inclusive ranges share at least one day:
// a1 <= b2 && b1 <= a2. Holds for degenerate one-day ranges.
func (r DateRange) Intersects(o DateRange) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

// Days is the inclusive day count of the range (same-day range is 1).
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Clip intersects r with the window and reports whether anything remains.
func (r DateRange) Clip(window DateRange) (DateRange, bool) {
	lo, hi := r.Start, r.End
	if lo.Before(window.Start) {
		lo = window.Start
	}
	if hi.After(window.End) {
		hi = window.End
	}
	if hi.Before(lo) {
		return DateRange{}, false
	}
	return DateRange{Start: lo, End: hi}, true
}
