package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	if err != nil {
		t.Fatalf("bad fixture range %s..%s: %v", start, end, err)
	}
	return r
}

func TestParseDay(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, err := ParseDay("2025-03-15")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDay("15/03/2025")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expected yyyy-mm-dd")
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("End before start", func(t *testing.T) {
		_, err := NewDateRange(mustDay(t, "2025-03-20"), mustDay(t, "2025-03-15"))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Same day is a one-day range", func(t *testing.T) {
		r, err := NewDateRange(mustDay(t, "2025-03-15"), mustDay(t, "2025-03-15"))
		assert.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("Time of day is truncated", func(t *testing.T) {
		start := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
		end := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
		r, err := NewDateRange(start, end)
		assert.NoError(t, err)
		assert.Equal(t, mustDay(t, "2025-03-15"), r.Start)
		assert.Equal(t, mustDay(t, "2025-03-15"), r.End)
	})
}

func TestDateRange_Intersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     DateRange
		expected bool
	}{
		{"Disjoint", mustRange(t, "2025-03-01", "2025-03-05"), mustRange(t, "2025-03-06", "2025-03-10"), false},
		{"Touching endpoints", mustRange(t, "2025-03-01", "2025-03-05"), mustRange(t, "2025-03-05", "2025-03-10"), true},
		{"Contained", mustRange(t, "2025-03-01", "2025-03-31"), mustRange(t, "2025-03-10", "2025-03-12"), true},
		{"Partial overlap", mustRange(t, "2025-03-15", "2025-03-20"), mustRange(t, "2025-03-18", "2025-03-22"), true},
		{"Single day with itself", mustRange(t, "2025-03-15", "2025-03-15"), mustRange(t, "2025-03-15", "2025-03-15"), true},
		{"Single day inside range", mustRange(t, "2025-03-15", "2025-03-15"), mustRange(t, "2025-03-10", "2025-03-20"), true},
		{"Single day outside range", mustRange(t, "2025-03-09", "2025-03-09"), mustRange(t, "2025-03-10", "2025-03-20"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Intersects(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.expected, tt.b.Intersects(tt.a))
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	assert.Equal(t, 6, mustRange(t, "2025-03-15", "2025-03-20").Days())
	assert.Equal(t, 1, mustRange(t, "2025-03-15", "2025-03-15").Days())
	assert.Equal(t, 31, mustRange(t, "2025-03-01", "2025-03-31").Days())
	// Across the Feb boundary in a non-leap year.
	assert.Equal(t, 4, mustRange(t, "2025-02-27", "2025-03-02").Days())
}

func TestDateRange_Clip(t *testing.T) {
	window := mustRange(t, "2025-02-18", "2025-03-20")

	t.Run("Straddles both edges", func(t *testing.T) {
		clipped, ok := mustRange(t, "2025-01-01", "2025-12-31").Clip(window)
		assert.True(t, ok)
		assert.Equal(t, window, clipped)
	})

	t.Run("Straddles end only", func(t *testing.T) {
		clipped, ok := mustRange(t, "2025-03-10", "2025-03-25").Clip(window)
		assert.True(t, ok)
		assert.Equal(t, mustRange(t, "2025-03-10", "2025-03-20"), clipped)
	})

	t.Run("Entirely outside", func(t *testing.T) {
		_, ok := mustRange(t, "2025-04-01", "2025-04-05").Clip(window)
		assert.False(t, ok)
	})

	t.Run("Entirely inside", func(t *testing.T) {
		r := mustRange(t, "2025-03-01", "2025-03-03")
		clipped, ok := r.Clip(window)
		assert.True(t, ok)
		assert.Equal(t, r, clipped)
	})
}
