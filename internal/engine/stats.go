package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
)

// statsWindowDays is the trailing utilization window length.
const statsWindowDays = 30

// Snapshot is a vehicle's derived statistics over a trailing 30-day window
// ending at the caller-supplied evaluation instant. Windowed utilization sits
// next to deliberately all-time totals; that asymmetry is part of the contract.
type Snapshot struct {
	UtilizationRate       int     `json:"utilization_rate"` // percent, 0-100+
	TotalBookings         int     `json:"total_bookings"`
	TotalRevenueCents     int64   `json:"total_revenue_cents"`
	UnavailableDays       int     `json:"unavailable_days"`
	UpcomingBookings      int     `json:"upcoming_bookings"`
	AverageRentalDuration float64 `json:"average_rental_duration"` // days, one decimal
}

// Statistics computes the snapshot. now is always supplied by the caller and
// truncated to midnight; the engine never reads the system clock.
func Statistics(bookings []domain.Booking, exceptions []domain.AvailabilityException, now time.Time) (Snapshot, error) {
	windowEnd := Day(now)
	window := DateRange{Start: windowEnd.AddDate(0, 0, -statsWindowDays), End: windowEnd}

	var snap Snapshot
	bookedDaysInPeriod := 0
	totalDuration := 0

	for i := range bookings {
		b := &bookings[i]
		rng, err := ParseDateRange(b.StartDate, b.EndDate)
		if err != nil {
			return Snapshot{}, fmt.Errorf("booking %d: %w", b.ID, err)
		}

		snap.TotalBookings++
		snap.TotalRevenueCents += int64(b.TotalAmountCents)
		totalDuration += rng.Days()
		if !rng.Start.Before(windowEnd) {
			snap.UpcomingBookings++
		}

		// Bookings entirely in the future contribute nothing to utilization.
		if rng.Start.After(windowEnd) {
			continue
		}
		if clipped, ok := rng.Clip(window); ok {
			bookedDaysInPeriod += clipped.Days()
		}
	}

	unavailableDaysInPeriod := 0
	for i := range exceptions {
		e := &exceptions[i]
		rng, err := ParseDateRange(e.StartDate, e.EndDate)
		if err != nil {
			return Snapshot{}, fmt.Errorf("availability exception %d: %w", e.ID, err)
		}
		snap.UnavailableDays += rng.Days()
		if clipped, ok := rng.Clip(window); ok {
			unavailableDaysInPeriod += clipped.Days()
		}
	}

	// The inclusive window spans 31 dates; clamp windowed tallies to the
	// 30-day definition so a wall-to-wall booking reads as 100%, not 103%.
	if bookedDaysInPeriod > statsWindowDays {
		bookedDaysInPeriod = statsWindowDays
	}
	if unavailableDaysInPeriod > statsWindowDays {
		unavailableDaysInPeriod = statsWindowDays
	}

	// Denominator floor of 1 guards the fully-unavailable window.
	denom := statsWindowDays - unavailableDaysInPeriod
	if denom < 1 {
		denom = 1
	}
	snap.UtilizationRate = int(math.Round(float64(bookedDaysInPeriod) / float64(denom) * 100))

	if snap.TotalBookings > 0 {
		mean := float64(totalDuration) / float64(snap.TotalBookings)
		snap.AverageRentalDuration = math.Round(mean*10) / 10
	}
	return snap, nil
}
