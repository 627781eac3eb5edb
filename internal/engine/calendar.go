package engine

import (
	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
)

type CellKind string

const (
	// CellKindEmpty pads the month grid before day 1 so cells align with the
	// Sunday-first weekday columns. The grid carries no trailing padding;
	// fixed-size 42-cell grids are a presentation decision, not made here.
	CellKindEmpty CellKind = "empty"
	CellKindDay   CellKind = "day"
)

// DayCell is one renderable calendar cell.
type DayCell struct {
	Kind       CellKind  `json:"kind"`
	Date       time.Time `json:"date,omitempty"`
	Status     DayStatus `json:"status,omitempty"`
	EventCount int       `json:"event_count"`
}

// MonthGrid builds one cell per calendar day of the Gregorian month, preceded
// by leading empty cells equal to the weekday of the 1st (Sunday=0). Month
// length comes from "day 0 of the next month".
func (ix *Index) MonthGrid(year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Kind: CellKindEmpty})
	}
	for d := 0; d < daysInMonth; d++ {
		date := first.AddDate(0, 0, d)
		cells = append(cells, DayCell{
			Kind:       CellKindDay,
			Date:       date,
			Status:     ix.StatusOf(date),
			EventCount: ix.eventCountOn(date),
		})
	}
	return cells
}

// WeekStart returns the Sunday on or before the anchor date.
func WeekStart(anchor time.Time) time.Time {
	anchor = Day(anchor)
	return anchor.AddDate(0, 0, -int(anchor.Weekday()))
}

// NextWeek and PrevWeek move by exactly 7 days from the current week's
// boundary, not from "today", so repeated navigation is idempotent and
// reversible.
func NextWeek(anchor time.Time) time.Time { return WeekStart(anchor).AddDate(0, 0, 7) }
func PrevWeek(anchor time.Time) time.Time { return WeekStart(anchor).AddDate(0, 0, -7) }

// WeekGrid emits the 7 day cells of the Sunday-started week containing anchor.
func (ix *Index) WeekGrid(anchor time.Time) []DayCell {
	start := WeekStart(anchor)
	cells := make([]DayCell, 0, 7)
	for d := 0; d < 7; d++ {
		date := start.AddDate(0, 0, d)
		cells = append(cells, DayCell{
			Kind:       CellKindDay,
			Date:       date,
			Status:     ix.StatusOf(date),
			EventCount: ix.eventCountOn(date),
		})
	}
	return cells
}

type FleetDayStatus string

const (
	FleetDayAllAvailable FleetDayStatus = "all-available"
	FleetDayAllBooked    FleetDayStatus = "all-booked"
	FleetDayMixed        FleetDayStatus = "mixed"
)

// FleetDayBreakdown summarizes one date across a fleet.
type FleetDayBreakdown struct {
	BookedCount    int            `json:"booked_count"`
	AvailableCount int            `json:"available_count"`
	DayStatus      FleetDayStatus `json:"day_status"`
}

// FleetBreakdown tallies the fleet's per-vehicle day status. A vehicle whose
// index is missing counts as available (unknown vehicle = empty index). A
// vehicle in vehicle-level maintenance is excluded from AvailableCount even
// when no exception or booking exists for that date.
func FleetBreakdown(date time.Time, vehicles []domain.Vehicle, indexes map[int32]*Index) FleetDayBreakdown {
	var out FleetDayBreakdown
	empty := &Index{}
	for i := range vehicles {
		v := &vehicles[i]
		ix := indexes[v.ID]
		if ix == nil {
			ix = empty
		}
		switch ix.StatusOf(date) {
		case DayStatusAvailable:
			if v.Status != domain.VehicleStatusMaintenance {
				out.AvailableCount++
			}
		default:
			out.BookedCount++
		}
	}
	switch {
	case out.BookedCount == 0:
		out.DayStatus = FleetDayAllAvailable
	case out.AvailableCount == 0:
		out.DayStatus = FleetDayAllBooked
	default:
		out.DayStatus = FleetDayMixed
	}
	return out
}
