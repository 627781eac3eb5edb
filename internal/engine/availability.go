package engine

import (
	"fmt"

	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
)

// DayStatus is the derived availability state of a vehicle on one date.
// Unavailable (exception) takes precedence over booked, which takes precedence
// over available.
type DayStatus string

const (
	DayStatusAvailable   DayStatus = "available"
	DayStatusBooked      DayStatus = "booked"
	DayStatusUnavailable DayStatus = "unavailable"
)

type EventKind string

const (
	EventKindBooking   EventKind = "booking"
	EventKindException EventKind = "exception"
)

// Event is one booking or exception touching a date or range. Exactly one of
// Booking/Exception is set, matching Kind.
type Event struct {
	Kind      EventKind
	Range     DateRange
	Booking   *domain.Booking
	Exception *domain.AvailabilityException
}

type indexedBooking struct {
	rng     DateRange
	booking *domain.Booking
}

type indexedException struct {
	rng       DateRange
	exception *domain.AvailabilityException
}

// Index answers per-date and per-range availability questions for a single
// vehicle from its bookings and owner-declared exceptions. It is a pure view:
// an unknown vehicle simply yields an empty index where every date is free.
type Index struct {
	bookings   []indexedBooking
	exceptions []indexedException
}

// NewIndex parses the supplied collections into an index. A record with a
// malformed or inverted date range fails construction rather than being
// silently dropped, since dropping would hide a corrupt row behind a
// fully-available calendar.
func NewIndex(bookings []domain.Booking, exceptions []domain.AvailabilityException) (*Index, error) {
	ix := &Index{}
	for i := range bookings {
		b := &bookings[i]
		rng, err := ParseDateRange(b.StartDate, b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		ix.bookings = append(ix.bookings, indexedBooking{rng: rng, booking: b})
	}
	for i := range exceptions {
		e := &exceptions[i]
		rng, err := ParseDateRange(e.StartDate, e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("availability exception %d: %w", e.ID, err)
		}
		ix.exceptions = append(ix.exceptions, indexedException{rng: rng, exception: e})
	}
	return ix, nil
}

// StatusOf resolves one date: unavailable if any exception covers it, else
// booked if any blocking booking covers it, else available.
func (ix *Index) StatusOf(date time.Time) DayStatus {
	date = Day(date)
	for _, e := range ix.exceptions {
		if e.rng.Contains(date) {
			return DayStatusUnavailable
		}
	}
	for _, b := range ix.bookings {
		if b.booking.Blocks() && b.rng.Contains(date) {
			return DayStatusBooked
		}
	}
	return DayStatusAvailable
}

// IsRangeFree reports whether the inclusive [start,end] range collides with no
// exception and no blocking booking. end before start is ErrInvalidRange,
// never silently corrected.
func (ix *Index) IsRangeFree(start, end time.Time) (bool, error) {
	rng, err := NewDateRange(start, end)
	if err != nil {
		return false, err
	}
	return len(ix.conflicts(rng)) == 0, nil
}

// CheckRangeFree is IsRangeFree with the conflicting events attached: a
// non-free range yields a *RangeNotFreeError carrying every collision so the
// caller can show the user what is in the way.
func (ix *Index) CheckRangeFree(start, end time.Time) error {
	rng, err := NewDateRange(start, end)
	if err != nil {
		return err
	}
	if conflicts := ix.conflicts(rng); len(conflicts) > 0 {
		return &RangeNotFreeError{Conflicts: conflicts}
	}
	return nil
}

func (ix *Index) conflicts(rng DateRange) []Event {
	var events []Event
	for _, e := range ix.exceptions {
		if e.rng.Intersects(rng) {
			events = append(events, Event{Kind: EventKindException, Range: e.rng, Exception: e.exception})
		}
	}
	for _, b := range ix.bookings {
		if b.booking.Blocks() && b.rng.Intersects(rng) {
			events = append(events, Event{Kind: EventKindBooking, Range: b.rng, Booking: b.booking})
		}
	}
	return events
}

// EventsOn returns every booking and exception whose range contains the date,
// regardless of booking status. Concurrent events that violate the advisory
// non-overlap invariant are all returned, not hidden.
func (ix *Index) EventsOn(date time.Time) []Event {
	date = Day(date)
	var events []Event
	for _, b := range ix.bookings {
		if b.rng.Contains(date) {
			events = append(events, Event{Kind: EventKindBooking, Range: b.rng, Booking: b.booking})
		}
	}
	for _, e := range ix.exceptions {
		if e.rng.Contains(date) {
			events = append(events, Event{Kind: EventKindException, Range: e.rng, Exception: e.exception})
		}
	}
	return events
}

// eventCountOn counts events covering a date without allocating.
func (ix *Index) eventCountOn(date time.Time) int {
	n := 0
	for _, b := range ix.bookings {
		if b.rng.Contains(date) {
			n++
		}
	}
	for _, e := range ix.exceptions {
		if e.rng.Contains(date) {
			n++
		}
	}
	return n
}
