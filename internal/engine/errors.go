package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange covers end-before-start ranges and zero or negative
	// durations where a positive duration is required. Never auto-corrected:
	// a bad range must fail loudly, not be clamped.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidRate is returned for a zero or negative daily rate.
	ErrInvalidRate = errors.New("invalid daily rate")

	// ErrInvalidInsuranceTier is returned for an unrecognized tier key.
	ErrInvalidInsuranceTier = errors.New("invalid insurance tier")
)

// RangeNotFreeError reports a requested booking range that collides with
// existing bookings or exceptions. Conflicts carries every colliding event so
// the caller can surface them to the user.
type RangeNotFreeError struct {
	Conflicts []Event
}

func (e *RangeNotFreeError) Error() string {
	return fmt.Sprintf("requested range is not free: %d conflicting event(s)", len(e.Conflicts))
}
