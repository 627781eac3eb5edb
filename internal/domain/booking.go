package domain

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusDeclined   BookingStatus = "DECLINED"
)

// Booking is a renter's reservation of a vehicle over an inclusive [start,end]
// date span. Bookings are never deleted; cancellation and rejection are status
// transitions so the history stays auditable.
type Booking struct {
	ID               int32         `json:"id"`
	VehicleID        int32         `json:"vehicle_id"`
	RenterID         int32         `json:"renter_id"`
	StartDate        string        `json:"start_date"` // yyyy-mm-dd, inclusive
	EndDate          string        `json:"end_date"`   // yyyy-mm-dd, inclusive
	InsuranceTier    string        `json:"insurance_tier"`
	TotalAmountCents int32         `json:"total_amount_cents"`
	Status           BookingStatus `json:"status"`
	RejectionReason  string        `json:"rejection_reason,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	CreatedOn        string        `json:"created_on"`
	UpdatedOn        string        `json:"updated_on"`
}

// Blocks reports whether the booking occupies its date range for availability
// purposes. Pending requests block provisionally so two renters cannot both be
// accepted for the same days.
func (b *Booking) Blocks() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress:
		return true
	}
	return false
}
