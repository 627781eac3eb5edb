package domain

type ExceptionReason string

const (
	ExceptionReasonMaintenance ExceptionReason = "MAINTENANCE"
	ExceptionReasonPersonalUse ExceptionReason = "PERSONAL_USE"
	ExceptionReasonOther       ExceptionReason = "OTHER"
)

// AvailabilityException is an owner-declared unavailability window, independent
// of any renter booking. Exception days are unavailable regardless of booking
// state on the same day.
type AvailabilityException struct {
	ID        int32           `json:"id"`
	Reference string          `json:"reference"`
	VehicleID int32           `json:"vehicle_id"`
	StartDate string          `json:"start_date"` // yyyy-mm-dd, inclusive
	EndDate   string          `json:"end_date"`   // yyyy-mm-dd, inclusive
	Reason    ExceptionReason `json:"reason"`
	Notes     string          `json:"notes,omitempty"`
	CreatedOn string          `json:"created_on"`
}
