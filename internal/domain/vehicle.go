package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusUnlisted    VehicleStatus = "UNLISTED"
	VehicleStatusPending     VehicleStatus = "PENDING"
)

type VehicleTransmission string

const (
	VehicleTransmissionAutomatic VehicleTransmission = "AUTOMATIC"
	VehicleTransmissionManual    VehicleTransmission = "MANUAL"
)

type Vehicle struct {
	ID                   int32               `json:"id"`
	OwnerID              int32               `json:"owner_id"`
	Make                 string              `json:"make"`
	Model                string              `json:"model"`
	Year                 int32               `json:"year"`
	PlateNumber          string              `json:"plate_number"`
	Transmission         VehicleTransmission `json:"transmission"`
	Seats                int32               `json:"seats"`
	DailyRateCents       int32               `json:"daily_rate_cents"`
	SecurityDepositCents int32               `json:"security_deposit_cents"`
	Location             string              `json:"location"`
	Status               VehicleStatus       `json:"status"`
	CreatedOn            string              `json:"created_on"`
	UpdatedOn            string              `json:"updated_on"`
}
