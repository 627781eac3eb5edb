package service

import (
	"context"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/engine"
)

type BookingService interface {
	// QuoteBooking prices a candidate booking without persisting anything.
	QuoteBooking(ctx context.Context, vehicleID int32, startDate, endDate, insuranceTier string) (*engine.Quote, error)
	// CreateBookingRequest validates availability, prices the range, and
	// persists a pending booking. The availability check is a precondition,
	// not a guarantee: approval re-validates before commit.
	CreateBookingRequest(ctx context.Context, renterID, vehicleID int32, startDate, endDate, insuranceTier, notes string) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, ownerID, bookingID int32) (*domain.Booking, error)
	DeclineBooking(ctx context.Context, ownerID, bookingID int32, reason string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, renterID, bookingID int32) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, ownerID, bookingID int32) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	ListBookings(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type CalendarService interface {
	MonthGrid(ctx context.Context, vehicleID int32, year int, month time.Month) ([]engine.DayCell, error)
	WeekGrid(ctx context.Context, vehicleID int32, anchor time.Time) ([]engine.DayCell, error)
	EventsOn(ctx context.Context, vehicleID int32, date time.Time) ([]engine.Event, error)
	FleetDayBreakdown(ctx context.Context, ownerID int32, date time.Time) (engine.FleetDayBreakdown, error)
}

type StatisticsService interface {
	// VehicleStatistics evaluates the trailing window at the supplied instant;
	// now is never read from a system clock inside the engine.
	VehicleStatistics(ctx context.Context, vehicleID int32, now time.Time) (engine.Snapshot, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, ownerID int32, vehicle *domain.Vehicle) error
	ListVehicles(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
	ListMyVehicles(ctx context.Context, ownerID int32) ([]domain.Vehicle, error)
}

type ExceptionService interface {
	DeclareException(ctx context.Context, ownerID int32, exc *domain.AvailabilityException) error
	RemoveException(ctx context.Context, ownerID, exceptionID int32) error
	ListExceptions(ctx context.Context, vehicleID int32) ([]domain.AvailabilityException, error)
}
