package repository

import (
	"context"

	"github.com/joshbaje/Drively-sub000/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// ListByVehicle returns every booking of the vehicle regardless of status;
	// the engine decides which statuses block.
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Booking, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.AvailabilityException) error
	GetByID(ctx context.Context, id int32) (*domain.AvailabilityException, error)
	Delete(ctx context.Context, id int32) error
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.AvailabilityException, error)
}
