package service

import (
	"context"
	"errors"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.DailyRateCents <= 0 {
		return errors.New("daily rate must be positive")
	}
	if vehicle.Status == "" {
		// New listings await agent review before going live.
		vehicle.Status = domain.VehicleStatusPending
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, ownerID int32, vehicle *domain.Vehicle) error {
	existing, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrUnauthorized
	}
	if vehicle.DailyRateCents <= 0 {
		return errors.New("daily rate must be positive")
	}
	vehicle.OwnerID = existing.OwnerID
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) ListVehicles(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.List(ctx, status, page, pageSize)
}

func (s *vehicleService) ListMyVehicles(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByOwner(ctx, ownerID)
}
