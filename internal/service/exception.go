package service

import (
	"context"
	"fmt"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/logger"
	"github.com/joshbaje/Drively-sub000/internal/repository"

	"github.com/google/uuid"
)

type exceptionService struct {
	exceptionRepo repository.ExceptionRepository
	vehicleRepo   repository.VehicleRepository
}

func NewExceptionService(
	exceptionRepo repository.ExceptionRepository,
	vehicleRepo repository.VehicleRepository,
) ExceptionService {
	return &exceptionService{
		exceptionRepo: exceptionRepo,
		vehicleRepo:   vehicleRepo,
	}
}

func (s *exceptionService) DeclareException(ctx context.Context, ownerID int32, exc *domain.AvailabilityException) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, exc.VehicleID)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != ownerID {
		return ErrUnauthorized
	}

	rng, err := engine.ParseDateRange(exc.StartDate, exc.EndDate)
	if err != nil {
		return err
	}

	switch exc.Reason {
	case domain.ExceptionReasonMaintenance, domain.ExceptionReasonPersonalUse, domain.ExceptionReasonOther:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReason, exc.Reason)
	}

	// Exceptions may coexist with bookings on the same days, but not with
	// each other.
	existing, err := s.exceptionRepo.ListByVehicle(ctx, exc.VehicleID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		otherRng, err := engine.ParseDateRange(other.StartDate, other.EndDate)
		if err != nil {
			return fmt.Errorf("availability exception %d: %w", other.ID, err)
		}
		if rng.Intersects(otherRng) {
			return fmt.Errorf("%w: %s (%s..%s)",
				ErrExceptionOverlap, other.Reference, other.StartDate, other.EndDate)
		}
	}

	exc.Reference = uuid.NewString()
	if err := s.exceptionRepo.Create(ctx, exc); err != nil {
		return err
	}
	logger.Info("availability exception declared",
		"exception_id", exc.ID, "vehicle_id", exc.VehicleID,
		"start", exc.StartDate, "end", exc.EndDate, "reason", exc.Reason)
	return nil
}

func (s *exceptionService) RemoveException(ctx context.Context, ownerID, exceptionID int32) error {
	exc, err := s.exceptionRepo.GetByID(ctx, exceptionID)
	if err != nil {
		return err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, exc.VehicleID)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != ownerID {
		return ErrUnauthorized
	}
	return s.exceptionRepo.Delete(ctx, exceptionID)
}

func (s *exceptionService) ListExceptions(ctx context.Context, vehicleID int32) ([]domain.AvailabilityException, error) {
	return s.exceptionRepo.ListByVehicle(ctx, vehicleID)
}
