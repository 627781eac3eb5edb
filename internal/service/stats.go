package service

import (
	"context"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

type statisticsService struct {
	bookingRepo   repository.BookingRepository
	exceptionRepo repository.ExceptionRepository
}

func NewStatisticsService(
	bookingRepo repository.BookingRepository,
	exceptionRepo repository.ExceptionRepository,
) StatisticsService {
	return &statisticsService{
		bookingRepo:   bookingRepo,
		exceptionRepo: exceptionRepo,
	}
}

func (s *statisticsService) VehicleStatistics(ctx context.Context, vehicleID int32, now time.Time) (engine.Snapshot, error) {
	bookings, err := s.bookingRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return engine.Snapshot{}, err
	}
	exceptions, err := s.exceptionRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return engine.Snapshot{}, err
	}
	return engine.Statistics(bookings, exceptions, now)
}
