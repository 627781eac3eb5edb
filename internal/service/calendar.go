package service

import (
	"context"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

type calendarService struct {
	bookingRepo   repository.BookingRepository
	vehicleRepo   repository.VehicleRepository
	exceptionRepo repository.ExceptionRepository
}

func NewCalendarService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	exceptionRepo repository.ExceptionRepository,
) CalendarService {
	return &calendarService{
		bookingRepo:   bookingRepo,
		vehicleRepo:   vehicleRepo,
		exceptionRepo: exceptionRepo,
	}
}

// indexFor fetches fresh collections and builds the availability index. The
// grid is a pure recomputation on every call; mutations elsewhere are picked
// up by refetching, never by patching a cached grid.
func (s *calendarService) indexFor(ctx context.Context, vehicleID int32) (*engine.Index, error) {
	bookings, err := s.bookingRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.exceptionRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return engine.NewIndex(bookings, exceptions)
}

func (s *calendarService) MonthGrid(ctx context.Context, vehicleID int32, year int, month time.Month) ([]engine.DayCell, error) {
	ix, err := s.indexFor(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return ix.MonthGrid(year, month), nil
}

func (s *calendarService) WeekGrid(ctx context.Context, vehicleID int32, anchor time.Time) ([]engine.DayCell, error) {
	ix, err := s.indexFor(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return ix.WeekGrid(anchor), nil
}

func (s *calendarService) EventsOn(ctx context.Context, vehicleID int32, date time.Time) ([]engine.Event, error) {
	ix, err := s.indexFor(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return ix.EventsOn(date), nil
}

func (s *calendarService) FleetDayBreakdown(ctx context.Context, ownerID int32, date time.Time) (engine.FleetDayBreakdown, error) {
	vehicles, err := s.vehicleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return engine.FleetDayBreakdown{}, err
	}

	indexes := make(map[int32]*engine.Index, len(vehicles))
	for _, v := range vehicles {
		ix, err := s.indexFor(ctx, v.ID)
		if err != nil {
			return engine.FleetDayBreakdown{}, err
		}
		indexes[v.ID] = ix
	}
	return engine.FleetBreakdown(date, vehicles, indexes), nil
}
