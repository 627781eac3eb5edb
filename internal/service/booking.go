package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/logger"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrVehicleClosed    = errors.New("vehicle is not open for booking")
	ErrBadTransition    = errors.New("booking status does not allow this transition")
	ErrInvalidReason    = errors.New("unknown exception reason")
	ErrExceptionOverlap = errors.New("exception overlaps an existing exception")
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	vehicleRepo   repository.VehicleRepository
	exceptionRepo repository.ExceptionRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	exceptionRepo repository.ExceptionRepository,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		vehicleRepo:   vehicleRepo,
		exceptionRepo: exceptionRepo,
	}
}

// indexFor rebuilds the availability index from fresh collections. Every call
// recomputes; nothing is cached across mutations.
func (s *bookingService) indexFor(ctx context.Context, vehicleID int32) (*engine.Index, error) {
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

func (s *bookingService) QuoteBooking(ctx context.Context, vehicleID int32, startDate, endDate, insuranceTier string) (*engine.Quote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	rng, err := engine.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	quote, err := engine.ComputeQuote(engine.QuoteInput{
		DailyRateCents:       int64(vehicle.DailyRateCents),
		StartDate:            rng.Start,
		EndDate:              rng.End,
		Tier:                 engine.InsuranceTier(insuranceTier),
		SecurityDepositCents: int64(vehicle.SecurityDepositCents),
	})
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *bookingService) CreateBookingRequest(ctx context.Context, renterID, vehicleID int32, startDate, endDate, insuranceTier, notes string) (*domain.Booking, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	switch vehicle.Status {
	case domain.VehicleStatusUnlisted, domain.VehicleStatusPending:
		return nil, ErrVehicleClosed
	}

	rng, err := engine.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	ix, err := s.indexFor(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if err := ix.CheckRangeFree(rng.Start, rng.End); err != nil {
		return nil, err
	}

	quote, err := engine.ComputeQuote(engine.QuoteInput{
		DailyRateCents:       int64(vehicle.DailyRateCents),
		StartDate:            rng.Start,
		EndDate:              rng.End,
		Tier:                 engine.InsuranceTier(insuranceTier),
		SecurityDepositCents: int64(vehicle.SecurityDepositCents),
	})
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		VehicleID:        vehicleID,
		RenterID:         renterID,
		StartDate:        rng.Start.Format("2006-01-02"),
		EndDate:          rng.End.Format("2006-01-02"),
		InsuranceTier:    insuranceTier,
		TotalAmountCents: int32(quote.TotalCents),
		Status:           domain.BookingStatusPending,
		Notes:            notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking request created",
		"booking_id", booking.ID, "vehicle_id", vehicleID, "renter_id", renterID,
		"start", booking.StartDate, "end", booking.EndDate, "total_cents", booking.TotalAmountCents)
	return booking, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, ownerID, bookingID int32) (*domain.Booking, error) {
	booking, vehicle, err := s.getOwned(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: %s is not pending", ErrBadTransition, booking.Status)
	}

	// Re-validate at commit time: the precondition check at request creation
	// is not atomic with approval.
	others, err := s.bookingRepo.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	competing := others[:0]
	for _, b := range others {
		if b.ID != booking.ID {
			competing = append(competing, b)
		}
	}
	exceptions, err := s.exceptionRepo.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	ix, err := engine.NewIndex(competing, exceptions)
	if err != nil {
		return nil, err
	}
	rng, err := engine.ParseDateRange(booking.StartDate, booking.EndDate)
	if err != nil {
		return nil, err
	}
	if err := ix.CheckRangeFree(rng.Start, rng.End); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusConfirmed
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("booking approved", "booking_id", booking.ID, "owner_id", ownerID)
	return booking, nil
}

func (s *bookingService) DeclineBooking(ctx context.Context, ownerID, bookingID int32, reason string) (*domain.Booking, error) {
	booking, _, err := s.getOwned(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: %s is not pending", ErrBadTransition, booking.Status)
	}

	booking.Status = domain.BookingStatusDeclined
	booking.RejectionReason = reason
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("booking declined", "booking_id", booking.ID, "owner_id", ownerID)
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, renterID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	switch booking.Status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed:
	default:
		return nil, fmt.Errorf("%w: cannot cancel a %s booking", ErrBadTransition, booking.Status)
	}

	// Cancellation is a status transition, never a delete.
	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("booking cancelled", "booking_id", booking.ID, "renter_id", renterID)
	return booking, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, ownerID, bookingID int32) (*domain.Booking, error) {
	booking, _, err := s.getOwned(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}
	switch booking.Status {
	case domain.BookingStatusConfirmed, domain.BookingStatusInProgress:
	default:
		return nil, fmt.Errorf("%w: cannot complete a %s booking", ErrBadTransition, booking.Status)
	}

	booking.Status = domain.BookingStatusCompleted
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("booking completed", "booking_id", booking.ID, "owner_id", ownerID)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID == userID {
		return booking, nil
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByRenter(ctx, renterID, status, page, pageSize)
}

// getOwned loads a booking and its vehicle, requiring the caller to own the
// vehicle.
func (s *bookingService) getOwned(ctx context.Context, ownerID, bookingID int32) (*domain.Booking, *domain.Vehicle, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	if vehicle.OwnerID != ownerID {
		return nil, nil, ErrUnauthorized
	}
	return booking, vehicle, nil
}
