package service_test

import (
	"context"
	"testing"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingFixtures() (*MockBookingRepo, *MockVehicleRepo, *MockExceptionRepo, service.BookingService) {
	bookingRepo := new(MockBookingRepo)
	vehicleRepo := new(MockVehicleRepo)
	exceptionRepo := new(MockExceptionRepo)
	svc := service.NewBookingService(bookingRepo, vehicleRepo, exceptionRepo)
	return bookingRepo, vehicleRepo, exceptionRepo, svc
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:                   2,
		OwnerID:              10,
		Make:                 "Toyota",
		Model:                "Vios",
		DailyRateCents:       4500,
		SecurityDepositCents: 50000,
		Status:               domain.VehicleStatusAvailable,
	}
}

func TestBookingService_CreateBookingRequest(t *testing.T) {
	ctx := context.Background()
	renterID := int32(1)

	t.Run("Success", func(t *testing.T) {
		bookingRepo, vehicleRepo, exceptionRepo, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.Booking{}, nil)
		exceptionRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.AvailabilityException{}, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		res, err := svc.CreateBookingRequest(ctx, renterID, 2, "2025-04-01", "2025-04-05", "basic", "")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
		assert.Equal(t, int32(22221), res.TotalAmountCents)
		assert.Equal(t, "2025-04-01", res.StartDate)
		assert.Equal(t, "2025-04-05", res.EndDate)
	})

	t.Run("Conflicting booking blocks the request", func(t *testing.T) {
		bookingRepo, vehicleRepo, exceptionRepo, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.Booking{
			{ID: 5, VehicleID: 2, StartDate: "2025-04-03", EndDate: "2025-04-08", Status: domain.BookingStatusConfirmed},
		}, nil)
		exceptionRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.AvailabilityException{}, nil)

		_, err := svc.CreateBookingRequest(ctx, renterID, 2, "2025-04-01", "2025-04-05", "basic", "")
		var notFree *engine.RangeNotFreeError
		require.ErrorAs(t, err, &notFree)
		assert.Len(t, notFree.Conflicts, 1)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Pending booking also blocks", func(t *testing.T) {
		bookingRepo, vehicleRepo, exceptionRepo, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.Booking{
			{ID: 6, VehicleID: 2, StartDate: "2025-04-04", EndDate: "2025-04-04", Status: domain.BookingStatusPending},
		}, nil)
		exceptionRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.AvailabilityException{}, nil)

		_, err := svc.CreateBookingRequest(ctx, renterID, 2, "2025-04-01", "2025-04-05", "basic", "")
		var notFree *engine.RangeNotFreeError
		assert.ErrorAs(t, err, &notFree)
	})

	t.Run("Invalid range is rejected before any write", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)

		_, err := svc.CreateBookingRequest(ctx, renterID, 2, "2025-04-05", "2025-04-01", "basic", "")
		assert.ErrorIs(t, err, engine.ErrInvalidRange)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unlisted vehicle is closed for booking", func(t *testing.T) {
		_, vehicleRepo, _, svc := newBookingFixtures()
		unlisted := testVehicle()
		unlisted.Status = domain.VehicleStatusUnlisted
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(unlisted, nil)

		_, err := svc.CreateBookingRequest(ctx, renterID, 2, "2025-04-01", "2025-04-05", "basic", "")
		assert.ErrorIs(t, err, service.ErrVehicleClosed)
	})
}

func TestBookingService_QuoteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Quote mirrors the engine breakdown", func(t *testing.T) {
		_, vehicleRepo, _, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)

		quote, err := svc.QuoteBooking(ctx, 2, "2025-04-01", "2025-04-05", "basic")
		require.NoError(t, err)
		assert.Equal(t, 4, quote.Days)
		assert.Equal(t, int64(18000), quote.SubtotalCents)
		assert.Equal(t, int64(22221), quote.TotalCents)
		assert.Equal(t, int64(50000), quote.SecurityDepositCents)
	})

	t.Run("Unknown tier", func(t *testing.T) {
		_, vehicleRepo, _, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)

		_, err := svc.QuoteBooking(ctx, 2, "2025-04-01", "2025-04-05", "gold")
		assert.ErrorIs(t, err, engine.ErrInvalidInsuranceTier)
	})
}

func TestBookingService_ApproveBooking(t *testing.T) {
	ctx := context.Background()
	ownerID := int32(10)

	pending := func() *domain.Booking {
		return &domain.Booking{
			ID: 7, VehicleID: 2, RenterID: 1,
			StartDate: "2025-04-01", EndDate: "2025-04-05",
			Status: domain.BookingStatusPending,
		}
	}

	t.Run("Success re-validates and confirms", func(t *testing.T) {
		bookingRepo, vehicleRepo, exceptionRepo, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(pending(), nil)
		bookingRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.Booking{*pending()}, nil)
		exceptionRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.AvailabilityException{}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		res, err := svc.ApproveBooking(ctx, ownerID, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	})

	t.Run("Competing booking surfaced at commit time", func(t *testing.T) {
		bookingRepo, vehicleRepo, exceptionRepo, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(pending(), nil)
		// A second request was confirmed between precondition and commit.
		bookingRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.Booking{
			*pending(),
			{ID: 8, VehicleID: 2, StartDate: "2025-04-04", EndDate: "2025-04-06", Status: domain.BookingStatusConfirmed},
		}, nil)
		exceptionRepo.On("ListByVehicle", ctx, int32(2)).Return([]domain.AvailabilityException{}, nil)

		_, err := svc.ApproveBooking(ctx, ownerID, 7)
		var notFree *engine.RangeNotFreeError
		require.ErrorAs(t, err, &notFree)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Only the vehicle owner may approve", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, svc := newBookingFixtures()
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(pending(), nil)

		_, err := svc.ApproveBooking(ctx, int32(99), 7)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("Non-pending booking cannot be approved", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, svc := newBookingFixtures()
		confirmed := pending()
		confirmed.Status = domain.BookingStatusConfirmed
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(testVehicle(), nil)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(confirmed, nil)

		_, err := svc.ApproveBooking(ctx, ownerID, 7)
		assert.ErrorIs(t, err, service.ErrBadTransition)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancellation is a status transition", func(t *testing.T) {
		bookingRepo, _, _, svc := newBookingFixtures()
		booking := &domain.Booking{ID: 7, VehicleID: 2, RenterID: 1, Status: domain.BookingStatusConfirmed}
		bookingRepo.On("GetByID", ctx, int32(7)).Return(booking, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		res, err := svc.CancelBooking(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, res.Status)
	})

	t.Run("Only the renter may cancel", func(t *testing.T) {
		bookingRepo, _, _, svc := newBookingFixtures()
		booking := &domain.Booking{ID: 7, VehicleID: 2, RenterID: 1, Status: domain.BookingStatusPending}
		bookingRepo.On("GetByID", ctx, int32(7)).Return(booking, nil)

		_, err := svc.CancelBooking(ctx, 99, 7)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("Completed booking cannot be cancelled", func(t *testing.T) {
		bookingRepo, _, _, svc := newBookingFixtures()
		booking := &domain.Booking{ID: 7, VehicleID: 2, RenterID: 1, Status: domain.BookingStatusCompleted}
		bookingRepo.On("GetByID", ctx, int32(7)).Return(booking, nil)

		_, err := svc.CancelBooking(ctx, 1, 7)
		assert.ErrorIs(t, err, service.ErrBadTransition)
	})
}
