package postgres_test

import (
	"context"
	"testing"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		booking := &domain.Booking{
			VehicleID:        2,
			RenterID:         3,
			StartDate:        "2025-03-15",
			EndDate:          "2025-03-20",
			InsuranceTier:    "basic",
			TotalAmountCents: 22221,
			Status:           domain.BookingStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(booking.VehicleID, booking.RenterID, booking.StartDate, booking.EndDate, booking.InsuranceTier, booking.TotalAmountCents, booking.Status, "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, booking)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), booking.ID)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "vehicle_id", "renter_id", "start_date", "end_date", "insurance_tier", "total_amount_cents", "status", "rejection_reason", "notes", "created_on", "updated_on"}).
			AddRow(1, 2, 3, "2025-03-15", "2025-03-20", "basic", 22221, "CONFIRMED", "", "", "2025-03-01", "2025-03-01")

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		booking, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, booking)
		assert.Equal(t, int32(1), booking.ID)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	})
}

func TestBookingRepository_ListByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Returns all statuses", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "vehicle_id", "renter_id", "start_date", "end_date", "insurance_tier", "total_amount_cents", "status", "rejection_reason", "notes", "created_on", "updated_on"}).
			AddRow(1, 2, 3, "2025-03-15", "2025-03-20", "basic", 22221, "CONFIRMED", "", "", "2025-03-01", "2025-03-01").
			AddRow(2, 2, 4, "2025-04-01", "2025-04-03", "standard", 16000, "CANCELLED", "", "", "2025-03-05", "2025-03-06")

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE vehicle_id = \\$1 ORDER BY start_date").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		bookings, err := repo.ListByVehicle(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, domain.BookingStatusCancelled, bookings[1].Status)
	})
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Status transition", func(t *testing.T) {
		booking := &domain.Booking{
			ID:     1,
			Status: domain.BookingStatusDeclined,
		}

		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(booking.Status, "", "", sqlmock.AnyArg(), booking.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, booking)
		assert.NoError(t, err)
	})
}
