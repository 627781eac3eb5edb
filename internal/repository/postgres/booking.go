package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, vehicle_id, renter_id, start_date, end_date, insurance_tier, total_amount_cents, status, rejection_reason, notes, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (vehicle_id, renter_id, start_date, end_date, insurance_tier, total_amount_cents, status, rejection_reason, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.VehicleID, b.RenterID, b.StartDate, b.EndDate, b.InsuranceTier, b.TotalAmountCents, b.Status, b.RejectionReason, b.Notes, time.Now(), time.Now()).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.VehicleID, &b.RenterID, &b.StartDate, &b.EndDate, &b.InsuranceTier, &b.TotalAmountCents, &b.Status, &b.RejectionReason, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update only ever transitions status and mutable annotations. Bookings are
// never deleted and their date range never changes after creation.
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, rejection_reason=$2, notes=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, b.Status, b.RejectionReason, b.Notes, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE vehicle_id = $1 ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.VehicleID, &b.RenterID, &b.StartDate, &b.EndDate, &b.InsuranceTier, &b.TotalAmountCents, &b.Status, &b.RejectionReason, &b.Notes, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE renter_id = $1`

	args := []interface{}{renterID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.VehicleID, &b.RenterID, &b.StartDate, &b.EndDate, &b.InsuranceTier, &b.TotalAmountCents, &b.Status, &b.RejectionReason, &b.Notes, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}
