package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

type exceptionRepository struct {
	db *sql.DB
}

func NewExceptionRepository(db *sql.DB) repository.ExceptionRepository {
	return &exceptionRepository{db: db}
}

const exceptionColumns = `id, reference, vehicle_id, start_date, end_date, reason, notes, created_on`

func (r *exceptionRepository) Create(ctx context.Context, e *domain.AvailabilityException) error {
	query := `INSERT INTO availability_exceptions (reference, vehicle_id, start_date, end_date, reason, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.Reference, e.VehicleID, e.StartDate, e.EndDate, e.Reason, e.Notes, time.Now()).Scan(&e.ID)
}

func (r *exceptionRepository) GetByID(ctx context.Context, id int32) (*domain.AvailabilityException, error) {
	e := &domain.AvailabilityException{}
	query := `SELECT ` + exceptionColumns + ` FROM availability_exceptions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Reference, &e.VehicleID, &e.StartDate, &e.EndDate, &e.Reason, &e.Notes, &e.CreatedOn)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *exceptionRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM availability_exceptions WHERE id = $1`, id)
	return err
}

func (r *exceptionRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.AvailabilityException, error) {
	query := `SELECT ` + exceptionColumns + ` FROM availability_exceptions WHERE vehicle_id = $1 ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exceptions []domain.AvailabilityException
	for rows.Next() {
		var e domain.AvailabilityException
		if err := rows.Scan(&e.ID, &e.Reference, &e.VehicleID, &e.StartDate, &e.EndDate, &e.Reason, &e.Notes, &e.CreatedOn); err != nil {
			return nil, err
		}
		exceptions = append(exceptions, e)
	}
	return exceptions, rows.Err()
}
