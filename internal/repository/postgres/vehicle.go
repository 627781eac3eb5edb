package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, owner_id, make, model, year, plate_number, transmission, seats, daily_rate_cents, security_deposit_cents, location, status, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (owner_id, make, model, year, plate_number, transmission, seats, daily_rate_cents, security_deposit_cents, location, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.OwnerID, v.Make, v.Model, v.Year, v.PlateNumber, v.Transmission, v.Seats, v.DailyRateCents, v.SecurityDepositCents, v.Location, v.Status, time.Now(), time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.PlateNumber, &v.Transmission, &v.Seats, &v.DailyRateCents, &v.SecurityDepositCents, &v.Location, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET make=$1, model=$2, year=$3, plate_number=$4, transmission=$5, seats=$6, daily_rate_cents=$7, security_deposit_cents=$8, location=$9, status=$10, updated_on=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query, v.Make, v.Model, v.Year, v.PlateNumber, v.Transmission, v.Seats, v.DailyRateCents, v.SecurityDepositCents, v.Location, v.Status, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`

	var args []interface{}
	argIdx := 1
	if status != "" {
		query += " WHERE status = $1"
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

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.PlateNumber, &v.Transmission, &v.Seats, &v.DailyRateCents, &v.SecurityDepositCents, &v.Location, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.PlateNumber, &v.Transmission, &v.Seats, &v.DailyRateCents, &v.SecurityDepositCents, &v.Location, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
