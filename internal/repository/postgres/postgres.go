package postgres

import (
	"database/sql"

	"github.com/joshbaje/Drively-sub000/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.BookingRepository
	repository.ExceptionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		VehicleRepository:   NewVehicleRepository(db),
		BookingRepository:   NewBookingRepository(db),
		ExceptionRepository: NewExceptionRepository(db),
	}
}
