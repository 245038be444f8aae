package postgres

import (
	"database/sql"

	"rentwheels-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		VehicleRepository: NewVehicleRepository(db),
		BookingRepository: NewBookingRepository(db),
	}
}
