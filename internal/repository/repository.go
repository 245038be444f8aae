package repository

import (
	"context"
	"time"

	"rentwheels-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	// GetByIDForUpdate locks the vehicle row for the rest of the enclosing
	// transaction. Only meaningful inside BookingRepository.WithTx.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	SetStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
}

type BookingRepository interface {
	// WithTx runs fn inside a database transaction. Repository calls made
	// with the context passed to fn join that transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	Insert(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.BookingDetail, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.BookingDetail, error)
	CountActiveOverlapping(ctx context.Context, vehicleID int32, start, end time.Time) (int32, error)
	// UpdateStatus transitions a booking only if it still has the expected
	// status, so racing writers lose cleanly instead of double-updating.
	UpdateStatus(ctx context.Context, id int32, expected, next domain.BookingStatus) (*domain.Booking, error)
	// ExpireBefore auto-returns every active booking whose end date is
	// strictly before cutoff and reports the affected rows.
	ExpireBefore(ctx context.Context, cutoff time.Time) ([]domain.ExpiredBooking, error)
}
