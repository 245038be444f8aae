package service

import (
	"context"

	"rentwheels-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, requester domain.Identity, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, requester domain.Identity, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, requester domain.Identity, id int32) error
}

type BookingService interface {
	// CreateBooking books a vehicle for [startDate, endDate). Admins may set
	// customerID to book on behalf of a customer; for customer requesters the
	// booking is always their own regardless of customerID.
	CreateBooking(ctx context.Context, requester domain.Identity, vehicleID int32, startDate, endDate string, customerID int32) (*domain.Booking, error)
	// ListBookings runs the expiry sweep, then returns all bookings for
	// admins or the requester's own bookings for customers, newest first.
	ListBookings(ctx context.Context, requester domain.Identity) ([]domain.BookingDetail, error)
	// UpdateBookingStatus applies the one transition the requester's role
	// permits: customers cancel (before the rental starts), admins mark
	// returned. The vehicle is released on success.
	UpdateBookingStatus(ctx context.Context, requester domain.Identity, bookingID int32, requested domain.BookingStatus) (*domain.Booking, error)
	// ExpireOverdueBookings auto-returns every active booking whose end date
	// has passed and releases the affected vehicles. Idempotent.
	ExpireOverdueBookings(ctx context.Context) (int, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name, vehicleName, startDate, endDate string, totalPriceCents int32) error
	SendBookingCancellation(ctx context.Context, email, name, vehicleName string) error
	SendBookingReturned(ctx context.Context, email, name, vehicleName string) error
}
