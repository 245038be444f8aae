package service

import (
	"context"

	"rentwheels-backend/internal/clock"
	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
	"rentwheels-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	clock       clock.Clock
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	clk clock.Clock,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		clock:       clk,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, requester domain.Identity, vehicleID int32, startDate, endDate string, customerID int32) (*domain.Booking, error) {
	if !requester.Valid() {
		return nil, domain.ErrUnauthorized
	}
	if vehicleID <= 0 {
		return nil, domain.Validation("vehicle id is required")
	}
	if startDate == "" || endDate == "" {
		return nil, domain.Validation("rent start and end dates are required")
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, domain.Validation(err.Error())
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, domain.Validation(err.Error())
	}
	if !end.After(start) {
		return nil, domain.Validation("rent end date must be after start date")
	}

	// Customers always book for themselves; only admins may book on behalf
	// of another customer.
	bookFor := requester.UserID
	if requester.Role == domain.RoleAdmin && customerID > 0 {
		if _, err := s.userRepo.GetByID(ctx, customerID); err != nil {
			return nil, err
		}
		bookFor = customerID
	}

	booking := &domain.Booking{
		CustomerID:    bookFor,
		VehicleID:     vehicleID,
		RentStartDate: start,
		RentEndDate:   end,
		Status:        domain.BookingStatusActive,
	}

	// The availability check, overlap check, insert and vehicle update form
	// one critical section per vehicle: the row lock taken by
	// GetByIDForUpdate serializes concurrent creates for the same vehicle.
	err = s.bookingRepo.WithTx(ctx, func(txCtx context.Context) error {
		vehicle, err := s.vehicleRepo.GetByIDForUpdate(txCtx, vehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status != domain.VehicleStatusAvailable {
			return domain.ErrVehicleUnavailable
		}

		overlapping, err := s.bookingRepo.CountActiveOverlapping(txCtx, vehicleID, start, end)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return domain.ErrDateOverlap
		}

		booking.TotalPriceCents = utils.RentalPriceCents(start, end, vehicle.DailyRateCents)

		if err := s.bookingRepo.Insert(txCtx, booking); err != nil {
			return err
		}
		return s.vehicleRepo.SetStatus(txCtx, vehicleID, domain.VehicleStatusBooked)
	})
	if err != nil {
		return nil, err
	}

	s.notifyBooking(ctx, booking, startDate, endDate)
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, requester domain.Identity) ([]domain.BookingDetail, error) {
	if !requester.Valid() {
		return nil, domain.ErrUnauthorized
	}

	// Reconcile time-based expiry before the read so listings never show a
	// stale active booking past its end date.
	if _, err := s.ExpireOverdueBookings(ctx); err != nil {
		return nil, err
	}

	if requester.Role == domain.RoleAdmin {
		return s.bookingRepo.ListAll(ctx)
	}
	return s.bookingRepo.ListByCustomer(ctx, requester.UserID)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, requester domain.Identity, bookingID int32, requested domain.BookingStatus) (*domain.Booking, error) {
	if !requester.Valid() {
		return nil, domain.ErrUnauthorized
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanActOn(requester.Role, booking.CustomerID, requester.UserID) {
		return nil, domain.ErrForbidden
	}

	switch requester.Role {
	case domain.RoleCustomer:
		if requested != domain.BookingStatusCancelled {
			return nil, domain.InvalidTransition("customers may only cancel a booking")
		}
		if booking.Status != domain.BookingStatusActive {
			return nil, domain.ErrBookingNotActive
		}
		today := utils.DateOnly(s.clock.Now())
		if !today.Before(booking.RentStartDate) {
			return nil, domain.InvalidTransition("cannot cancel after rental has started")
		}
	case domain.RoleAdmin:
		if requested != domain.BookingStatusReturned {
			return nil, domain.InvalidTransition("admins may only mark a booking as returned")
		}
		if booking.Status != domain.BookingStatusActive {
			return nil, domain.ErrBookingNotActive
		}
	default:
		return nil, domain.ErrForbidden
	}

	var updated *domain.Booking
	err = s.bookingRepo.WithTx(ctx, func(txCtx context.Context) error {
		// Conditioned on the booking still being active, so a concurrent
		// sweep or update loses the race as a no-op.
		b, err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.BookingStatusActive, requested)
		if err != nil {
			return err
		}
		updated = b
		return s.vehicleRepo.SetStatus(txCtx, booking.VehicleID, domain.VehicleStatusAvailable)
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, updated)
	return updated, nil
}

func (s *bookingService) ExpireOverdueBookings(ctx context.Context) (int, error) {
	today := utils.DateOnly(s.clock.Now())

	var expired []domain.ExpiredBooking
	err := s.bookingRepo.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		expired, err = s.bookingRepo.ExpireBefore(txCtx, today)
		if err != nil {
			return err
		}
		for _, e := range expired {
			if err := s.vehicleRepo.SetStatus(txCtx, e.VehicleID, domain.VehicleStatusAvailable); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(expired) > 0 {
		logger.Debug("Expired overdue bookings", "count", len(expired))
	}
	return len(expired), nil
}

// Email notifications are best effort and never fail the booking operation.

func (s *bookingService) notifyBooking(ctx context.Context, b *domain.Booking, startDate, endDate string) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.userRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		return
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err != nil {
		return
	}
	if err := s.emailSvc.SendBookingConfirmation(ctx, customer.Email, customer.Name, vehicle.Name, startDate, endDate, b.TotalPriceCents); err != nil {
		logger.Warn("Failed to send booking confirmation", "booking_id", b.ID, "error", err)
	}
}

func (s *bookingService) notifyStatusChange(ctx context.Context, b *domain.Booking) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.userRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		return
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err != nil {
		return
	}

	switch b.Status {
	case domain.BookingStatusCancelled:
		err = s.emailSvc.SendBookingCancellation(ctx, customer.Email, customer.Name, vehicle.Name)
	case domain.BookingStatusReturned:
		err = s.emailSvc.SendBookingReturned(ctx, customer.Email, customer.Name, vehicle.Name)
	default:
		return
	}
	if err != nil {
		logger.Warn("Failed to send booking status notification", "booking_id", b.ID, "status", b.Status, "error", err)
	}
}
