package service

import (
	"context"
	"strings"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, requester domain.Identity, v *domain.Vehicle) error {
	if requester.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.Registration) == "" {
		return domain.Validation("vehicle name and registration are required")
	}
	if v.DailyRateCents <= 0 {
		return domain.Validation("daily rate must be positive")
	}

	// New vehicles start available; the booking engine owns the flag from
	// then on.
	v.Status = domain.VehicleStatusAvailable
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, requester domain.Identity, v *domain.Vehicle) error {
	if requester.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if v.DailyRateCents <= 0 {
		return domain.Validation("daily rate must be positive")
	}

	// The availability flag is owned by the booking engine; carry the
	// stored value through updates.
	current, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	v.Status = current.Status
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, requester domain.Identity, id int32) error {
	if requester.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.vehicleRepo.Delete(ctx, id)
}
