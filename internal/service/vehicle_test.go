package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/service"
)

func TestVehicleService_AddVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminAddsVehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := service.NewVehicleService(vehicleRepo)
		vehicleRepo.On("Create", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusAvailable
		})).Return(nil).Once()

		v := &domain.Vehicle{Name: "Honda Civic", Registration: "KA-01-1234", DailyRateCents: 5000}
		err := svc.AddVehicle(ctx, adminIdent, v)
		assert.NoError(t, err)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("CustomerForbidden", func(t *testing.T) {
		svc := service.NewVehicleService(new(MockVehicleRepo))
		err := svc.AddVehicle(ctx, customerIdent, &domain.Vehicle{Name: "X", Registration: "Y", DailyRateCents: 1})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("RejectsNonPositiveRate", func(t *testing.T) {
		svc := service.NewVehicleService(new(MockVehicleRepo))
		err := svc.AddVehicle(ctx, adminIdent, &domain.Vehicle{Name: "X", Registration: "Y", DailyRateCents: 0})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestVehicleService_UpdateVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("PreservesAvailabilityFlag", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := service.NewVehicleService(vehicleRepo)

		stored := &domain.Vehicle{ID: 3, Status: domain.VehicleStatusBooked}
		vehicleRepo.On("GetByID", ctx, int32(3)).Return(stored, nil).Once()
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusBooked
		})).Return(nil).Once()

		// Caller tries to flip the flag; the stored value wins.
		v := &domain.Vehicle{ID: 3, Name: "Honda Civic", Registration: "KA-01-1234", DailyRateCents: 6000, Status: domain.VehicleStatusAvailable}
		err := svc.UpdateVehicle(ctx, adminIdent, v)
		assert.NoError(t, err)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := service.NewVehicleService(vehicleRepo)
		vehicleRepo.On("GetByID", ctx, int32(3)).Return(nil, domain.ErrVehicleNotFound).Once()

		err := svc.UpdateVehicle(ctx, adminIdent, &domain.Vehicle{ID: 3, DailyRateCents: 6000})
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}

func TestVehicleService_DeleteVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminDeletes", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := service.NewVehicleService(vehicleRepo)
		vehicleRepo.On("Delete", ctx, int32(3)).Return(nil).Once()

		assert.NoError(t, svc.DeleteVehicle(ctx, adminIdent, 3))
	})

	t.Run("CustomerForbidden", func(t *testing.T) {
		svc := service.NewVehicleService(new(MockVehicleRepo))
		err := svc.DeleteVehicle(ctx, customerIdent, 3)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
