package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, name, model, registration, daily_rate_cents, status, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (name, model, registration, daily_rate_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return q(ctx, r.db).QueryRowContext(ctx, query, v.Name, v.Model, v.Registration, v.DailyRateCents, v.Status, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return r.scanVehicle(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate takes a row lock on the vehicle so the availability
// check and reservation in the enclosing transaction cannot interleave
// with a concurrent create for the same vehicle.
func (r *vehicleRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 FOR UPDATE`
	return r.scanVehicle(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Model, &v.Registration, &v.DailyRateCents, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, model=$2, registration=$3, daily_rate_cents=$4, status=$5, updated_on=$6 WHERE id=$7`
	res, err := q(ctx, r.db).ExecContext(ctx, query, v.Name, v.Model, v.Registration, v.DailyRateCents, v.Status, time.Now(), v.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) SetStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `UPDATE vehicles SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) scanVehicle(row *sql.Row) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.Name, &v.Model, &v.Registration, &v.DailyRateCents, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
