package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, customer_id, vehicle_id, rent_start_date, rent_end_date, total_price_cents, status, created_on, updated_on`

func (r *bookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.db, fn)
}

func (r *bookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (customer_id, vehicle_id, rent_start_date, rent_end_date, total_price_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now
	return q(ctx, r.db).QueryRowContext(ctx, query, b.CustomerID, b.VehicleID, b.RentStartDate, b.RentEndDate, b.TotalPriceCents, b.Status, now, now).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b := &domain.Booking{}
	err := q(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&b.ID, &b.CustomerID, &b.VehicleID, &b.RentStartDate, &b.RentEndDate, &b.TotalPriceCents, &b.Status, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	b.Status = b.Status.Normalize()
	return b, nil
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.BookingDetail, error) {
	query := `SELECT b.id, b.customer_id, b.vehicle_id, b.rent_start_date, b.rent_end_date, b.total_price_cents, b.status, b.created_on, b.updated_on,
	                 u.name, u.email, v.name, v.registration
	          FROM bookings b
	          JOIN users u ON u.id = b.customer_id
	          JOIN vehicles v ON v.id = b.vehicle_id
	          ORDER BY b.id DESC`
	rows, err := q(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.BookingDetail
	for rows.Next() {
		var d domain.BookingDetail
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.VehicleID, &d.RentStartDate, &d.RentEndDate, &d.TotalPriceCents, &d.Status, &d.CreatedOn, &d.UpdatedOn,
			&d.CustomerName, &d.CustomerEmail, &d.VehicleName, &d.VehicleRegistration); err != nil {
			return nil, err
		}
		d.Status = d.Status.Normalize()
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.BookingDetail, error) {
	query := `SELECT b.id, b.customer_id, b.vehicle_id, b.rent_start_date, b.rent_end_date, b.total_price_cents, b.status, b.created_on, b.updated_on,
	                 v.name, v.registration
	          FROM bookings b
	          JOIN vehicles v ON v.id = b.vehicle_id
	          WHERE b.customer_id = $1
	          ORDER BY b.id DESC`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.BookingDetail
	for rows.Next() {
		var d domain.BookingDetail
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.VehicleID, &d.RentStartDate, &d.RentEndDate, &d.TotalPriceCents, &d.Status, &d.CreatedOn, &d.UpdatedOn,
			&d.VehicleName, &d.VehicleRegistration); err != nil {
			return nil, err
		}
		d.Status = d.Status.Normalize()
		details = append(details, d)
	}
	return details, rows.Err()
}

// CountActiveOverlapping counts active bookings for the vehicle whose
// [start,end) interval overlaps the given one. Two intervals overlap unless
// one ends at or before the other starts.
func (r *bookingRepository) CountActiveOverlapping(ctx context.Context, vehicleID int32, start, end time.Time) (int32, error) {
	query := `SELECT COUNT(*) FROM bookings
	          WHERE vehicle_id = $1 AND status = $2
	            AND rent_start_date < $4 AND rent_end_date > $3`
	var count int32
	err := q(ctx, r.db).QueryRowContext(ctx, query, vehicleID, domain.BookingStatusActive, start, end).Scan(&count)
	return count, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, expected, next domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4
	          RETURNING ` + bookingColumns
	b := &domain.Booking{}
	err := q(ctx, r.db).QueryRowContext(ctx, query, next, time.Now(), id, expected).Scan(&b.ID, &b.CustomerID, &b.VehicleID, &b.RentStartDate, &b.RentEndDate, &b.TotalPriceCents, &b.Status, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		// The booking either does not exist or lost a race to another
		// terminal transition.
		return nil, domain.ErrBookingNotActive
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ExpireBefore(ctx context.Context, cutoff time.Time) ([]domain.ExpiredBooking, error) {
	query := `UPDATE bookings SET status = $1, updated_on = $2
	          WHERE status = $3 AND rent_end_date < $4
	          RETURNING id, vehicle_id`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, domain.BookingStatusReturned, time.Now(), domain.BookingStatusActive, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.ExpiredBooking
	for rows.Next() {
		var e domain.ExpiredBooking
		if err := rows.Scan(&e.BookingID, &e.VehicleID); err != nil {
			return nil, err
		}
		expired = append(expired, e)
	}
	return expired, rows.Err()
}
