package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusReturned  BookingStatus = "returned"

	// BookingStatusLegacyCompleted appears in rows written by an earlier
	// schema revision. It is normalized to "returned" on every read.
	BookingStatusLegacyCompleted BookingStatus = "completed"
)

// Normalize maps legacy status values onto the closed status set.
func (s BookingStatus) Normalize() BookingStatus {
	if s == BookingStatusLegacyCompleted {
		return BookingStatusReturned
	}
	return s
}

// Terminal reports whether no further transition out of s is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusReturned
}

type Booking struct {
	ID         int32         `json:"id"`
	CustomerID int32         `json:"customerId"`
	VehicleID  int32         `json:"vehicleId"`
	// Rental dates are calendar dates; the time component is always midnight UTC.
	RentStartDate   time.Time     `json:"rentStartDate"`
	RentEndDate     time.Time     `json:"rentEndDate"`
	TotalPriceCents int32         `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	CreatedOn       time.Time     `json:"createdOn"`
	UpdatedOn       time.Time     `json:"updatedOn"`
}

// BookingDetail is a booking joined with display snapshots of its customer
// and vehicle. Customer fields are only populated for admin listings.
type BookingDetail struct {
	Booking
	CustomerName        string `json:"customerName,omitempty"`
	CustomerEmail       string `json:"customerEmail,omitempty"`
	VehicleName         string `json:"vehicleName"`
	VehicleRegistration string `json:"vehicleRegistration"`
}

// ExpiredBooking identifies a booking auto-returned by the expiry sweep,
// along with the vehicle whose availability must be released.
type ExpiredBooking struct {
	BookingID int32
	VehicleID int32
}
