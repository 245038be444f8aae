package http

import (
	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/utils"
)

// bookingResponse is the wire shape of a booking; rental dates go out as
// yyyy-mm-dd strings.
type bookingResponse struct {
	ID            int32                `json:"id"`
	CustomerID    int32                `json:"customerId"`
	VehicleID     int32                `json:"vehicleId"`
	RentStartDate string               `json:"rentStartDate"`
	RentEndDate   string               `json:"rentEndDate"`
	TotalPrice    int32                `json:"totalPrice"`
	Status        domain.BookingStatus `json:"status"`
}

type bookingDetailResponse struct {
	bookingResponse
	CustomerName        string `json:"customerName,omitempty"`
	CustomerEmail       string `json:"customerEmail,omitempty"`
	VehicleName         string `json:"vehicleName"`
	VehicleRegistration string `json:"vehicleRegistration"`
}

func mapBooking(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		VehicleID:     b.VehicleID,
		RentStartDate: utils.FormatDate(b.RentStartDate),
		RentEndDate:   utils.FormatDate(b.RentEndDate),
		TotalPrice:    b.TotalPriceCents,
		Status:        b.Status,
	}
}

func mapBookingDetails(details []domain.BookingDetail) []bookingDetailResponse {
	out := make([]bookingDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, bookingDetailResponse{
			bookingResponse:     mapBooking(&d.Booking),
			CustomerName:        d.CustomerName,
			CustomerEmail:       d.CustomerEmail,
			VehicleName:         d.VehicleName,
			VehicleRegistration: d.VehicleRegistration,
		})
	}
	return out
}
