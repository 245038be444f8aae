package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	VehicleID     int32  `json:"vehicleId"`
	RentStartDate string `json:"rentStartDate"`
	RentEndDate   string `json:"rentEndDate"`
	// CustomerID is honored for admin callers only; customers always book
	// for themselves.
	CustomerID int32 `json:"customerId,omitempty"`
}

type updateBookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), identity, req.VehicleID, req.RentStartDate, req.RentEndDate, req.CustomerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, mapBooking(booking))
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	details, err := h.bookingSvc.ListBookings(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, mapBookingDetails(details))
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	bookingID, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}
	if req.Status == "" {
		writeError(w, domain.Validation("status is required"))
		return
	}

	booking, err := h.bookingSvc.UpdateBookingStatus(r.Context(), identity, bookingID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, mapBooking(booking))
}

func parseIDVar(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validation("invalid " + name)
	}
	return int32(id), nil
}
