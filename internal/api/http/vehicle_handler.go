package http

import (
	"encoding/json"
	"net/http"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

type vehicleRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	Registration string `json:"registration"`
	DailyRate    int32  `json:"dailyRate"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	vehicle := &domain.Vehicle{
		Name:           req.Name,
		Model:          req.Model,
		Registration:   req.Registration,
		DailyRateCents: req.DailyRate,
	}
	if err := h.vehicleSvc.AddVehicle(r.Context(), identity, vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleSvc.ListVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("invalid request body"))
		return
	}

	vehicle := &domain.Vehicle{
		ID:             id,
		Name:           req.Name,
		Model:          req.Model,
		Registration:   req.Registration,
		DailyRateCents: req.DailyRate,
	}
	if err := h.vehicleSvc.UpdateVehicle(r.Context(), identity, vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := parseIDVar(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.vehicleSvc.DeleteVehicle(r.Context(), identity, id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
