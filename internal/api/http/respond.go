package http

import (
	"encoding/json"
	"net/http"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
)

type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	msg := err.Error()
	if kind == domain.KindInternal {
		// Internal detail stays in the logs, not the response.
		logger.Error("Request failed", "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Success: false, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindInvalidTransition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
