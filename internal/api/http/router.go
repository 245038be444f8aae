package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentwheels-backend/internal/security"
	"rentwheels-backend/internal/service"
)

// NewRouter assembles the HTTP API. Auth routes and vehicle reads are
// public; everything else requires a bearer token.
func NewRouter(
	authSvc service.AuthService,
	userSvc service.UserService,
	vehicleSvc service.VehicleService,
	bookingSvc service.BookingService,
	tokens security.TokenManager,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	userHandler := NewUserHandler(userSvc)
	vehicleHandler := NewVehicleHandler(vehicleSvc)
	bookingHandler := NewBookingHandler(bookingSvc)
	authMw := NewAuthMiddleware(tokens)

	r := mux.NewRouter()
	r.Use(Recoverer, RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	api.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Handler)

	authed.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)

	authed.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}/status", bookingHandler.UpdateStatus).Methods(http.MethodPatch)

	return r
}
