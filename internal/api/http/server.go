package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joshbaje/Drively-sub000/internal/config"
	"github.com/joshbaje/Drively-sub000/internal/service"
)

// Server is the HTTP surface of the marketplace. Caller identity arrives in
// the X-User-ID header; this service trusts the gateway in front of it to have
// authenticated the request.
type Server struct {
	bookings   service.BookingService
	vehicles   service.VehicleService
	exceptions service.ExceptionService
	calendar   service.CalendarService
	stats      service.StatisticsService

	limiter *IPRateLimiter
	router  *mux.Router
}

func NewServer(
	cfg *config.Config,
	bookings service.BookingService,
	vehicles service.VehicleService,
	exceptions service.ExceptionService,
	calendar service.CalendarService,
	stats service.StatisticsService,
) *Server {
	s := &Server{
		bookings:   bookings,
		vehicles:   vehicles,
		exceptions: exceptions,
		calendar:   calendar,
		stats:      stats,
		limiter:    NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		router:     mux.NewRouter(),
	}
	s.registerMiddleware()
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/vehicles", s.handleCreateVehicle).Methods("POST")
	api.HandleFunc("/vehicles", s.handleListVehicles).Methods("GET")
	api.HandleFunc("/vehicles/mine", s.handleListMyVehicles).Methods("GET")
	api.HandleFunc("/vehicles/{id:[0-9]+}", s.handleGetVehicle).Methods("GET")
	api.HandleFunc("/vehicles/{id:[0-9]+}", s.handleUpdateVehicle).Methods("PUT")

	api.HandleFunc("/vehicles/{id:[0-9]+}/quote", s.handleQuote).Methods("POST")
	api.HandleFunc("/bookings", s.handleCreateBooking).Methods("POST")
	api.HandleFunc("/bookings", s.handleListBookings).Methods("GET")
	api.HandleFunc("/bookings/{id:[0-9]+}", s.handleGetBooking).Methods("GET")
	api.HandleFunc("/bookings/{id:[0-9]+}/approve", s.handleApproveBooking).Methods("POST")
	api.HandleFunc("/bookings/{id:[0-9]+}/decline", s.handleDeclineBooking).Methods("POST")
	api.HandleFunc("/bookings/{id:[0-9]+}/cancel", s.handleCancelBooking).Methods("POST")
	api.HandleFunc("/bookings/{id:[0-9]+}/complete", s.handleCompleteBooking).Methods("POST")

	api.HandleFunc("/vehicles/{id:[0-9]+}/calendar/month", s.handleMonthGrid).Methods("GET")
	api.HandleFunc("/vehicles/{id:[0-9]+}/calendar/week", s.handleWeekGrid).Methods("GET")
	api.HandleFunc("/vehicles/{id:[0-9]+}/calendar/day", s.handleDayEvents).Methods("GET")
	api.HandleFunc("/fleet/day", s.handleFleetDay).Methods("GET")

	api.HandleFunc("/vehicles/{id:[0-9]+}/statistics", s.handleStatistics).Methods("GET")

	api.HandleFunc("/vehicles/{id:[0-9]+}/exceptions", s.handleDeclareException).Methods("POST")
	api.HandleFunc("/vehicles/{id:[0-9]+}/exceptions", s.handleListExceptions).Methods("GET")
	api.HandleFunc("/exceptions/{id:[0-9]+}", s.handleRemoveException).Methods("DELETE")

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
