package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/joshbaje/Drively-sub000/internal/domain"
	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/observability"
)

type quoteRequest struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	InsuranceTier string `json:"insurance_tier"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}

	var req quoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	quote, err := s.bookings.QuoteBooking(r.Context(), vehicleID, req.StartDate, req.EndDate, req.InsuranceTier)
	if err != nil {
		writeError(w, err)
		return
	}
	observability.QuotesTotal.Inc()
	writeJSON(w, http.StatusOK, quote)
}

type createBookingRequest struct {
	VehicleID     int32  `json:"vehicle_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	InsuranceTier string `json:"insurance_tier"`
	Notes         string `json:"notes"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	renterID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}

	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	booking, err := s.bookings.CreateBookingRequest(r.Context(),
		renterID, req.VehicleID, req.StartDate, req.EndDate, req.InsuranceTier, req.Notes)
	if err != nil {
		var notFree *engine.RangeNotFreeError
		if errors.As(err, &notFree) {
			observability.BookingConflictsTotal.Inc()
		}
		writeError(w, err)
		return
	}
	observability.BookingRequestsTotal.Inc()
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}
	booking, err := s.bookings.GetBooking(r.Context(), callerID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	renterID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	status := r.URL.Query().Get("status")
	page, pageSize := pagination(r)

	bookings, total, err := s.bookings.ListBookings(r.Context(), renterID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bookings":  bookings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (s *Server) handleApproveBooking(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.bookings.ApproveBooking)
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.bookings.CancelBooking)
}

func (s *Server) handleCompleteBooking(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.bookings.CompleteBooking)
}

type declineRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) handleDeclineBooking(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}
	var req declineRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	booking, err := s.bookings.DeclineBooking(r.Context(), ownerID, id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// transition factors the shared shape of the owner- or renter-driven status
// moves that take no request body.
func (s *Server) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, callerID, bookingID int32) (*domain.Booking, error)) {
	callerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}
	booking, err := fn(r.Context(), callerID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
