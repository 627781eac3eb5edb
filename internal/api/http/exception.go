package httpapi

import (
	"net/http"

	"github.com/joshbaje/Drively-sub000/internal/domain"
)

type declareExceptionRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

func (s *Server) handleDeclareException(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}

	var req declareExceptionRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	exc := &domain.AvailabilityException{
		VehicleID: vehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    domain.ExceptionReason(req.Reason),
		Notes:     req.Notes,
	}
	if err := s.exceptions.DeclareException(r.Context(), ownerID, exc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, exc)
}

func (s *Server) handleListExceptions(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	exceptions, err := s.exceptions.ListExceptions(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exceptions": exceptions})
}

func (s *Server) handleRemoveException(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid exception id")
		return
	}
	if err := s.exceptions.RemoveException(r.Context(), ownerID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
