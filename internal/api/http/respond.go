package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/joshbaje/Drively-sub000/internal/engine"
	"github.com/joshbaje/Drively-sub000/internal/logger"
	"github.com/joshbaje/Drively-sub000/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error     string         `json:"error"`
	Conflicts []conflictItem `json:"conflicts,omitempty"`
}

type conflictItem struct {
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// writeError maps domain and engine failures onto HTTP status codes. A
// non-free range is a 409 carrying every conflicting event.
func writeError(w http.ResponseWriter, err error) {
	var notFree *engine.RangeNotFreeError
	switch {
	case errors.As(err, &notFree):
		resp := errorResponse{Error: "requested range is not available"}
		for _, ev := range notFree.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictItem{
				Kind:      string(ev.Kind),
				StartDate: ev.Range.Start.Format("2006-01-02"),
				EndDate:   ev.Range.End.Format("2006-01-02"),
			})
		}
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, engine.ErrInvalidRange),
		errors.Is(err, engine.ErrInvalidRate),
		errors.Is(err, engine.ErrInvalidInsuranceTier):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrVehicleClosed),
		errors.Is(err, service.ErrBadTransition),
		errors.Is(err, service.ErrExceptionOverlap):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidReason):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// userID extracts the authenticated caller from the X-User-ID header.
func userID(r *http.Request) (int32, bool) {
	raw := r.Header.Get("X-User-ID")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func pathID(r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
