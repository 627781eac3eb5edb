package httpapi

import (
	"net/http"
	"strconv"

	"github.com/joshbaje/Drively-sub000/internal/domain"
)

type createVehicleRequest struct {
	Make                 string `json:"make"`
	Model                string `json:"model"`
	Year                 int32  `json:"year"`
	PlateNumber          string `json:"plate_number"`
	Transmission         string `json:"transmission"`
	Seats                int32  `json:"seats"`
	DailyRateCents       int32  `json:"daily_rate_cents"`
	SecurityDepositCents int32  `json:"security_deposit_cents"`
	Location             string `json:"location"`
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}

	var req createVehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	vehicle := &domain.Vehicle{
		OwnerID:              ownerID,
		Make:                 req.Make,
		Model:                req.Model,
		Year:                 req.Year,
		PlateNumber:          req.PlateNumber,
		Transmission:         domain.VehicleTransmission(req.Transmission),
		Seats:                req.Seats,
		DailyRateCents:       req.DailyRateCents,
		SecurityDepositCents: req.SecurityDepositCents,
		Location:             req.Location,
	}
	if err := s.vehicles.AddVehicle(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	vehicle, err := s.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}

	var vehicle domain.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	vehicle.ID = id
	if err := s.vehicles.UpdateVehicle(r.Context(), ownerID, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, pageSize := pagination(r)

	vehicles, total, err := s.vehicles.ListVehicles(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"vehicles":  vehicles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (s *Server) handleListMyVehicles(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	vehicles, err := s.vehicles.ListMyVehicles(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vehicles": vehicles})
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
