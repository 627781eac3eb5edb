package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/joshbaje/Drively-sub000/internal/engine"
)

func (s *Server) handleMonthGrid(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		writeBadRequest(w, "invalid or missing year")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeBadRequest(w, "invalid or missing month")
		return
	}

	cells, err := s.calendar.MonthGrid(r.Context(), vehicleID, year, time.Month(month))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": month,
		"cells": cells,
	})
}

func (s *Server) handleWeekGrid(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	anchor, err := queryDate(r, "anchor")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	cells, err := s.calendar.WeekGrid(r.Context(), vehicleID, anchor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"week_start": engine.WeekStart(anchor).Format("2006-01-02"),
		"cells":      cells,
	})
}

type eventItem struct {
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Booking   any    `json:"booking,omitempty"`
	Exception any    `json:"exception,omitempty"`
}

func (s *Server) handleDayEvents(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}
	date, err := queryDate(r, "date")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	events, err := s.calendar.EventsOn(r.Context(), vehicleID, date)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]eventItem, 0, len(events))
	for _, ev := range events {
		item := eventItem{
			Kind:      string(ev.Kind),
			StartDate: ev.Range.Start.Format("2006-01-02"),
			EndDate:   ev.Range.End.Format("2006-01-02"),
		}
		if ev.Booking != nil {
			item.Booking = ev.Booking
		}
		if ev.Exception != nil {
			item.Exception = ev.Exception
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":   date.Format("2006-01-02"),
		"events": items,
	})
}

func (s *Server) handleFleetDay(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := userID(r)
	if !ok {
		writeBadRequest(w, "missing or invalid X-User-ID header")
		return
	}
	date, err := queryDate(r, "date")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	breakdown, err := s.calendar.FleetDayBreakdown(r.Context(), ownerID, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date.Format("2006-01-02"),
		"breakdown": breakdown,
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid vehicle id")
		return
	}

	// Statistics are evaluated at "now" unless the caller pins the instant,
	// which keeps responses reproducible for support and testing.
	now := time.Now().UTC()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := engine.ParseDay(raw)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		now = parsed
	}

	snapshot, err := s.stats.VehicleStatistics(r.Context(), vehicleID, now)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func queryDate(r *http.Request, key string) (time.Time, error) {
	return engine.ParseDay(r.URL.Query().Get(key))
}
