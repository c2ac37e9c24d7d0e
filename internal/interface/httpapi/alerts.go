package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"airport-ops-service/internal/domain/entity"
)

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	filter := entity.AlertFilter{
		Type:   entity.AlertType(q.Get("type")),
		Search: q.Get("search"),
		Skip:   skip,
		Limit:  limit,
	}
	if raw := q.Get("resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "resolved must be a boolean")
			return
		}
		filter.Resolved = &resolved
	}

	alerts, err := s.alerts.List(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, r, "alerts", err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleActiveAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.alerts.Active(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "active alerts", err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleCriticalAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.alerts.Critical(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "critical alerts", err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleAlertStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.alerts.Statistics(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "alert statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleRecentAlerts(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.Atoi(chi.URLParam(r, "hours"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "hours must be an integer")
		return
	}

	alerts, err := s.alerts.Recent(r.Context(), hours)
	if err != nil {
		s.writeServiceError(w, r, "recent alerts", err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleResolveAlert(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	alert, err := s.alerts.Resolve(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "alert resolution", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Alert resolved successfully",
		"data":    alert,
	})
}
