package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListRunwayMetrics(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
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

	metrics, err := s.runways.List(r.Context(), r.URL.Query().Get("runway"), hours, skip, limit)
	if err != nil {
		s.writeServiceError(w, r, "runway metrics", err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleRunwayStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.runways.CurrentStatus(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "runway status", err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleRunwayStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.runways.Statistics(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "runway statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleRunwayTrends(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours", 24)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trends, err := s.runways.Trends(r.Context(), chi.URLParam(r, "runway"), hours)
	if err != nil {
		s.writeServiceError(w, r, "runway trends", err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

func (s *Server) handleRunwayPeakHours(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 7)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hourly, err := s.runways.PeakHours(r.Context(), chi.URLParam(r, "runway"), days)
	if err != nil {
		s.writeServiceError(w, r, "runway peak hours", err)
		return
	}
	writeJSON(w, http.StatusOK, hourly)
}

func (s *Server) handleRunwayRecommendations(w http.ResponseWriter, r *http.Request) {
	optimization, err := s.runways.Recommendations(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "runway recommendations", err)
		return
	}
	writeJSON(w, http.StatusOK, optimization)
}
