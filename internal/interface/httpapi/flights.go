package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"airport-ops-service/internal/domain/entity"
)

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleListFlights(w http.ResponseWriter, r *http.Request) {
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
	flights, err := s.flights.List(r.Context(), entity.FlightFilter{
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Airline:     q.Get("airline"),
		Status:      entity.FlightStatus(q.Get("status")),
		Skip:        skip,
		Limit:       limit,
	})
	if err != nil {
		s.writeServiceError(w, r, "flights", err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (s *Server) handleGetFlight(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flight, err := s.flights.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "flight", err)
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

func (s *Server) handleSearchFlights(w http.ResponseWriter, r *http.Request) {
	body, err := readValidated(r, searchLoader)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req searchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.search.Search(r.Context(), req.Query)
	if err != nil {
		s.writeServiceError(w, r, "flight search", err)
		return
	}
	writeJSON(w, http.StatusOK, result.Flights)
}

func (s *Server) handleFlightStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.flights.Statistics(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "flight statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleUpcomingFlights(w http.ResponseWriter, r *http.Request) {
	hours, err := strconv.Atoi(chi.URLParam(r, "hours"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "hours must be an integer")
		return
	}

	flights, err := s.flights.Upcoming(r.Context(), hours)
	if err != nil {
		s.writeServiceError(w, r, "upcoming flights", err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (s *Server) handleDelayedFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := s.flights.Delayed(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "delayed flights", err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (s *Server) handleTodayFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := s.flights.Today(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "today's flights", err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}
