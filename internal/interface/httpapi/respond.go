package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"airport-ops-service/internal/usecase"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps usecase errors to HTTP statuses
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, usecase.ErrFlightNotFound):
		writeError(w, http.StatusNotFound, "Flight not found")
	case errors.Is(err, usecase.ErrAlertNotFound):
		writeError(w, http.StatusNotFound, "Alert not found")
	case errors.Is(err, usecase.ErrInvalidFilter),
		errors.Is(err, usecase.ErrInvalidHours),
		errors.Is(err, usecase.ErrInvalidDays),
		errors.Is(err, usecase.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
		s.logger.Error("Request failed",
			"operation", operation,
			"path", r.URL.Path,
			"error", err)
		writeError(w, http.StatusInternalServerError, "Error processing "+operation)
	}
}

// queryInt reads a non-negative integer query parameter
func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return value, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}
