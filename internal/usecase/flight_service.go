package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/logger"
)

// FlightService serves the flight listing endpoints
type FlightService struct {
	flightRepo repository.FlightRepository
	logger     logger.Logger
	now        func() time.Time
}

// NewFlightService creates a new flight service
func NewFlightService(flightRepo repository.FlightRepository, logger logger.Logger) *FlightService {
	return &FlightService{
		flightRepo: flightRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns flights matching the filter, newest departures first
func (s *FlightService) List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown flight status %q", ErrInvalidFilter, filter.Status)
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	filter.Limit = clampLimit(filter.Limit)

	flights, err := s.flightRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// Get returns a single flight
func (s *FlightService) Get(ctx context.Context, id uint) (*entity.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight %d: %w", id, err)
	}
	return flight, nil
}

// Statistics summarizes all flights; recent counts the last 24 hours
func (s *FlightService) Statistics(ctx context.Context) (*entity.FlightStatistics, error) {
	stats, err := s.flightRepo.Statistics(ctx, s.now().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to get flight statistics: %w", err)
	}
	return stats, nil
}

// Upcoming returns flights departing within the next hours, earliest first
func (s *FlightService) Upcoming(ctx context.Context, hours int) ([]entity.Flight, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}

	now := s.now()
	flights, err := s.flightRepo.FindDepartingBetween(ctx, now, now.Add(time.Duration(hours)*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming flights: %w", err)
	}
	return flights, nil
}

// Delayed returns all delayed flights
func (s *FlightService) Delayed(ctx context.Context) ([]entity.Flight, error) {
	flights, err := s.flightRepo.FindByStatus(ctx, entity.FlightDelayed)
	if err != nil {
		return nil, fmt.Errorf("failed to get delayed flights: %w", err)
	}
	return flights, nil
}

// Today returns flights departing on the current calendar day
func (s *FlightService) Today(ctx context.Context) ([]entity.Flight, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	flights, err := s.flightRepo.FindDepartingBetween(ctx, start, start.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's flights: %w", err)
	}
	return flights, nil
}
