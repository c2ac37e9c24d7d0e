package usecase

import (
	"context"
	"fmt"
	"time"

	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/utils"
)

// SeedSummary counts the records inserted by a seeding run
type SeedSummary struct {
	Flights       int
	Alerts        int
	RunwayMetrics int
}

// Seeder loads the reference dataset into empty stores
type Seeder struct {
	flightRepo repository.FlightRepository
	alertRepo  repository.AlertRepository
	runwayRepo repository.RunwayMetricRepository
	logger     logger.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(
	flightRepo repository.FlightRepository,
	alertRepo repository.AlertRepository,
	runwayRepo repository.RunwayMetricRepository,
	logger logger.Logger,
) *Seeder {
	return &Seeder{
		flightRepo: flightRepo,
		alertRepo:  alertRepo,
		runwayRepo: runwayRepo,
		logger:     logger,
	}
}

// SeedIfEmpty inserts the reference data scheduled around base. Nothing is written when flights already exist.
func (s *Seeder) SeedIfEmpty(ctx context.Context, base time.Time) (*SeedSummary, error) {
	count, err := s.flightRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count flights: %w", err)
	}
	if count > 0 {
		s.logger.Info("Database already seeded", "flights", count)
		return &SeedSummary{}, nil
	}

	summary := &SeedSummary{}

	for _, flight := range utils.MockFlights(base) {
		flight := flight
		flight.ID = 0
		if err := s.flightRepo.Create(ctx, &flight); err != nil {
			return summary, fmt.Errorf("failed to seed flight %s: %w", utils.FlightKey(flight), err)
		}
		summary.Flights++
	}

	for _, alert := range utils.MockAlerts(base) {
		alert := alert
		alert.ID = 0
		if err := s.alertRepo.Create(ctx, &alert); err != nil {
			return summary, fmt.Errorf("failed to seed alert %q: %w", alert.Title, err)
		}
		summary.Alerts++
	}

	for _, metric := range utils.MockRunwayMetrics(base) {
		metric := metric
		if err := s.runwayRepo.Create(ctx, &metric); err != nil {
			return summary, fmt.Errorf("failed to seed runway metric %s: %w", metric.Runway, err)
		}
		summary.RunwayMetrics++
	}

	s.logger.Info("Database seeded",
		"flights", summary.Flights,
		"alerts", summary.Alerts,
		"runwayMetrics", summary.RunwayMetrics)

	return summary, nil
}
