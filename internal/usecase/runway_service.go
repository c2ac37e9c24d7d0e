package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/logger"
)

// Load thresholds in percent utilization
const (
	highLoadThreshold       = 90
	moderateLoadThreshold   = 75
	normalLoadThreshold     = 50
	conflictStatusThreshold = 5

	bottleneckUtilization = 85
	bottleneckConflicts   = 3

	maxTrendHours = 168
	maxPeakDays   = 30

	highTrafficThreshold   = 80
	mediumTrafficThreshold = 50

	optimizationWindow = 24 * time.Hour
)

// RunwayAnalyst turns recent runway samples into optimization recommendations
type RunwayAnalyst interface {
	AnalyzeRunways(ctx context.Context, metrics []entity.RunwayMetric) (*entity.RunwayOptimization, error)
}

// DefaultOptimization is returned when no analysis can be produced
func DefaultOptimization() *entity.RunwayOptimization {
	return &entity.RunwayOptimization{
		Analysis: "Unable to analyze runway data at this time",
		Recommendations: []entity.Recommendation{{
			Type:     "immediate",
			Action:   "Monitor runway utilization patterns",
			Impact:   "Better understanding of traffic flow",
			Priority: "medium",
		}},
		EfficiencyScore: 75,
		Bottlenecks:     []string{"Analysis temporarily unavailable"},
	}
}

// RunwayService serves runway utilization metrics
type RunwayService struct {
	runwayRepo repository.RunwayMetricRepository
	analyst    RunwayAnalyst
	logger     logger.Logger
	now        func() time.Time
}

// NewRunwayService creates a new runway service. analyst may be nil.
func NewRunwayService(runwayRepo repository.RunwayMetricRepository, analyst RunwayAnalyst, logger logger.Logger) *RunwayService {
	return &RunwayService{
		runwayRepo: runwayRepo,
		analyst:    analyst,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns metrics for the last hours, newest first. hours <= 0 means no time bound.
func (s *RunwayService) List(ctx context.Context, runway string, hours, skip, limit int) ([]entity.RunwayMetric, error) {
	filter := entity.RunwayFilter{
		Runway: runway,
		Skip:   skip,
		Limit:  clampLimit(limit),
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if hours > 0 {
		filter.Since = s.now().Add(-time.Duration(hours) * time.Hour)
	}

	metrics, err := s.runwayRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list runway metrics: %w", err)
	}
	return metrics, nil
}

// Trends returns the samples of one runway within the last hours, oldest first
func (s *RunwayService) Trends(ctx context.Context, runway string, hours int) ([]entity.RunwayStatus, error) {
	if hours <= 0 || hours > maxTrendHours {
		return nil, ErrInvalidHours
	}

	metrics, err := s.runwayRepo.List(ctx, entity.RunwayFilter{
		Runway: runway,
		Since:  s.now().Add(-time.Duration(hours) * time.Hour),
		Limit:  maxListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get runway trends: %w", err)
	}

	trends := make([]entity.RunwayStatus, 0, len(metrics))
	for i := len(metrics) - 1; i >= 0; i-- {
		trends = append(trends, ClassifyRunway(metrics[i]))
	}
	return trends, nil
}

// CurrentStatus classifies the latest metric of each runway
func (s *RunwayService) CurrentStatus(ctx context.Context) ([]entity.RunwayStatus, error) {
	latest, err := s.runwayRepo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest runway metrics: %w", err)
	}

	statuses := make([]entity.RunwayStatus, 0, len(latest))
	for _, metric := range latest {
		statuses = append(statuses, ClassifyRunway(metric))
	}
	return statuses, nil
}

// Statistics aggregates the current status of all runways.
// Overall efficiency is total utilization over total capacity of the latest samples.
func (s *RunwayService) Statistics(ctx context.Context) (*entity.RunwayStatistics, error) {
	statuses, err := s.CurrentStatus(ctx)
	if err != nil {
		return nil, err
	}

	averages, err := s.runwayRepo.Averages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get runway averages: %w", err)
	}
	for i := range averages {
		averages[i].AvgUtilization = round1(averages[i].AvgUtilization)
		averages[i].AvgDelays = round1(averages[i].AvgDelays)
		averages[i].AvgConflicts = round1(averages[i].AvgConflicts)
	}
	if averages == nil {
		averages = []entity.RunwayAverage{}
	}

	stats := &entity.RunwayStatistics{
		TotalRunways:  len(statuses),
		Bottlenecks:   make([]entity.RunwayStatus, 0),
		RunwayDetails: averages,
		CurrentStatus: statuses,
	}

	var totalUtilization float64
	var totalCapacity int
	for _, status := range statuses {
		totalUtilization += status.Utilization
		totalCapacity += status.Capacity
		stats.TotalDelays += status.Delays
		stats.TotalConflicts += status.Conflicts
		if status.Utilization > bottleneckUtilization || status.Conflicts > bottleneckConflicts {
			stats.Bottlenecks = append(stats.Bottlenecks, status)
		}
	}
	if totalCapacity > 0 {
		stats.OverallEfficiency = round1(totalUtilization / float64(totalCapacity) * 100)
	}

	return stats, nil
}

// PeakHours averages the samples of a runway from the last days by hour of day
func (s *RunwayService) PeakHours(ctx context.Context, runway string, days int) ([]entity.RunwayHourly, error) {
	if days < 1 || days > maxPeakDays {
		return nil, ErrInvalidDays
	}

	since := s.now().AddDate(0, 0, -days)
	hourly, err := s.runwayRepo.HourlyAverages(ctx, runway, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get peak hours: %w", err)
	}

	analysis := make([]entity.RunwayHourly, 0, len(hourly))
	for _, h := range hourly {
		if h.DataPoints == 0 {
			continue
		}
		h.AvgUtilization = round1(h.AvgUtilization)
		h.AvgDelays = round1(h.AvgDelays)
		h.AvgConflicts = round1(h.AvgConflicts)
		h.TrafficLevel = trafficLevel(h.AvgUtilization)
		analysis = append(analysis, h)
	}
	return analysis, nil
}

// Recommendations asks the analyst about the last 24 hours of samples.
// Analyst failures and a missing analyst both yield DefaultOptimization.
func (s *RunwayService) Recommendations(ctx context.Context) (*entity.RunwayOptimization, error) {
	metrics, err := s.runwayRepo.List(ctx, entity.RunwayFilter{
		Since: s.now().Add(-optimizationWindow),
		Limit: maxListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load runway metrics: %w", err)
	}

	if s.analyst == nil {
		return DefaultOptimization(), nil
	}

	optimization, err := s.analyst.AnalyzeRunways(ctx, metrics)
	if err != nil {
		s.logger.Warn("Runway analysis failed, using default recommendations",
			"samples", len(metrics),
			"error", err)
		return DefaultOptimization(), nil
	}
	return optimization, nil
}

func trafficLevel(avgUtilization float64) string {
	switch {
	case avgUtilization > highTrafficThreshold:
		return entity.TrafficHigh
	case avgUtilization > mediumTrafficThreshold:
		return entity.TrafficMedium
	default:
		return entity.TrafficLow
	}
}

// ClassifyRunway derives the load status and efficiency of a metric
func ClassifyRunway(metric entity.RunwayMetric) entity.RunwayStatus {
	var status string
	switch {
	case metric.Utilization > highLoadThreshold:
		status = "High Load"
	case metric.Utilization > moderateLoadThreshold:
		status = "Moderate Load"
	case metric.Utilization > normalLoadThreshold:
		status = "Normal Load"
	default:
		status = "Low Load"
	}
	if metric.Conflicts > conflictStatusThreshold {
		status += " - Conflicts"
	}

	var efficiency float64
	if metric.Capacity > 0 {
		efficiency = round1(metric.Utilization / float64(metric.Capacity) * 100)
	}

	return entity.RunwayStatus{
		Runway:      metric.Runway,
		Utilization: metric.Utilization,
		Capacity:    metric.Capacity,
		Delays:      metric.Delays,
		Conflicts:   metric.Conflicts,
		Efficiency:  efficiency,
		Status:      status,
		Timestamp:   metric.Timestamp,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
