package repository

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
)

// RunwayMetricRepository defines the interface for runway metric operations
type RunwayMetricRepository interface {
	List(ctx context.Context, filter entity.RunwayFilter) ([]entity.RunwayMetric, error)
	// Latest returns the newest metric of every runway, ordered by runway name
	Latest(ctx context.Context) ([]entity.RunwayMetric, error)
	// Averages returns the mean utilization, delays and conflicts per runway over all samples
	Averages(ctx context.Context) ([]entity.RunwayAverage, error)
	// HourlyAverages groups the samples of a runway since the given time by hour of day
	HourlyAverages(ctx context.Context, runway string, since time.Time) ([]entity.RunwayHourly, error)
	Create(ctx context.Context, metric *entity.RunwayMetric) error
}
