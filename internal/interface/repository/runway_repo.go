package repository

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRunwayMetricRepository implements the RunwayMetricRepository interface
type GormRunwayMetricRepository struct {
	db *gorm.DB
}

// NewGormRunwayMetricRepository creates a new GORM runway metric repository
func NewGormRunwayMetricRepository(db *gorm.DB) repository.RunwayMetricRepository {
	return &GormRunwayMetricRepository{
		db: db,
	}
}

// RunwayMetrics GORM model for database mapping
type RunwayMetrics struct {
	ID          uint      `gorm:"primaryKey"`
	Runway      string    `gorm:"column:runway;size:10;not null;index"`
	Utilization float64   `gorm:"column:utilization;not null"`
	Capacity    int       `gorm:"column:capacity;not null"`
	Delays      int       `gorm:"column:delays;not null"`
	Conflicts   int       `gorm:"column:conflicts;not null"`
	Timestamp   time.Time `gorm:"column:timestamp;not null;index"`
	CreatedAt   time.Time
}

// TableName overrides the default table name
func (RunwayMetrics) TableName() string {
	return "runway_metrics"
}

func (m RunwayMetrics) toEntity() entity.RunwayMetric {
	return entity.RunwayMetric{
		ID:          m.ID,
		Runway:      m.Runway,
		Utilization: m.Utilization,
		Capacity:    m.Capacity,
		Delays:      m.Delays,
		Conflicts:   m.Conflicts,
		Timestamp:   m.Timestamp,
		CreatedAt:   m.CreatedAt,
	}
}

func toRunwayEntities(rows []RunwayMetrics) []entity.RunwayMetric {
	metrics := make([]entity.RunwayMetric, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, row.toEntity())
	}
	return metrics
}

// List returns metrics matching the filter, newest first
func (r *GormRunwayMetricRepository) List(ctx context.Context, filter entity.RunwayFilter) ([]entity.RunwayMetric, error) {
	query := r.db.WithContext(ctx).Model(&RunwayMetrics{})

	if filter.Runway != "" {
		query = query.Where("runway = ?", filter.Runway)
	}
	if !filter.Since.IsZero() {
		query = query.Where("timestamp >= ?", filter.Since)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []RunwayMetrics
	if result := query.Order("timestamp DESC").Order("id").Find(&rows); result.Error != nil {
		return nil, result.Error
	}
	return toRunwayEntities(rows), nil
}

// Latest returns the newest metric per runway using DISTINCT ON
func (r *GormRunwayMetricRepository) Latest(ctx context.Context) ([]entity.RunwayMetric, error) {
	var rows []RunwayMetrics
	result := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (runway) * FROM runway_metrics ORDER BY runway, timestamp DESC, id DESC`).
		Scan(&rows)

	if result.Error != nil {
		return nil, result.Error
	}
	return toRunwayEntities(rows), nil
}

// Averages returns per runway means over every stored sample, ordered by runway
func (r *GormRunwayMetricRepository) Averages(ctx context.Context) ([]entity.RunwayAverage, error) {
	averages := make([]entity.RunwayAverage, 0)
	result := r.db.WithContext(ctx).
		Model(&RunwayMetrics{}).
		Select("runway, " +
			"AVG(utilization)::float8 AS avg_utilization, " +
			"AVG(delays)::float8 AS avg_delays, " +
			"AVG(conflicts)::float8 AS avg_conflicts").
		Group("runway").
		Order("runway").
		Scan(&averages)

	if result.Error != nil {
		return nil, result.Error
	}
	return averages, nil
}

// HourlyAverages groups the samples of runway taken since the given time by hour of day
func (r *GormRunwayMetricRepository) HourlyAverages(ctx context.Context, runway string, since time.Time) ([]entity.RunwayHourly, error) {
	hourly := make([]entity.RunwayHourly, 0)
	result := r.db.WithContext(ctx).
		Model(&RunwayMetrics{}).
		Select("EXTRACT(HOUR FROM timestamp)::int AS hour, " +
			"AVG(utilization)::float8 AS avg_utilization, " +
			"AVG(delays)::float8 AS avg_delays, " +
			"AVG(conflicts)::float8 AS avg_conflicts, " +
			"COUNT(id) AS data_points").
		Where("runway = ?", runway).
		Where("timestamp >= ?", since).
		Group("EXTRACT(HOUR FROM timestamp)").
		Order("hour").
		Scan(&hourly)

	if result.Error != nil {
		return nil, result.Error
	}
	return hourly, nil
}

// Create inserts a new metric
func (r *GormRunwayMetricRepository) Create(ctx context.Context, metric *entity.RunwayMetric) error {
	model := RunwayMetrics{
		Runway:      metric.Runway,
		Utilization: metric.Utilization,
		Capacity:    metric.Capacity,
		Delays:      metric.Delays,
		Conflicts:   metric.Conflicts,
		Timestamp:   metric.Timestamp,
	}
	if model.Timestamp.IsZero() {
		model.Timestamp = time.Now()
	}

	if result := r.db.WithContext(ctx).Create(&model); result.Error != nil {
		return result.Error
	}

	metric.ID = model.ID
	metric.Timestamp = model.Timestamp
	metric.CreatedAt = model.CreatedAt
	return nil
}
