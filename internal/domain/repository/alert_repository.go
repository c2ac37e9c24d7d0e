package repository

import (
	"context"

	"airport-ops-service/internal/domain/entity"
)

// AlertRepository defines the interface for alert storage operations
type AlertRepository interface {
	List(ctx context.Context, filter entity.AlertFilter) ([]entity.Alert, error)
	FindByID(ctx context.Context, id uint) (*entity.Alert, error)
	MarkResolved(ctx context.Context, id uint) (*entity.Alert, error)
	Statistics(ctx context.Context) (*entity.AlertStatistics, error)
	Create(ctx context.Context, alert *entity.Alert) error
}
