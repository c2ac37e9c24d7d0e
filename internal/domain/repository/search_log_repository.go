package repository

import (
	"context"

	"airport-ops-service/internal/domain/entity"
)

// SearchLogRepository stores the audit trail of natural language searches
type SearchLogRepository interface {
	Save(ctx context.Context, log *entity.SearchLog) error
	Recent(ctx context.Context, limit int) ([]*entity.SearchLog, error)
}
