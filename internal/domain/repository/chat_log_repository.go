package repository

import (
	"context"

	"airport-ops-service/internal/domain/entity"
)

// ChatLogRepository stores chat transcripts
type ChatLogRepository interface {
	Save(ctx context.Context, log *entity.ChatLog) error
	FindBySession(ctx context.Context, sessionID string, limit int) ([]*entity.ChatLog, error)
}
