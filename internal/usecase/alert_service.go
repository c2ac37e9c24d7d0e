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

// AlertService serves operational alerts
type AlertService struct {
	alertRepo repository.AlertRepository
	logger    logger.Logger
	now       func() time.Time
}

// NewAlertService creates a new alert service
func NewAlertService(alertRepo repository.AlertRepository, logger logger.Logger) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns alerts matching the filter, newest first
func (s *AlertService) List(ctx context.Context, filter entity.AlertFilter) ([]entity.Alert, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown alert type %q", ErrInvalidFilter, filter.Type)
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	filter.Limit = clampLimit(filter.Limit)

	alerts, err := s.alertRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Active returns unresolved alerts
func (s *AlertService) Active(ctx context.Context) ([]entity.Alert, error) {
	resolved := false
	return s.List(ctx, entity.AlertFilter{Resolved: &resolved})
}

// Critical returns unresolved critical alerts
func (s *AlertService) Critical(ctx context.Context) ([]entity.Alert, error) {
	resolved := false
	return s.List(ctx, entity.AlertFilter{Type: entity.AlertCritical, Resolved: &resolved})
}

// Recent returns alerts raised within the last hours
func (s *AlertService) Recent(ctx context.Context, hours int) ([]entity.Alert, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}
	return s.List(ctx, entity.AlertFilter{Since: s.now().Add(-time.Duration(hours) * time.Hour)})
}

// Statistics counts alerts per type and resolution
func (s *AlertService) Statistics(ctx context.Context) (*entity.AlertStatistics, error) {
	stats, err := s.alertRepo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get alert statistics: %w", err)
	}
	return stats, nil
}

// Resolve marks an alert as resolved and returns it
func (s *AlertService) Resolve(ctx context.Context, id uint) (*entity.Alert, error) {
	alert, err := s.alertRepo.MarkResolved(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alert %d: %w", id, err)
	}

	s.logger.Info("Alert resolved", "alertID", id, "title", alert.Title)
	return alert, nil
}
