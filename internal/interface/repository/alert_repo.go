package repository

import (
	"context"
	"errors"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAlertRepository implements the AlertRepository interface
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GORM alert repository
func NewGormAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &GormAlertRepository{
		db: db,
	}
}

// Alerts GORM model for database mapping
type Alerts struct {
	ID        uint      `gorm:"primaryKey"`
	Type      string    `gorm:"column:type;size:10;not null;index"`
	Title     string    `gorm:"column:title;size:200;not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
	Resolved  bool      `gorm:"column:resolved;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Alerts) TableName() string {
	return "alerts"
}

func (a Alerts) toEntity() entity.Alert {
	return entity.Alert{
		ID:        a.ID,
		Type:      entity.AlertType(a.Type),
		Title:     a.Title,
		Message:   a.Message,
		Timestamp: a.Timestamp,
		Resolved:  a.Resolved,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// List returns alerts matching the filter, newest first
func (r *GormAlertRepository) List(ctx context.Context, filter entity.AlertFilter) ([]entity.Alert, error) {
	query := r.db.WithContext(ctx).Model(&Alerts{})

	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Resolved != nil {
		query = query.Where("resolved = ?", *filter.Resolved)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR message ILIKE ?", term, term)
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

	var rows []Alerts
	if result := query.Order("timestamp DESC").Order("id").Find(&rows); result.Error != nil {
		return nil, result.Error
	}

	alerts := make([]entity.Alert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, row.toEntity())
	}
	return alerts, nil
}

// FindByID finds an alert by its primary key
func (r *GormAlertRepository) FindByID(ctx context.Context, id uint) (*entity.Alert, error) {
	var row Alerts
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	alert := row.toEntity()
	return &alert, nil
}

// MarkResolved sets the resolved flag and returns the updated alert
func (r *GormAlertRepository) MarkResolved(ctx context.Context, id uint) (*entity.Alert, error) {
	var row Alerts
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		return tx.Model(&row).Update("resolved", true).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	row.Resolved = true

	alert := row.toEntity()
	return &alert, nil
}

// Statistics counts alerts by severity and resolution
func (r *GormAlertRepository) Statistics(ctx context.Context) (*entity.AlertStatistics, error) {
	db := r.db.WithContext(ctx)
	stats := &entity.AlertStatistics{}

	counts := []struct {
		dest  *int64
		query string
		args  []interface{}
	}{
		{&stats.TotalAlerts, "", nil},
		{&stats.CriticalAlerts, "type = ?", []interface{}{string(entity.AlertCritical)}},
		{&stats.WarningAlerts, "type = ?", []interface{}{string(entity.AlertWarning)}},
		{&stats.InfoAlerts, "type = ?", []interface{}{string(entity.AlertInfo)}},
		{&stats.ResolvedAlerts, "resolved = ?", []interface{}{true}},
	}

	for _, c := range counts {
		q := db.Model(&Alerts{})
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	stats.ActiveAlerts = stats.TotalAlerts - stats.ResolvedAlerts
	return stats, nil
}

// Create inserts a new alert
func (r *GormAlertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	model := Alerts{
		Type:      string(alert.Type),
		Title:     alert.Title,
		Message:   alert.Message,
		Timestamp: alert.Timestamp,
		Resolved:  alert.Resolved,
	}
	if model.Timestamp.IsZero() {
		model.Timestamp = time.Now()
	}

	if result := r.db.WithContext(ctx).Create(&model); result.Error != nil {
		return result.Error
	}

	alert.ID = model.ID
	alert.Timestamp = model.Timestamp
	alert.CreatedAt = model.CreatedAt
	alert.UpdatedAt = model.UpdatedAt
	return nil
}
