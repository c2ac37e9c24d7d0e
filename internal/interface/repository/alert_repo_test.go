package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/utils"
)

func seedAlerts(t *testing.T, repo repository.AlertRepository) []entity.Alert {
	t.Helper()
	alerts := utils.MockAlerts(base)
	for i := range alerts {
		alerts[i].ID = 0
		require.NoError(t, repo.Create(context.Background(), &alerts[i]))
	}
	return alerts
}

func alertTitles(alerts []entity.Alert) []string {
	titles := make([]string, 0, len(alerts))
	for _, a := range alerts {
		titles = append(titles, a.Title)
	}
	return titles
}

func TestGormAlertRepository_List(t *testing.T) {
	repo := NewGormAlertRepository(newTestDB(t))
	seedAlerts(t, repo)
	ctx := context.Background()
	unresolved := false

	tests := []struct {
		name   string
		filter entity.AlertFilter
		want   []string
	}{
		{
			name:   "Newest first",
			filter: entity.AlertFilter{},
			want:   []string{"Runway 27L Closure", "Ground Services Update", "Weather Advisory"},
		},
		{
			name:   "By type",
			filter: entity.AlertFilter{Type: entity.AlertWarning},
			want:   []string{"Weather Advisory"},
		},
		{
			name:   "Unresolved only",
			filter: entity.AlertFilter{Resolved: &unresolved},
			want:   []string{"Runway 27L Closure", "Weather Advisory"},
		},
		{
			name:   "Text search over title and message",
			filter: entity.AlertFilter{Search: "gate b12"},
			want:   []string{"Ground Services Update"},
		},
		{
			name:   "Since",
			filter: entity.AlertFilter{Since: base.Add(-50 * time.Minute)},
			want:   []string{"Runway 27L Closure", "Ground Services Update"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, alertTitles(alerts))
		})
	}
}

func TestGormAlertRepository_MarkResolved(t *testing.T) {
	repo := NewGormAlertRepository(newTestDB(t))
	alerts := seedAlerts(t, repo)
	ctx := context.Background()

	resolved, err := repo.MarkResolved(ctx, alerts[0].ID)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)

	found, err := repo.FindByID(ctx, alerts[0].ID)
	require.NoError(t, err)
	assert.True(t, found.Resolved)

	_, err = repo.MarkResolved(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGormAlertRepository_Statistics(t *testing.T) {
	repo := NewGormAlertRepository(newTestDB(t))
	seedAlerts(t, repo)

	stats, err := repo.Statistics(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalAlerts)
	assert.EqualValues(t, 1, stats.CriticalAlerts)
	assert.EqualValues(t, 1, stats.WarningAlerts)
	assert.EqualValues(t, 1, stats.InfoAlerts)
	assert.EqualValues(t, 1, stats.ResolvedAlerts)
	assert.EqualValues(t, 2, stats.ActiveAlerts)
}
