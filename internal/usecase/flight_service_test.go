package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/utils"
)

func newTestFlightService(repo *fakeFlightRepo) *FlightService {
	svc := NewFlightService(repo, logger.NewNopLogger())
	svc.now = func() time.Time { return base }
	return svc
}

func TestFlightService(t *testing.T) {
	t.Run("List clamps paging", func(t *testing.T) {
		repo := &fakeFlightRepo{}
		svc := newTestFlightService(repo)

		_, err := svc.List(context.Background(), entity.FlightFilter{Skip: -3, Limit: 5000})
		require.NoError(t, err)
		assert.Equal(t, 0, repo.lastFilter.Skip)
		assert.Equal(t, maxListLimit, repo.lastFilter.Limit)

		_, err = svc.List(context.Background(), entity.FlightFilter{})
		require.NoError(t, err)
		assert.Equal(t, defaultListLimit, repo.lastFilter.Limit)
	})

	t.Run("List rejects unknown status", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepo{})
		_, err := svc.List(context.Background(), entity.FlightFilter{Status: "Lost"})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})

	t.Run("Get maps missing flight", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepo{flights: utils.MockFlights(base)})

		flight, err := svc.Get(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "AA789", flight.FlightNumber)

		_, err = svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrFlightNotFound)
	})

	t.Run("Get wraps store errors", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepo{err: errStore})
		_, err := svc.Get(context.Background(), 1)
		assert.ErrorIs(t, err, errStore)
		assert.NotErrorIs(t, err, ErrFlightNotFound)
	})

	t.Run("Statistics counts recent flights from the last day", func(t *testing.T) {
		repo := &fakeFlightRepo{flights: utils.MockFlights(base)}
		svc := newTestFlightService(repo)

		stats, err := svc.Statistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.TotalFlights)
		assert.Equal(t, base.Add(-24*time.Hour), repo.lastSince)
	})

	t.Run("Upcoming uses the requested window", func(t *testing.T) {
		repo := &fakeFlightRepo{flights: utils.MockFlights(base)}
		svc := newTestFlightService(repo)

		flights, err := svc.Upcoming(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"LH456", "BA123", "AA789"}, flightNumbers(flights))
		assert.Equal(t, base, repo.lastFrom)
		assert.Equal(t, base.Add(3*time.Hour), repo.lastTo)

		_, err = svc.Upcoming(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("Today covers the current calendar day", func(t *testing.T) {
		repo := &fakeFlightRepo{flights: utils.MockFlights(base)}
		svc := newTestFlightService(repo)

		flights, err := svc.Today(context.Background())
		require.NoError(t, err)
		assert.Len(t, flights, 5)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.lastFrom)
	})

	t.Run("Delayed", func(t *testing.T) {
		svc := newTestFlightService(&fakeFlightRepo{flights: utils.MockFlights(base)})

		flights, err := svc.Delayed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"AA789"}, flightNumbers(flights))
	})
}
