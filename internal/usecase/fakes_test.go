package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/metrics"
)

var errStore = errors.New("store unavailable")

func testMetrics() *metrics.Metrics {
	return metrics.NewMetricsWithRegistry("test", prometheus.NewRegistry())
}

type fakeFlightRepo struct {
	flights    []entity.Flight
	err        error
	lastFilter entity.FlightFilter
	lastFrom   time.Time
	lastTo     time.Time
	lastSince  time.Time
}

func (r *fakeFlightRepo) List(_ context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	r.lastFilter = filter
	return r.flights, r.err
}

func (r *fakeFlightRepo) FindAll(context.Context) ([]entity.Flight, error) {
	return r.flights, r.err
}

func (r *fakeFlightRepo) FindByID(_ context.Context, id uint) (*entity.Flight, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.flights {
		if r.flights[i].ID == id {
			return &r.flights[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeFlightRepo) FindDepartingBetween(_ context.Context, from, to time.Time) ([]entity.Flight, error) {
	r.lastFrom, r.lastTo = from, to
	var out []entity.Flight
	for _, f := range r.flights {
		if !f.DepartureTime.Before(from) && !f.DepartureTime.After(to) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out, r.err
}

func (r *fakeFlightRepo) FindByStatus(_ context.Context, status entity.FlightStatus) ([]entity.Flight, error) {
	var out []entity.Flight
	for _, f := range r.flights {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out, r.err
}

func (r *fakeFlightRepo) Statistics(_ context.Context, since time.Time) (*entity.FlightStatistics, error) {
	r.lastSince = since
	if r.err != nil {
		return nil, r.err
	}
	return &entity.FlightStatistics{TotalFlights: int64(len(r.flights))}, nil
}

func (r *fakeFlightRepo) Create(_ context.Context, flight *entity.Flight) error {
	r.flights = append(r.flights, *flight)
	return r.err
}

func (r *fakeFlightRepo) Count(context.Context) (int64, error) {
	return int64(len(r.flights)), r.err
}

type fakeSearchLogRepo struct {
	saved []*entity.SearchLog
	err   error
}

func (r *fakeSearchLogRepo) Save(_ context.Context, log *entity.SearchLog) error {
	r.saved = append(r.saved, log)
	return r.err
}

func (r *fakeSearchLogRepo) Recent(context.Context, int) ([]*entity.SearchLog, error) {
	return r.saved, r.err
}

type fakeAlertRepo struct {
	alerts     []entity.Alert
	err        error
	lastFilter entity.AlertFilter
}

func (r *fakeAlertRepo) List(_ context.Context, filter entity.AlertFilter) ([]entity.Alert, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Alert
	for _, a := range r.alerts {
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.Resolved != nil && a.Resolved != *filter.Resolved {
			continue
		}
		if filter.Search != "" && !strings.Contains(a.Title+a.Message, filter.Search) {
			continue
		}
		if !filter.Since.IsZero() && a.Timestamp.Before(filter.Since) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAlertRepo) FindByID(_ context.Context, id uint) (*entity.Alert, error) {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			return &r.alerts[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAlertRepo) MarkResolved(ctx context.Context, id uint) (*entity.Alert, error) {
	if r.err != nil {
		return nil, r.err
	}
	alert, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	alert.Resolved = true
	return alert, nil
}

func (r *fakeAlertRepo) Statistics(context.Context) (*entity.AlertStatistics, error) {
	if r.err != nil {
		return nil, r.err
	}
	stats := &entity.AlertStatistics{TotalAlerts: int64(len(r.alerts))}
	for _, a := range r.alerts {
		if a.Resolved {
			stats.ResolvedAlerts++
		}
	}
	stats.ActiveAlerts = stats.TotalAlerts - stats.ResolvedAlerts
	return stats, nil
}

func (r *fakeAlertRepo) Create(_ context.Context, alert *entity.Alert) error {
	r.alerts = append(r.alerts, *alert)
	return r.err
}

type fakeRunwayRepo struct {
	metrics    []entity.RunwayMetric
	latest     []entity.RunwayMetric
	averages   []entity.RunwayAverage
	hourly     []entity.RunwayHourly
	err        error
	lastFilter entity.RunwayFilter
	lastRunway string
	lastSince  time.Time
}

func (r *fakeRunwayRepo) List(_ context.Context, filter entity.RunwayFilter) ([]entity.RunwayMetric, error) {
	r.lastFilter = filter
	return r.metrics, r.err
}

func (r *fakeRunwayRepo) Latest(context.Context) ([]entity.RunwayMetric, error) {
	return r.latest, r.err
}

func (r *fakeRunwayRepo) Averages(context.Context) ([]entity.RunwayAverage, error) {
	return r.averages, r.err
}

func (r *fakeRunwayRepo) HourlyAverages(_ context.Context, runway string, since time.Time) ([]entity.RunwayHourly, error) {
	r.lastRunway = runway
	r.lastSince = since
	return r.hourly, r.err
}

func (r *fakeRunwayRepo) Create(_ context.Context, metric *entity.RunwayMetric) error {
	r.metrics = append(r.metrics, *metric)
	return r.err
}

type fakeAnalyst struct {
	result  *entity.RunwayOptimization
	err     error
	samples int
}

func (a *fakeAnalyst) AnalyzeRunways(_ context.Context, metrics []entity.RunwayMetric) (*entity.RunwayOptimization, error) {
	a.samples = len(metrics)
	return a.result, a.err
}

type fakeChatLogRepo struct {
	saved []*entity.ChatLog
	err   error
}

func (r *fakeChatLogRepo) Save(_ context.Context, log *entity.ChatLog) error {
	r.saved = append(r.saved, log)
	return r.err
}

func (r *fakeChatLogRepo) FindBySession(_ context.Context, sessionID string, _ int) ([]*entity.ChatLog, error) {
	var out []*entity.ChatLog
	for _, l := range r.saved {
		if l.SessionID == sessionID {
			out = append(out, l)
		}
	}
	return out, r.err
}

type fakeAssistant struct {
	reply   string
	err     error
	calls   int
	lastMsg string
	lastCtx string
}

func (a *fakeAssistant) Reply(_ context.Context, message, chatContext string) (string, error) {
	a.calls++
	a.lastMsg, a.lastCtx = message, chatContext
	return a.reply, a.err
}

type fixedReplier string

func (r fixedReplier) Reply(string) string {
	return string(r)
}
