package httpapi

import (
	"context"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/usecase"
)

// FlightService is the flight listing behaviour used by the handlers
type FlightService interface {
	List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error)
	Get(ctx context.Context, id uint) (*entity.Flight, error)
	Statistics(ctx context.Context) (*entity.FlightStatistics, error)
	Upcoming(ctx context.Context, hours int) ([]entity.Flight, error)
	Today(ctx context.Context) ([]entity.Flight, error)
	Delayed(ctx context.Context) ([]entity.Flight, error)
}

// FlightSearcher answers natural language searches
type FlightSearcher interface {
	Search(ctx context.Context, text string) (*usecase.SearchResult, error)
}

// AlertService is the alert behaviour used by the handlers
type AlertService interface {
	List(ctx context.Context, filter entity.AlertFilter) ([]entity.Alert, error)
	Active(ctx context.Context) ([]entity.Alert, error)
	Critical(ctx context.Context) ([]entity.Alert, error)
	Recent(ctx context.Context, hours int) ([]entity.Alert, error)
	Statistics(ctx context.Context) (*entity.AlertStatistics, error)
	Resolve(ctx context.Context, id uint) (*entity.Alert, error)
}

// RunwayService is the runway behaviour used by the handlers
type RunwayService interface {
	List(ctx context.Context, runway string, hours, skip, limit int) ([]entity.RunwayMetric, error)
	CurrentStatus(ctx context.Context) ([]entity.RunwayStatus, error)
	Statistics(ctx context.Context) (*entity.RunwayStatistics, error)
	Trends(ctx context.Context, runway string, hours int) ([]entity.RunwayStatus, error)
	PeakHours(ctx context.Context, runway string, days int) ([]entity.RunwayHourly, error)
	Recommendations(ctx context.Context) (*entity.RunwayOptimization, error)
}

// ChatService is the chat behaviour used by the handlers
type ChatService interface {
	SendMessage(ctx context.Context, msg entity.ChatMessage) (*entity.ChatResponse, error)
	History(ctx context.Context, sessionID string, limit int) ([]*entity.ChatLog, error)
}
