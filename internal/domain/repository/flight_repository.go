package repository

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
)

// FlightRepository defines the interface for flight storage operations
type FlightRepository interface {
	List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error)
	FindAll(ctx context.Context) ([]entity.Flight, error)
	FindByID(ctx context.Context, id uint) (*entity.Flight, error)
	FindDepartingBetween(ctx context.Context, from, to time.Time) ([]entity.Flight, error)
	FindByStatus(ctx context.Context, status entity.FlightStatus) ([]entity.Flight, error)
	Statistics(ctx context.Context, since time.Time) (*entity.FlightStatistics, error)
	Create(ctx context.Context, flight *entity.Flight) error
	Count(ctx context.Context) (int64, error)
}
