package repository

import (
	"context"
	"errors"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID            uint      `gorm:"primaryKey"`
	FlightNumber  string    `gorm:"column:flight_number;size:20;not null;index"`
	Airline       string    `gorm:"column:airline;size:100;not null"`
	Origin        string    `gorm:"column:origin;size:10;not null;index"`
	Destination   string    `gorm:"column:destination;size:10;not null;index"`
	DepartureTime time.Time `gorm:"column:departure_time;not null;index"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null"`
	Status        string    `gorm:"column:status;size:20;not null;index"`
	Gate          string    `gorm:"column:gate;size:10;not null"`
	Terminal      string    `gorm:"column:terminal;size:10;not null"`
	Aircraft      string    `gorm:"column:aircraft;size:50;not null"`
	Price         *float64  `gorm:"column:price"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

func (f Flights) toEntity() entity.Flight {
	return entity.Flight{
		ID:            f.ID,
		FlightNumber:  f.FlightNumber,
		Airline:       f.Airline,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Status:        entity.FlightStatus(f.Status),
		Gate:          f.Gate,
		Terminal:      f.Terminal,
		Aircraft:      f.Aircraft,
		Price:         f.Price,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func toFlightEntities(rows []Flights) []entity.Flight {
	flights := make([]entity.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, row.toEntity())
	}
	return flights
}

// List returns flights matching the filter, ordered by departure time
func (r *GormFlightRepository) List(ctx context.Context, filter entity.FlightFilter) ([]entity.Flight, error) {
	query := r.db.WithContext(ctx).Model(&Flights{})

	if filter.Origin != "" {
		query = query.Where("origin ILIKE ?", "%"+filter.Origin+"%")
	}
	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}
	if filter.Airline != "" {
		query = query.Where("airline ILIKE ?", "%"+filter.Airline+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []Flights
	if result := query.Order("departure_time").Order("id").Find(&rows); result.Error != nil {
		return nil, result.Error
	}

	return toFlightEntities(rows), nil
}

// FindAll returns every flight in insertion order
func (r *GormFlightRepository) FindAll(ctx context.Context) ([]entity.Flight, error) {
	var rows []Flights
	if result := r.db.WithContext(ctx).Order("id").Find(&rows); result.Error != nil {
		return nil, result.Error
	}
	return toFlightEntities(rows), nil
}

// FindByID finds a flight by its primary key
func (r *GormFlightRepository) FindByID(ctx context.Context, id uint) (*entity.Flight, error) {
	var row Flights
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	flight := row.toEntity()
	return &flight, nil
}

// FindDepartingBetween returns flights departing in [from, to], earliest first
func (r *GormFlightRepository) FindDepartingBetween(ctx context.Context, from, to time.Time) ([]entity.Flight, error) {
	var rows []Flights
	result := r.db.WithContext(ctx).
		Where("departure_time >= ?", from).
		Where("departure_time <= ?", to).
		Order("departure_time").
		Find(&rows)

	if result.Error != nil {
		return nil, result.Error
	}
	return toFlightEntities(rows), nil
}

// FindByStatus returns all flights with the given status
func (r *GormFlightRepository) FindByStatus(ctx context.Context, status entity.FlightStatus) ([]entity.Flight, error) {
	var rows []Flights
	result := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("departure_time").Find(&rows)

	if result.Error != nil {
		return nil, result.Error
	}
	return toFlightEntities(rows), nil
}

type groupCount struct {
	Key   string
	Count int64
}

// Statistics aggregates counts over the flight table
func (r *GormFlightRepository) Statistics(ctx context.Context, since time.Time) (*entity.FlightStatistics, error) {
	db := r.db.WithContext(ctx)
	stats := &entity.FlightStatistics{
		StatusDistribution: make(map[string]int64),
		TopAirlines:        make(map[string]int64),
	}

	if err := db.Model(&Flights{}).Count(&stats.TotalFlights).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Flights{}).Where("status <> ?", string(entity.FlightDeparted)).Count(&stats.ActiveFlights).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Flights{}).Where("departure_time >= ?", since).Count(&stats.RecentFlights).Error; err != nil {
		return nil, err
	}

	var byStatus []groupCount
	if err := db.Model(&Flights{}).Select("status AS key, COUNT(id) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, g := range byStatus {
		stats.StatusDistribution[g.Key] = g.Count
	}

	var byAirline []groupCount
	if err := db.Model(&Flights{}).
		Select("airline AS key, COUNT(id) AS count").
		Group("airline").
		Order("count DESC").
		Limit(10).
		Scan(&byAirline).Error; err != nil {
		return nil, err
	}
	for _, g := range byAirline {
		stats.TopAirlines[g.Key] = g.Count
	}

	return stats, nil
}

// Create inserts a new flight and fills in the generated fields
func (r *GormFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	status := flight.Status
	if status == "" {
		status = entity.FlightOnTime
	}

	model := Flights{
		FlightNumber:  flight.FlightNumber,
		Airline:       flight.Airline,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Status:        string(status),
		Gate:          flight.Gate,
		Terminal:      flight.Terminal,
		Aircraft:      flight.Aircraft,
		Price:         flight.Price,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	flight.ID = model.ID
	flight.Status = status
	flight.CreatedAt = model.CreatedAt
	flight.UpdatedAt = model.UpdatedAt

	return nil
}

// Count returns the number of stored flights
func (r *GormFlightRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Flights{}).Count(&count).Error
	return count, err
}
