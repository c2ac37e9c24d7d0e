// internal/domain/entity/flight.go
package entity

import (
	"time"
)

// FlightStatus is the operational state of a flight
type FlightStatus string

const (
	FlightOnTime    FlightStatus = "On Time"
	FlightDelayed   FlightStatus = "Delayed"
	FlightBoarding  FlightStatus = "Boarding"
	FlightCancelled FlightStatus = "Cancelled"
	FlightDeparted  FlightStatus = "Departed"
)

// Valid reports whether s is one of the known statuses
func (s FlightStatus) Valid() bool {
	switch s {
	case FlightOnTime, FlightDelayed, FlightBoarding, FlightCancelled, FlightDeparted:
		return true
	}
	return false
}

// Flight is a scheduled flight as served by the dashboard
type Flight struct {
	ID            uint         `json:"id"`
	FlightNumber  string       `json:"flight_number"`
	Airline       string       `json:"airline"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime time.Time    `json:"departure_time"`
	ArrivalTime   time.Time    `json:"arrival_time"`
	Status        FlightStatus `json:"status"`
	Gate          string       `json:"gate"`
	Terminal      string       `json:"terminal"`
	Aircraft      string       `json:"aircraft"`
	Price         *float64     `json:"price,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at,omitempty"`
}

// FlightFilter narrows a flight listing; empty fields do not filter
type FlightFilter struct {
	Origin      string
	Destination string
	Airline     string
	Status      FlightStatus
	Skip        int
	Limit       int
}

// FlightStatistics summarizes the flight table
type FlightStatistics struct {
	TotalFlights       int64            `json:"total_flights"`
	ActiveFlights      int64            `json:"active_flights"`
	RecentFlights      int64            `json:"recent_flights"`
	StatusDistribution map[string]int64 `json:"status_distribution"`
	TopAirlines        map[string]int64 `json:"top_airlines"`
}
