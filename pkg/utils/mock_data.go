package utils

import (
	"fmt"
	"time"

	"airport-ops-service/internal/domain/entity"
)

// MockRunways are the runways the seeded metrics are generated for
var MockRunways = []string{"27L", "27R", "09L", "09R"}

func price(v float64) *float64 {
	return &v
}

// MockFlights returns the five reference flights scheduled relative to base
func MockFlights(base time.Time) []entity.Flight {
	return []entity.Flight{
		{
			ID: 1, FlightNumber: "BA123", Airline: "British Airways",
			Origin: "LHR", Destination: "JFK",
			DepartureTime: base.Add(2 * time.Hour), ArrivalTime: base.Add(8 * time.Hour),
			Status: entity.FlightOnTime, Gate: "A12", Terminal: "T1", Aircraft: "Boeing 777",
			Price: price(899),
		},
		{
			ID: 2, FlightNumber: "LH456", Airline: "Lufthansa",
			Origin: "FRA", Destination: "CDG",
			DepartureTime: base.Add(1 * time.Hour), ArrivalTime: base.Add(150 * time.Minute),
			Status: entity.FlightBoarding, Gate: "B7", Terminal: "T2", Aircraft: "Airbus A320",
			Price: price(245),
		},
		{
			ID: 3, FlightNumber: "AA789", Airline: "American Airlines",
			Origin: "LAX", Destination: "ORD",
			DepartureTime: base.Add(3 * time.Hour), ArrivalTime: base.Add(510 * time.Minute),
			Status: entity.FlightDelayed, Gate: "C15", Terminal: "T3", Aircraft: "Boeing 737",
			Price: price(456),
		},
		{
			ID: 4, FlightNumber: "EK101", Airline: "Emirates",
			Origin: "DXB", Destination: "LHR",
			DepartureTime: base.Add(-2 * time.Hour), ArrivalTime: base.Add(2 * time.Hour),
			Status: entity.FlightDeparted, Gate: "A1", Terminal: "T1", Aircraft: "Airbus A380",
			Price: price(1299),
		},
		{
			ID: 5, FlightNumber: "AF202", Airline: "Air France",
			Origin: "CDG", Destination: "NRT",
			DepartureTime: base.Add(5 * time.Hour), ArrivalTime: base.Add(24 * time.Hour),
			Status: entity.FlightOnTime, Gate: "D8", Terminal: "T2", Aircraft: "Boeing 787",
			Price: price(1150),
		},
	}
}

// MockAlerts returns the reference alerts timestamped relative to base
func MockAlerts(base time.Time) []entity.Alert {
	return []entity.Alert{
		{
			ID: 1, Type: entity.AlertCritical, Title: "Runway 27L Closure",
			Message:   "Runway 27L is temporarily closed due to maintenance work. Expected reopening at 17:00.",
			Timestamp: base.Add(-30 * time.Minute),
		},
		{
			ID: 2, Type: entity.AlertWarning, Title: "Weather Advisory",
			Message:   "Strong crosswinds expected between 15:00-18:00. Possible flight delays.",
			Timestamp: base.Add(-1 * time.Hour),
		},
		{
			ID: 3, Type: entity.AlertInfo, Title: "Ground Services Update",
			Message:   "Ground services on standby for Flight AZ123 at Gate B12.",
			Timestamp: base.Add(-45 * time.Minute),
			Resolved:  true,
		},
	}
}

// MockRunwayMetrics returns hourly samples for the last 24 hours of each mock runway.
// Values follow a fixed pattern so repeated seeding is reproducible.
func MockRunwayMetrics(base time.Time) []entity.RunwayMetric {
	metrics := make([]entity.RunwayMetric, 0, len(MockRunways)*24)
	for r, runway := range MockRunways {
		for i := 0; i < 24; i++ {
			step := (i*7 + r*11) % 36
			metrics = append(metrics, entity.RunwayMetric{
				Runway:      runway,
				Utilization: 60 + float64(step),
				Capacity:    100,
				Delays:      (i + r*3) % 21,
				Conflicts:   (i + r) % 6,
				Timestamp:   base.Add(-time.Duration(23-i) * time.Hour),
			})
		}
	}
	return metrics
}

// FlightKey renders the human readable key of a flight, e.g. "BA123 LHR-JFK"
func FlightKey(f entity.Flight) string {
	return fmt.Sprintf("%s %s-%s", f.FlightNumber, f.Origin, f.Destination)
}
