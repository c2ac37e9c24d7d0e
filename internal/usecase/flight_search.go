package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
	"airport-ops-service/pkg/utils"
)

// MaxSearchResults caps the number of flights a search returns
const MaxSearchResults = 10

// MatchFlights filters flights by the extracted query and ranks them by departure.
// Time and date fragments are extracted but not applied. The input slice is left untouched.
func MatchFlights(query entity.SearchQuery, flights []entity.Flight) []entity.Flight {
	matched := make([]entity.Flight, 0, len(flights))
	for _, flight := range flights {
		if !matchesAirport(query.Destination, flight.Destination) {
			continue
		}
		if !matchesAirport(query.Origin, flight.Origin) {
			continue
		}
		if query.Airline != "" && !strings.Contains(strings.ToLower(flight.Airline), strings.ToLower(query.Airline)) {
			continue
		}
		matched = append(matched, flight)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DepartureTime.Before(matched[j].DepartureTime)
	})

	if len(matched) > MaxSearchResults {
		matched = matched[:MaxSearchResults]
	}
	return matched
}

// matchesAirport reports whether any keyword of fragment occurs in the code or its city
func matchesAirport(fragment, code string) bool {
	keywords := utils.SplitKeywords(strings.ToLower(fragment))
	if len(keywords) == 0 {
		return true
	}

	lowerCode := strings.ToLower(code)
	city := strings.ToLower(utils.CityName(code))
	for _, keyword := range keywords {
		if strings.Contains(lowerCode, keyword) || strings.Contains(city, keyword) {
			return true
		}
	}
	return false
}

// SearchResult is the outcome of a natural language search
type SearchResult struct {
	Query   entity.SearchQuery
	Flights []entity.Flight
}

// FlightSearchService answers natural language flight searches
type FlightSearchService struct {
	flightRepo    repository.FlightRepository
	searchLogRepo repository.SearchLogRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewFlightSearchService creates a new search service. searchLogRepo may be nil.
func NewFlightSearchService(
	flightRepo repository.FlightRepository,
	searchLogRepo repository.SearchLogRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightSearchService {
	return &FlightSearchService{
		flightRepo:    flightRepo,
		searchLogRepo: searchLogRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// Search parses text and returns the matching flights
func (s *FlightSearchService) Search(ctx context.Context, text string) (*SearchResult, error) {
	query := utils.ParseSearchQuery(text)
	if query.IsEmpty() {
		s.logger.Debug("Unfiltered flight search", "query", text)
	}

	flights, err := s.flightRepo.FindAll(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("flight_search").Inc()
		return nil, fmt.Errorf("failed to load flights: %w", err)
	}

	matched := MatchFlights(query, flights)

	s.metrics.SearchesTotal.Inc()
	s.metrics.SearchResults.Observe(float64(len(matched)))
	s.logger.Info("Flight search completed",
		"query", text,
		"destination", query.Destination,
		"origin", query.Origin,
		"airline", query.Airline,
		"results", len(matched))

	s.audit(ctx, text, query, matched)

	return &SearchResult{Query: query, Flights: matched}, nil
}

func (s *FlightSearchService) audit(ctx context.Context, text string, query entity.SearchQuery, flights []entity.Flight) {
	if s.searchLogRepo == nil {
		return
	}

	ids := make([]uint, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}

	err := s.searchLogRepo.Save(ctx, &entity.SearchLog{
		Query:       text,
		Parsed:      query,
		ResultCount: len(flights),
		FlightIDs:   ids,
		Unfiltered:  query.IsEmpty(),
		CreatedAt:   time.Now(),
	})
	if err != nil {
		// Audit trail is best-effort
		s.logger.Warn("Failed to save search log", "error", err)
	}
}
