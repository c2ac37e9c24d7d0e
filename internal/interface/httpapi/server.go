package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Version        string
	AllowedOrigins []string
	RequestTimeout time.Duration
	ChatLimiter    *IPRateLimiter
	// Gatherer serves /metrics; defaults to the global registry
	Gatherer prometheus.Gatherer
}

// Server holds the services behind the HTTP API
type Server struct {
	flights FlightService
	search  FlightSearcher
	alerts  AlertService
	runways RunwayService
	chat    ChatService
	metrics *metrics.Metrics
	logger  logger.Logger
	opts    Options
}

// NewServer creates a new API server
func NewServer(
	flights FlightService,
	search FlightSearcher,
	alerts AlertService,
	runways RunwayService,
	chat ChatService,
	metrics *metrics.Metrics,
	logger logger.Logger,
	opts Options,
) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	return &Server{
		flights: flights,
		search:  search,
		alerts:  alerts,
		runways: runways,
		chat:    chat,
		metrics: metrics,
		logger:  logger,
		opts:    opts,
	}
}

// Routes builds the chi router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger, s.metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors(s.opts.AllowedOrigins))
	r.Use(middleware.Timeout(s.opts.RequestTimeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/flights", func(r chi.Router) {
			r.Get("/", s.handleListFlights)
			r.Post("/search/nlp", s.handleSearchFlights)
			r.Get("/statistics/overview", s.handleFlightStatistics)
			r.Get("/upcoming/{hours}", s.handleUpcomingFlights)
			r.Get("/delayed/all", s.handleDelayedFlights)
			r.Get("/recent/today", s.handleTodayFlights)
			r.Get("/{id}", s.handleGetFlight)
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", s.handleListAlerts)
			r.Get("/active/all", s.handleActiveAlerts)
			r.Get("/critical/all", s.handleCriticalAlerts)
			r.Get("/statistics/overview", s.handleAlertStatistics)
			r.Get("/recent/{hours}", s.handleRecentAlerts)
			r.Post("/{id}/resolve", s.handleResolveAlert)
		})

		r.Route("/runways", func(r chi.Router) {
			r.Get("/", s.handleListRunwayMetrics)
			r.Get("/status/current", s.handleRunwayStatus)
			r.Get("/statistics/overview", s.handleRunwayStatistics)
			r.Get("/optimization/recommendations", s.handleRunwayRecommendations)
			r.Get("/{runway}/trends", s.handleRunwayTrends)
			r.Get("/{runway}/peak-hours", s.handleRunwayPeakHours)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/sessions/{sessionID}", s.handleChatHistory)
			r.Group(func(r chi.Router) {
				if s.opts.ChatLimiter != nil {
					r.Use(s.opts.ChatLimiter.Middleware)
				}
				r.Post("/message", s.handleChatMessage)
			})
		})
	})

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Airport Operations API",
		"version": s.opts.Version,
		"status":  "running",
		"endpoints": map[string]string{
			"flights": "/api/v1/flights",
			"alerts":  "/api/v1/alerts",
			"runways": "/api/v1/runways",
			"chat":    "/api/v1/chat",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "airport-ops-api",
		"version": s.opts.Version,
	})
}
