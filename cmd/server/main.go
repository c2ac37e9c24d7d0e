package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/api/option"

	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/internal/infrastructure/config"
	"airport-ops-service/internal/infrastructure/oauth"
	"airport-ops-service/internal/infrastructure/persistence"
	"airport-ops-service/internal/interface/gemini"
	"airport-ops-service/internal/interface/httpapi"
	repo "airport-ops-service/internal/interface/repository"
	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
	"airport-ops-service/templates"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info", false).Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel, cfg.Debug)
	defer log.Sync()
	log.Info("Starting Airport Operations Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("airport_ops")

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI, cfg.Debug)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repo.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate PostgreSQL schema", "error", err)
	}

	flightRepo := repo.NewGormFlightRepository(gormDB)
	alertRepo := repo.NewGormAlertRepository(gormDB)
	runwayRepo := repo.NewGormRunwayMetricRepository(gormDB)

	// Set up MongoDB connection; transcripts and search audit are optional
	var (
		mongoStore    *persistence.MongoStore
		chatLogRepo   repository.ChatLogRepository
		searchLogRepo repository.SearchLogRepository
	)
	log.Info("Connecting to MongoDB")
	mongoStore, err = persistence.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Warn("MongoDB unavailable, chat and search logs disabled", "error", err)
	} else {
		db := mongoStore.Database()
		chatLogRepo = repo.NewMongoChatLogRepository(db)
		searchLogRepo = repo.NewMongoSearchLogRepository(db)
	}

	// Set up the AI assistant
	var (
		assistant usecase.Assistant
		analyst   usecase.RunwayAnalyst
	)
	if cfg.AssistantEnabled() {
		geminiService, err := newGeminiService(ctx, cfg, log)
		if err != nil {
			log.Warn("Gemini unavailable, using canned responses", "error", err)
		} else {
			assistant = geminiService
			analyst = geminiService
			log.Info("Gemini assistant enabled", "model", cfg.GeminiModel)
		}
	} else {
		log.Info("No Gemini credentials configured, using canned responses")
	}

	responder := templates.DefaultResponder(log)

	flightService := usecase.NewFlightService(flightRepo, log)
	searchService := usecase.NewFlightSearchService(flightRepo, searchLogRepo, m, log)
	alertService := usecase.NewAlertService(alertRepo, log)
	runwayService := usecase.NewRunwayService(runwayRepo, analyst, log)
	chatService := usecase.NewChatService(assistant, responder, chatLogRepo, m, log)

	chatLimiter := httpapi.NewIPRateLimiter(cfg.ChatRateRPS, cfg.ChatRateBurst)
	go chatLimiter.Run(ctx, 5*time.Minute)

	api := httpapi.NewServer(flightService, searchService, alertService, runwayService, chatService, m, log, httpapi.Options{
		Version:        cfg.AppVersion,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.WriteTimeout,
		ChatLimiter:    chatLimiter,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if mongoStore != nil {
		if err := mongoStore.Close(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Airport Operations Service stopped")
}

// newGeminiService authenticates with the API key, or with the OAuth refresh token when no key is set
func newGeminiService(ctx context.Context, cfg *config.Config, log logger.Logger) (*gemini.GeminiService, error) {
	var opt option.ClientOption
	if cfg.GeminiAPIKey != "" {
		opt = option.WithAPIKey(cfg.GeminiAPIKey)
	} else {
		googleOAuth := oauth.NewGoogleOAuth(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRefreshToken,
			"",
			log,
		)
		opt = option.WithTokenSource(googleOAuth.GetTokenSource(ctx))
	}

	return gemini.NewGeminiService(ctx, cfg.GeminiModel, cfg.AssistantTimeout, log, opt)
}
