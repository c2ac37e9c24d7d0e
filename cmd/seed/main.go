package main

import (
	"context"
	"flag"
	"time"

	"airport-ops-service/internal/infrastructure/config"
	"airport-ops-service/internal/infrastructure/persistence"
	repo "airport-ops-service/internal/interface/repository"
	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "overall seeding timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info", false).Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLogger(cfg.LogLevel, cfg.Debug)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI, cfg.Debug)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repo.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate PostgreSQL schema", "error", err)
	}

	seeder := usecase.NewSeeder(
		repo.NewGormFlightRepository(gormDB),
		repo.NewGormAlertRepository(gormDB),
		repo.NewGormRunwayMetricRepository(gormDB),
		log,
	)

	summary, err := seeder.SeedIfEmpty(ctx, time.Now())
	if err != nil {
		log.Fatal("Seeding failed", "error", err)
	}

	log.Info("Seeding finished",
		"flights", summary.Flights,
		"alerts", summary.Alerts,
		"runwayMetrics", summary.RunwayMetrics)
}
