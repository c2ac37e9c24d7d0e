package repository

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"airport-ops-service/internal/infrastructure/persistence"
)

// base is truncated because postgres stores microseconds
var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	pgOnce      sync.Once
	pgContainer *postgres.PostgresContainer
	pgDB        *gorm.DB
	pgErr       error

	mongoOnce      sync.Once
	mongoContainer testcontainers.Container
	mongoStore     *persistence.MongoStore
	mongoErr       error
)

func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()
	if mongoStore != nil {
		mongoStore.Close(ctx)
	}
	if mongoContainer != nil {
		if err := mongoContainer.Terminate(ctx); err != nil {
			log.Printf("error tearing down mongo container: %v", err)
		}
	}
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("error tearing down postgres container: %v", err)
		}
	}
	os.Exit(code)
}

// newTestDB starts a shared postgres container on first use and empties the tables
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	pgOnce.Do(func() {
		ctx := context.Background()
		pgContainer, pgErr = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("airport_ops"),
			postgres.WithUsername("user"),
			postgres.WithPassword("password"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if pgErr != nil {
			return
		}

		var dsn string
		dsn, pgErr = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if pgErr != nil {
			return
		}
		pgDB, pgErr = persistence.NewPostgresDB(dsn, false)
		if pgErr != nil {
			return
		}
		pgErr = AutoMigrate(pgDB)
	})
	require.NoError(t, pgErr, "failed to start postgres")

	require.NoError(t, pgDB.Exec("TRUNCATE flights, alerts, runway_metrics RESTART IDENTITY").Error)
	return pgDB
}

// newTestMongo starts a shared mongo container on first use and returns an emptied database
func newTestMongo(t *testing.T) *mongo.Database {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	mongoOnce.Do(func() {
		ctx := context.Background()
		mongoContainer, mongoErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{"27017/tcp"},
				WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if mongoErr != nil {
			return
		}

		var uri string
		uri, mongoErr = mongoContainer.PortEndpoint(ctx, "27017/tcp", "mongodb")
		if mongoErr != nil {
			return
		}
		mongoStore, mongoErr = persistence.OpenMongo(ctx, uri, "airport_ops_test", "", "")
	})
	require.NoError(t, mongoErr, "failed to start mongo")

	db := mongoStore.Database()
	require.NoError(t, db.Drop(context.Background()))
	return db
}
