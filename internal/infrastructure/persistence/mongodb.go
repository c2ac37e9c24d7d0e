package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// MongoStore is a connected MongoDB client bound to one database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri, pings the primary and binds the named database.
// Credentials are only applied when both are set; the URI may carry its own.
func OpenMongo(ctx context.Context, uri, database, username, password string) (*MongoStore, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName("airport-ops-service").
		SetServerSelectionTimeout(mongoConnectTimeout)

	if username != "" && password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: username,
			Password: password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Database returns the bound database
func (s *MongoStore) Database() *mongo.Database {
	return s.db
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
