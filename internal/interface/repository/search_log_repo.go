package repository

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSearchLogRepository implements SearchLogRepository
type MongoSearchLogRepository struct {
	collection *mongo.Collection
}

// NewMongoSearchLogRepository creates a new search audit repository
func NewMongoSearchLogRepository(db *mongo.Database) repository.SearchLogRepository {
	collection := db.Collection("search_logs")

	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"createdAt": -1}},
		{Keys: bson.M{"parsed.destination": 1}},
	})

	return &MongoSearchLogRepository{
		collection: collection,
	}
}

// Save inserts a search audit record
func (r *MongoSearchLogRepository) Save(ctx context.Context, log *entity.SearchLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// Recent returns the latest searches, newest first
func (r *MongoSearchLogRepository) Recent(ctx context.Context, limit int) ([]*entity.SearchLog, error) {
	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*entity.SearchLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
