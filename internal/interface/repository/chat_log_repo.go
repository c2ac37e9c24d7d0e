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

// MongoChatLogRepository implements ChatLogRepository
type MongoChatLogRepository struct {
	collection *mongo.Collection
}

// NewMongoChatLogRepository creates a new chat log repository
func NewMongoChatLogRepository(db *mongo.Database) repository.ChatLogRepository {
	collection := db.Collection("chat_logs")

	// Session transcripts are read in chronological order
	ctx := context.Background()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sessionId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
	})

	return &MongoChatLogRepository{
		collection: collection,
	}
}

// Save inserts a chat exchange
func (r *MongoChatLogRepository) Save(ctx context.Context, log *entity.ChatLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// FindBySession returns the oldest-first transcript of a session
func (r *MongoChatLogRepository) FindBySession(ctx context.Context, sessionID string, limit int) ([]*entity.ChatLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*entity.ChatLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
