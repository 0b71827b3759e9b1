package repository

import (
	"context"
	"fmt"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTransportRepository implements TransportRepository
type MongoTransportRepository struct {
	collection *mongo.Collection
}

// NewMongoTransportRepository creates a new transport record repository
func NewMongoTransportRepository(db *mongo.Database) repository.TransportRepository {
	collection := db.Collection("transports")

	ctx := context.Background()
	sapIndex := mongo.IndexModel{
		Keys: bson.M{"transportSap": 1},
	}
	collection.Indexes().CreateOne(ctx, sapIndex)

	return &MongoTransportRepository{
		collection: collection,
	}
}

// List returns all imported transport records
func (r *MongoTransportRepository) List(ctx context.Context) ([]entity.TransportRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transports: %w", err)
	}
	defer cursor.Close(ctx)

	var records []entity.TransportRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode transports: %w", err)
	}
	return records, nil
}

// CreateBatch inserts records one by one and reports how many made it in.
// Import has no rollback: whatever was written before a failure stays.
func (r *MongoTransportRepository) CreateBatch(ctx context.Context, records []entity.TransportRecord) (int, error) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = primitive.NewObjectID().Hex()
		}
		if _, err := r.collection.InsertOne(ctx, records[i]); err != nil {
			return i, fmt.Errorf("failed to insert transport %d of %d: %w", i+1, len(records), err)
		}
	}
	return len(records), nil
}

// DeleteAll drops every imported record (bulk collection reset)
func (r *MongoTransportRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to reset transports: %w", err)
	}
	return nil
}
