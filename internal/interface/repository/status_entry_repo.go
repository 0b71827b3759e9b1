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

// MongoStatusEntryRepository implements the StatusEntryRepository interface
type MongoStatusEntryRepository struct {
	collection *mongo.Collection
}

// NewMongoStatusEntryRepository creates a new MongoDB worksheet repository
func NewMongoStatusEntryRepository(db *mongo.Database) repository.StatusEntryRepository {
	collection := db.Collection("statusEntries")

	ctx := context.Background()

	// Index on transportDate for the daily filter
	dateIndex := mongo.IndexModel{
		Keys: bson.M{"transportDate": 1},
	}

	// Index on status for report partitioning
	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		dateIndex,
		statusIndex,
	})

	return &MongoStatusEntryRepository{
		collection: collection,
	}
}

// List returns all worksheet rows
func (r *MongoStatusEntryRepository) List(ctx context.Context) ([]entity.StatusEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list status entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []entity.StatusEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode status entries: %w", err)
	}
	return entries, nil
}

// Create inserts one worksheet row and returns its id
func (r *MongoStatusEntryRepository) Create(ctx context.Context, entry entity.StatusEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	if entry.Status == "" {
		entry.Status = entity.StatusPendente
	}

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("failed to insert status entry: %w", err)
	}
	return entry.ID, nil
}

// CreateBatch inserts entries one by one and reports how many made it in
func (r *MongoStatusEntryRepository) CreateBatch(ctx context.Context, entries []entity.StatusEntry) (int, error) {
	for i := range entries {
		if _, err := r.Create(ctx, entries[i]); err != nil {
			return i, fmt.Errorf("failed to insert entry %d of %d: %w", i+1, len(entries), err)
		}
	}
	return len(entries), nil
}

// Update applies a partial field update to one row
func (r *MongoStatusEntryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to update status entry: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no status entry found with id: %s", id)
	}
	return nil
}

// Delete removes one row. Deleting a row never touches its source
// transport record.
func (r *MongoStatusEntryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete status entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no status entry found with id: %s", id)
	}
	return nil
}
