package repository

import (
	"context"
	"fmt"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepository implements the ScheduleRepository interface
type MongoScheduleRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduleRepository creates a new MongoDB schedule repository
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	collection := db.Collection("schedules")

	ctx := context.Background()

	// Index on date for the daily view and the title count query
	dateIndex := mongo.IndexModel{
		Keys: bson.M{"date": 1},
	}

	// Index on createdAt for newest-first listing
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		dateIndex,
		createdAtIndex,
	})

	return &MongoScheduleRepository{
		collection: collection,
	}
}

// List returns all schedules, newest first
func (r *MongoScheduleRepository) List(ctx context.Context) ([]entity.Schedule, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []entity.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

// FindByID finds one schedule by id
func (r *MongoScheduleRepository) FindByID(ctx context.Context, id string) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to find schedule %s: %w", id, err)
	}
	return &schedule, nil
}

// CountByDate counts the schedules already present for a calendar date
func (r *MongoScheduleRepository) CountByDate(ctx context.Context, date string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("failed to count schedules for %s: %w", date, err)
	}
	return int(count), nil
}

// Create inserts a schedule and returns its id
func (r *MongoScheduleRepository) Create(ctx context.Context, schedule entity.Schedule) (string, error) {
	if schedule.ID == "" {
		schedule.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		return "", fmt.Errorf("failed to insert schedule: %w", err)
	}
	return schedule.ID, nil
}

// ReplaceVehicles rewrites the embedded vehicle list of one schedule
func (r *MongoScheduleRepository) ReplaceVehicles(ctx context.Context, id string, vehicles []entity.VehicleAssignment) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"vehicles": vehicles}},
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule vehicles: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no schedule found with id: %s", id)
	}
	return nil
}

// Delete removes one schedule wholesale
func (r *MongoScheduleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no schedule found with id: %s", id)
	}
	return nil
}
