package repository

import (
	"context"
	"errors"
	"fmt"

	"transcontrol-service/internal/domain/entity"
	"transcontrol-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPreRegistrationRepository implements PreRegistrationRepository.
// The collection is expected to hold a single document; reads take the
// first one found. Two racing first writes can still create duplicates;
// last write wins.
type MongoPreRegistrationRepository struct {
	collection *mongo.Collection
}

// NewMongoPreRegistrationRepository creates a new suggestion-list repository
func NewMongoPreRegistrationRepository(db *mongo.Database) repository.PreRegistrationRepository {
	return &MongoPreRegistrationRepository{
		collection: db.Collection("preRegistration"),
	}
}

// Get returns the singleton document, or an all-empty default when absent
func (r *MongoPreRegistrationRepository) Get(ctx context.Context) (*entity.PreRegistrationData, error) {
	var data entity.PreRegistrationData
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.EmptyPreRegistrationData(), nil
		}
		return nil, fmt.Errorf("failed to read pre-registration data: %w", err)
	}
	return &data, nil
}

// Save creates the singleton if absent, otherwise updates it in place
func (r *MongoPreRegistrationRepository) Save(ctx context.Context, data *entity.PreRegistrationData) error {
	var existing entity.PreRegistrationData
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&existing)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("failed to read pre-registration data: %w", err)
		}
		data.ID = primitive.NewObjectID().Hex()
		if _, err := r.collection.InsertOne(ctx, data); err != nil {
			return fmt.Errorf("failed to create pre-registration data: %w", err)
		}
		return nil
	}

	update := bson.M{"$set": bson.M{
		"operations":   data.Operations,
		"numbers":      data.Numbers,
		"industries":   data.Industries,
		"origins":      data.Origins,
		"destinations": data.Destinations,
		"plates":       data.Plates,
		"drivers":      data.Drivers,
	}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": existing.ID}, update); err != nil {
		return fmt.Errorf("failed to update pre-registration data: %w", err)
	}
	return nil
}
