package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/raihankalla/myriad-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PeopleRepository defines the interface for external-identity data operations
type PeopleRepository interface {
	CreatePeople(ctx context.Context, people *models.People) error
	GetPeopleByID(ctx context.Context, id string) (*models.People, error)
	UpdateWalletAddressPassword(ctx context.Context, id, password string) error
}

// MongoPeopleRepository implements PeopleRepository for MongoDB
type MongoPeopleRepository struct {
	collection *mongo.Collection
}

// NewMongoPeopleRepository creates a new MongoPeopleRepository
func NewMongoPeopleRepository(db *mongo.Database) *MongoPeopleRepository {
	return &MongoPeopleRepository{collection: db.Collection("people")}
}

// CreatePeople creates a new external-identity record
func (r *MongoPeopleRepository) CreatePeople(ctx context.Context, people *models.People) error {
	people.ID = primitive.NewObjectID().Hex()
	people.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, people)
	return err
}

// GetPeopleByID retrieves an external identity by id
func (r *MongoPeopleRepository) GetPeopleByID(ctx context.Context, id string) (*models.People, error) {
	var people models.People
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&people)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("people %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &people, nil
}

// UpdateWalletAddressPassword stores the hashed escrow wallet password
func (r *MongoPeopleRepository) UpdateWalletAddressPassword(ctx context.Context, id, password string) error {
	update := bson.M{"$set": bson.M{"wallet_address_password": password}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("people %s: %w", id, ErrNotFound)
	}
	return nil
}
