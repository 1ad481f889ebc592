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

// UserSocialMediaRepository defines the interface for social-media link
// operations
type UserSocialMediaRepository interface {
	CreateUserSocialMedia(ctx context.Context, usm *models.UserSocialMedia) error
	GetUserSocialMediaByID(ctx context.Context, id string) (*models.UserSocialMedia, error)
	GetUserSocialMediaByPeopleID(ctx context.Context, peopleID string) (*models.UserSocialMedia, error)
	GetUserSocialMediaByUserID(ctx context.Context, userID string) ([]models.UserSocialMedia, error)
	DeleteUserSocialMedia(ctx context.Context, id string) error
}

// MongoUserSocialMediaRepository implements UserSocialMediaRepository for
// MongoDB
type MongoUserSocialMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoUserSocialMediaRepository creates a new MongoUserSocialMediaRepository
func NewMongoUserSocialMediaRepository(db *mongo.Database) *MongoUserSocialMediaRepository {
	return &MongoUserSocialMediaRepository{collection: db.Collection("user_social_medias")}
}

// CreateUserSocialMedia creates a new social-media link
func (r *MongoUserSocialMediaRepository) CreateUserSocialMedia(ctx context.Context, usm *models.UserSocialMedia) error {
	usm.ID = primitive.NewObjectID().Hex()
	usm.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, usm)
	return err
}

// GetUserSocialMediaByID retrieves a social-media link by id
func (r *MongoUserSocialMediaRepository) GetUserSocialMediaByID(ctx context.Context, id string) (*models.UserSocialMedia, error) {
	var usm models.UserSocialMedia
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&usm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user social media %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &usm, nil
}

// GetUserSocialMediaByPeopleID retrieves the link claiming an external
// identity, or nil when the identity is unclaimed.
func (r *MongoUserSocialMediaRepository) GetUserSocialMediaByPeopleID(ctx context.Context, peopleID string) (*models.UserSocialMedia, error) {
	var usm models.UserSocialMedia
	err := r.collection.FindOne(ctx, bson.M{"people_id": peopleID}).Decode(&usm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &usm, nil
}

// GetUserSocialMediaByUserID retrieves all social-media links of a user
func (r *MongoUserSocialMediaRepository) GetUserSocialMediaByUserID(ctx context.Context, userID string) ([]models.UserSocialMedia, error) {
	var usms []models.UserSocialMedia
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &usms); err != nil {
		return nil, err
	}
	return usms, nil
}

// DeleteUserSocialMedia deletes a social-media link by id
func (r *MongoUserSocialMediaRepository) DeleteUserSocialMedia(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user social media %s: %w", id, ErrNotFound)
	}
	return nil
}
