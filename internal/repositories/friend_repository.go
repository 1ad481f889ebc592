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

// FriendRepository defines the interface for friend data operations
type FriendRepository interface {
	CreateFriend(ctx context.Context, friend *models.Friend) error
	GetFriendByID(ctx context.Context, id string) (*models.Friend, error)
	GetFriendByUsers(ctx context.Context, requestorID, requesteeID string) (*models.Friend, error)
	GetFriendsByUserID(ctx context.Context, userID string, status models.FriendStatus) ([]models.Friend, error)
	UpdateFriendStatus(ctx context.Context, id string, status models.FriendStatus) error
	DeleteFriend(ctx context.Context, id string) error
}

// MongoFriendRepository implements FriendRepository for MongoDB
type MongoFriendRepository struct {
	collection *mongo.Collection
}

// NewMongoFriendRepository creates a new MongoFriendRepository
func NewMongoFriendRepository(db *mongo.Database) *MongoFriendRepository {
	return &MongoFriendRepository{collection: db.Collection("friends")}
}

// CreateFriend creates a new friend request with status pending
func (r *MongoFriendRepository) CreateFriend(ctx context.Context, friend *models.Friend) error {
	friend.ID = primitive.NewObjectID().Hex()
	friend.Status = models.FriendStatusPending
	friend.CreatedAt = time.Now()
	friend.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, friend)
	return err
}

// GetFriendByID retrieves a friend record by id
func (r *MongoFriendRepository) GetFriendByID(ctx context.Context, id string) (*models.Friend, error) {
	var friend models.Friend
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&friend)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("friend %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &friend, nil
}

// GetFriendByUsers retrieves the friend record between two users regardless
// of direction, or nil when none exists.
func (r *MongoFriendRepository) GetFriendByUsers(ctx context.Context, requestorID, requesteeID string) (*models.Friend, error) {
	var friend models.Friend
	filter := bson.M{"$or": bson.A{
		bson.M{"requestor_id": requestorID, "requestee_id": requesteeID},
		bson.M{"requestor_id": requesteeID, "requestee_id": requestorID},
	}}
	err := r.collection.FindOne(ctx, filter).Decode(&friend)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &friend, nil
}

// GetFriendsByUserID retrieves all friend records a user participates in with
// the given status
func (r *MongoFriendRepository) GetFriendsByUserID(ctx context.Context, userID string, status models.FriendStatus) ([]models.Friend, error) {
	var friends []models.Friend
	filter := bson.M{
		"status": status,
		"$or": bson.A{
			bson.M{"requestor_id": userID},
			bson.M{"requestee_id": userID},
		},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// UpdateFriendStatus updates a friend record's status
func (r *MongoFriendRepository) UpdateFriendStatus(ctx context.Context, id string, status models.FriendStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("friend %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteFriend deletes a friend record by id
func (r *MongoFriendRepository) DeleteFriend(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("friend %s: %w", id, ErrNotFound)
	}
	return nil
}
