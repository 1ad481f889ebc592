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

// VoteRepository defines the interface for vote data operations
type VoteRepository interface {
	CreateVote(ctx context.Context, vote *models.Vote) error
	GetVoteByID(ctx context.Context, id string) (*models.Vote, error)
	GetVoteByUserAndReference(ctx context.Context, userID, referenceID string) (*models.Vote, error)
	DeleteVote(ctx context.Context, id string) error
}

// MongoVoteRepository implements VoteRepository for MongoDB
type MongoVoteRepository struct {
	collection *mongo.Collection
}

// NewMongoVoteRepository creates a new MongoVoteRepository
func NewMongoVoteRepository(db *mongo.Database) *MongoVoteRepository {
	return &MongoVoteRepository{collection: db.Collection("votes")}
}

// CreateVote creates a new vote
func (r *MongoVoteRepository) CreateVote(ctx context.Context, vote *models.Vote) error {
	vote.ID = primitive.NewObjectID().Hex()
	vote.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, vote)
	return err
}

// GetVoteByID retrieves a vote by id
func (r *MongoVoteRepository) GetVoteByID(ctx context.Context, id string) (*models.Vote, error) {
	var vote models.Vote
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vote)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vote %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &vote, nil
}

// GetVoteByUserAndReference retrieves a user's existing vote on a target, or
// nil when the user has not voted.
func (r *MongoVoteRepository) GetVoteByUserAndReference(ctx context.Context, userID, referenceID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "reference_id": referenceID}).Decode(&vote)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// DeleteVote deletes a vote by id
func (r *MongoVoteRepository) DeleteVote(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("vote %s: %w", id, ErrNotFound)
	}
	return nil
}
