package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/raihankalla/myriad-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Transaction, error)
}

// MongoTransactionRepository implements TransactionRepository for MongoDB
type MongoTransactionRepository struct {
	collection *mongo.Collection
}

// NewMongoTransactionRepository creates a new MongoTransactionRepository
func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{collection: db.Collection("transactions")}
}

// CreateTransaction records a completed transaction
func (r *MongoTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	transaction.ID = primitive.NewObjectID().Hex()
	transaction.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, transaction)
	return err
}

// GetTransactionByID retrieves a transaction by id
func (r *MongoTransactionRepository) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &transaction, nil
}

// GetTransactionsByUser retrieves transactions a user sent or received
func (r *MongoTransactionRepository) GetTransactionsByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	filter := bson.M{"$or": bson.A{bson.M{"from": userID}, bson.M{"to": userID}}}
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
