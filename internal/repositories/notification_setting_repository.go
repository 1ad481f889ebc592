package repositories

import (
	"context"

	"github.com/raihankalla/myriad-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationSettingRepository defines the interface for notification
// setting operations
type NotificationSettingRepository interface {
	// GetByUserID returns nil (not an error) when the user has no settings
	// document.
	GetByUserID(ctx context.Context, userID string) (*models.NotificationSetting, error)
	Upsert(ctx context.Context, setting *models.NotificationSetting) error
}

// MongoNotificationSettingRepository implements
// NotificationSettingRepository for MongoDB
type MongoNotificationSettingRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationSettingRepository creates a new
// MongoNotificationSettingRepository
func NewMongoNotificationSettingRepository(db *mongo.Database) *MongoNotificationSettingRepository {
	return &MongoNotificationSettingRepository{collection: db.Collection("notification_settings")}
}

// GetByUserID retrieves a user's notification settings
func (r *MongoNotificationSettingRepository) GetByUserID(ctx context.Context, userID string) (*models.NotificationSetting, error) {
	var setting models.NotificationSetting
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&setting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert creates or replaces a user's notification settings
func (r *MongoNotificationSettingRepository) Upsert(ctx context.Context, setting *models.NotificationSetting) error {
	if setting.ID == "" {
		setting.ID = primitive.NewObjectID().Hex()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": setting.UserID}, setting, opts)
	return err
}
