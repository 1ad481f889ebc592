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

// NotificationFilter narrows FindOneNotification. Zero-valued fields are
// ignored.
type NotificationFilter struct {
	Type        models.NotificationType
	From        string
	To          string
	ReferenceID string
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (*models.Notification, error)
	CreateNotifications(ctx context.Context, notifications []models.Notification) ([]models.Notification, error)
	FindOneNotification(ctx context.Context, filter NotificationFilter) (*models.Notification, error)
	GetByRecipientID(ctx context.Context, recipientID string, skip, limit int64) ([]models.Notification, int64, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	MarkAllAsRead(ctx context.Context, recipientID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
}

// MongoNotificationRepository implements NotificationRepository for MongoDB
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications")}
}

// CreateNotification persists a single notification and returns the stored
// record
func (r *MongoNotificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	notification.ID = primitive.NewObjectID().Hex()
	notification.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// CreateNotifications persists a batch of notifications in one call and
// returns the stored records
func (r *MongoNotificationRepository) CreateNotifications(ctx context.Context, notifications []models.Notification) ([]models.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	now := time.Now()
	docs := make([]interface{}, len(notifications))
	for i := range notifications {
		notifications[i].ID = primitive.NewObjectID().Hex()
		notifications[i].CreatedAt = now
		docs[i] = notifications[i]
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return notifications, nil
}

// FindOneNotification retrieves the first notification matching the filter,
// or nil when none matches.
func (r *MongoNotificationRepository) FindOneNotification(ctx context.Context, filter NotificationFilter) (*models.Notification, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.From != "" {
		query["from"] = filter.From
	}
	if filter.To != "" {
		query["to"] = filter.To
	}
	if filter.ReferenceID != "" {
		query["reference_id"] = filter.ReferenceID
	}

	var notification models.Notification
	err := r.collection.FindOne(ctx, query).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// GetByRecipientID returns paginated notifications for a recipient, newest
// first, along with the total count
func (r *MongoNotificationRepository) GetByRecipientID(ctx context.Context, recipientID string, skip, limit int64) ([]models.Notification, int64, error) {
	filter := bson.M{"to": recipientID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// GetUnreadCount returns the unread notification count for a recipient
func (r *MongoNotificationRepository) GetUnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"to": recipientID, "read": false})
}

// MarkAsRead marks a notification as read
func (r *MongoNotificationRepository) MarkAsRead(ctx context.Context, notificationID string) error {
	update := bson.M{"$set": bson.M{"read": true}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": notificationID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, ErrNotFound)
	}
	return nil
}

// MarkAllAsRead marks all of a recipient's notifications as read
func (r *MongoNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID string) error {
	update := bson.M{"$set": bson.M{"read": true}}
	_, err := r.collection.UpdateMany(ctx, bson.M{"to": recipientID, "read": false}, update)
	return err
}

// DeleteNotification deletes a notification by id. Used to retract a pending
// friend-request notification on cancellation.
func (r *MongoNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": notificationID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, ErrNotFound)
	}
	return nil
}
