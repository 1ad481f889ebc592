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

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReportByID(ctx context.Context, id string) (*models.Report, error)
	GetReportByReference(ctx context.Context, referenceType models.ReferenceType, referenceID string) (*models.Report, error)
	UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) error
}

// UserReportRepository defines the interface for reporter-link operations
type UserReportRepository interface {
	CreateUserReport(ctx context.Context, userReport *models.UserReport) error
	GetUserReportsByReportID(ctx context.Context, reportID string) ([]models.UserReport, error)
}

// MongoReportRepository implements ReportRepository for MongoDB
type MongoReportRepository struct {
	collection *mongo.Collection
}

// NewMongoReportRepository creates a new MongoReportRepository
func NewMongoReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{collection: db.Collection("reports")}
}

// CreateReport creates a new report with status pending
func (r *MongoReportRepository) CreateReport(ctx context.Context, report *models.Report) error {
	report.ID = primitive.NewObjectID().Hex()
	report.Status = models.ReportStatusPending
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// GetReportByID retrieves a report by id
func (r *MongoReportRepository) GetReportByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &report, nil
}

// GetReportByReference retrieves the open report for a given subject, or nil
// when none exists.
func (r *MongoReportRepository) GetReportByReference(ctx context.Context, referenceType models.ReferenceType, referenceID string) (*models.Report, error) {
	var report models.Report
	filter := bson.M{"reference_type": referenceType, "reference_id": referenceID}
	err := r.collection.FindOne(ctx, filter).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// UpdateReportStatus updates a report's adjudication status
func (r *MongoReportRepository) UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return nil
}

// MongoUserReportRepository implements UserReportRepository for MongoDB
type MongoUserReportRepository struct {
	collection *mongo.Collection
}

// NewMongoUserReportRepository creates a new MongoUserReportRepository
func NewMongoUserReportRepository(db *mongo.Database) *MongoUserReportRepository {
	return &MongoUserReportRepository{collection: db.Collection("user_reports")}
}

// CreateUserReport links a reporter to a report
func (r *MongoUserReportRepository) CreateUserReport(ctx context.Context, userReport *models.UserReport) error {
	userReport.ID = primitive.NewObjectID().Hex()
	userReport.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, userReport)
	return err
}

// GetUserReportsByReportID retrieves all reporter links for a report
func (r *MongoUserReportRepository) GetUserReportsByReportID(ctx context.Context, reportID string) ([]models.UserReport, error) {
	var userReports []models.UserReport
	cursor, err := r.collection.Find(ctx, bson.M{"report_id": reportID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &userReports); err != nil {
		return nil, err
	}
	return userReports, nil
}
