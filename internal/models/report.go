package models

import "time"

// ReportStatus is the adjudication state of a report
type ReportStatus string

const (
	ReportStatusPending ReportStatus = "pending"
	ReportStatusIgnored ReportStatus = "ignored"
	ReportStatusRemoved ReportStatus = "removed"
)

// Report represents a moderation report against a user, post or comment
type Report struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	ReferenceType ReferenceType `json:"reference_type" bson:"reference_type"`
	ReferenceID   string        `json:"reference_id" bson:"reference_id"`
	Reason        string        `json:"reason,omitempty" bson:"reason,omitempty"`
	Status        ReportStatus  `json:"status" bson:"status"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// UserReport links a reporter to a report so every reporter can be told the
// outcome
type UserReport struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ReportID   string    `json:"report_id" bson:"report_id"`
	ReportedBy string    `json:"reported_by" bson:"reported_by"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// CreateReportRequest defines the request body for filing a report
type CreateReportRequest struct {
	ReferenceType ReferenceType `json:"reference_type" validate:"required,oneof=post comment user"`
	ReferenceID   string        `json:"reference_id" validate:"required"`
	Reason        string        `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// UpdateReportRequest defines the request body for adjudicating a report
type UpdateReportRequest struct {
	Status ReportStatus `json:"status" validate:"required,oneof=pending ignored removed"`
}
