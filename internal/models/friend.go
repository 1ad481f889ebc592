package models

import "time"

// FriendStatus is the state of a friend relationship
type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "pending"
	FriendStatusApproved FriendStatus = "approved"
)

// Friend represents a friend request and, once approved, the friendship itself
type Friend struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	RequestorID string       `json:"requestor_id" bson:"requestor_id"`
	RequesteeID string       `json:"requestee_id" bson:"requestee_id"`
	Status      FriendStatus `json:"status" bson:"status"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}

// CreateFriendRequest defines the request body for sending a friend request
type CreateFriendRequest struct {
	RequesteeID string `json:"requestee_id" validate:"required"`
}
