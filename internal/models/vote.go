package models

import "time"

// Vote represents an up/down vote on a post or comment. State true is an
// upvote, false a downvote.
type Vote struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Type        ReferenceType `json:"type" bson:"type"`
	ReferenceID string        `json:"reference_id" bson:"reference_id"`
	PostID      string        `json:"post_id" bson:"post_id"`
	UserID      string        `json:"user_id" bson:"user_id"`
	State       bool          `json:"state" bson:"state"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}

// CreateVoteRequest defines the request body for casting a vote
type CreateVoteRequest struct {
	Type        ReferenceType `json:"type" validate:"required,oneof=post comment"`
	ReferenceID string        `json:"reference_id" validate:"required"`
	PostID      string        `json:"post_id" validate:"required"`
	State       *bool         `json:"state" validate:"required"`
}
