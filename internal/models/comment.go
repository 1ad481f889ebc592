package models

import "time"

// MentionUser is a user referenced inside a comment's text
type MentionUser struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Username string `json:"username,omitempty" bson:"username,omitempty"`
}

// Comment represents a comment attached either directly to a post
// (Type == RefPost) or to another comment (Type == RefComment, with
// ReferenceID pointing at the parent comment). PostID always carries the id
// of the originating post.
type Comment struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Type        ReferenceType `json:"type" bson:"type"`
	ReferenceID string        `json:"reference_id" bson:"reference_id"`
	PostID      string        `json:"post_id" bson:"post_id"`
	UserID      string        `json:"user_id" bson:"user_id"`
	Text        string        `json:"text" bson:"text"`
	Mentions    []MentionUser `json:"mentions,omitempty" bson:"mentions,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Type        ReferenceType `json:"type" validate:"required,oneof=post comment"`
	ReferenceID string        `json:"reference_id" validate:"required"`
	PostID      string        `json:"post_id" validate:"required"`
	Text        string        `json:"text" validate:"required,min=1,max=1000"`
	Mentions    []MentionUser `json:"mentions,omitempty"`
}
