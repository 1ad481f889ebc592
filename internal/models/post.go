package models

import "time"

// PlatformType identifies where a post originally came from
type PlatformType string

const (
	PlatformMyriad   PlatformType = "myriad"
	PlatformTwitter  PlatformType = "twitter"
	PlatformReddit   PlatformType = "reddit"
	PlatformFacebook PlatformType = "facebook"
)

// Post represents a social media post. Imported posts carry the id of the
// People record of their original author.
type Post struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	CreatedBy string       `json:"created_by" bson:"created_by"`
	Platform  PlatformType `json:"platform" bson:"platform"`
	PeopleID  string       `json:"people_id,omitempty" bson:"people_id,omitempty"`
	Title     string       `json:"title,omitempty" bson:"title,omitempty"`
	Text      string       `json:"text" bson:"text"`
	Tags      []string     `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Text  string   `json:"text" validate:"required,min=1,max=5000"`
	Tags  []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Text  string   `json:"text,omitempty" validate:"omitempty,min=1,max=5000"`
	Tags  []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}
