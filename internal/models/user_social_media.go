package models

import "time"

// UserSocialMedia links a platform user to a verified external identity
type UserSocialMedia struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	UserID    string       `json:"user_id" bson:"user_id"`
	Platform  PlatformType `json:"platform" bson:"platform"`
	PeopleID  string       `json:"people_id" bson:"people_id"`
	Verified  bool         `json:"verified" bson:"verified"`
	Primary   bool         `json:"primary" bson:"primary"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

// CreateUserSocialMediaRequest defines the request body for connecting a
// social media account
type CreateUserSocialMediaRequest struct {
	Platform PlatformType `json:"platform" validate:"required,oneof=twitter reddit facebook"`
	PeopleID string       `json:"people_id" validate:"required"`
}
