package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a platform account. The id is the user's wallet public
// address in 0x-prefixed hex, so there is no separate wallet column.
type User struct {
	ID                string    `json:"id" bson:"_id"`
	Name              string    `json:"name" bson:"name"`
	Username          string    `json:"username,omitempty" bson:"username,omitempty"`
	Bio               string    `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty" bson:"profile_picture_url,omitempty"`
	FCMTokens         []string  `json:"fcm_tokens,omitempty" bson:"fcm_tokens,omitempty"`
	Nonce             int64     `json:"-" bson:"nonce"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateUserRequest defines the request body for creating a new user
type CreateUserRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=2,max=50"`
	Bio  string `json:"bio,omitempty" validate:"omitempty,max=160"`
}

// UpdateUserRequest defines the request body for updating an existing user
type UpdateUserRequest struct {
	Name              string   `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio               string   `json:"bio,omitempty" validate:"omitempty,max=160"`
	ProfilePictureURL string   `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	FCMTokens         []string `json:"fcm_tokens,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
