package models

// NotificationSetting holds a user's notification toggles, one document per
// user. A user without a document receives every category.
type NotificationSetting struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	UserID         string `json:"user_id" bson:"user_id"`
	FriendRequests bool   `json:"friend_requests" bson:"friend_requests"`
	Comments       bool   `json:"comments" bson:"comments"`
	Mentions       bool   `json:"mentions" bson:"mentions"`
	Tips           bool   `json:"tips" bson:"tips"`
}

// UpdateNotificationSettingRequest defines the request body for updating
// notification toggles
type UpdateNotificationSettingRequest struct {
	FriendRequests *bool `json:"friend_requests" validate:"required"`
	Comments       *bool `json:"comments" validate:"required"`
	Mentions       *bool `json:"mentions" validate:"required"`
	Tips           *bool `json:"tips" validate:"required"`
}
