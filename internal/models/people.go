package models

import "time"

// People represents an external social-media identity that may or may not be
// claimed by a platform user. Claimed identities get an escrow wallet whose
// password is derived from the people id.
type People struct {
	ID                    string       `json:"id" bson:"_id,omitempty"`
	Platform              PlatformType `json:"platform" bson:"platform"`
	OriginUserID          string       `json:"origin_user_id" bson:"origin_user_id"`
	Username              string       `json:"username" bson:"username"`
	Name                  string       `json:"name,omitempty" bson:"name,omitempty"`
	ProfilePictureURL     string       `json:"profile_picture_url,omitempty" bson:"profile_picture_url,omitempty"`
	WalletAddressPassword string       `json:"-" bson:"wallet_address_password,omitempty"`
	CreatedAt             time.Time    `json:"created_at" bson:"created_at"`
}
