package models

// ReferenceType identifies what kind of entity an id points at
type ReferenceType string

const (
	RefPost    ReferenceType = "post"
	RefComment ReferenceType = "comment"
	RefUser    ReferenceType = "user"
)

// ReferenceLink is one entry of a deep-link chain attached to a notification.
// Exactly one field is set per entry; the slice order is the order a client
// follows to reach the notification subject.
type ReferenceLink struct {
	PostID          string `json:"postId,omitempty" bson:"postId,omitempty"`
	FirstCommentID  string `json:"firstCommentId,omitempty" bson:"firstCommentId,omitempty"`
	SecondCommentID string `json:"secondCommentId,omitempty" bson:"secondCommentId,omitempty"`
	PeopleID        string `json:"peopleId,omitempty" bson:"peopleId,omitempty"`
}
