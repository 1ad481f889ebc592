package models

import "time"

// NotificationType is the closed set of notification categories
type NotificationType string

const (
	NotifCommentComment          NotificationType = "comment_comment"
	NotifCommentMention          NotificationType = "comment_mention"
	NotifCommentRemoved          NotificationType = "comment_removed"
	NotifCommentTips             NotificationType = "comment_tips"
	NotifCommentTipsUnclaimed    NotificationType = "comment_tips_unclaimed"
	NotifCommentVote             NotificationType = "comment_vote"
	NotifConnectedSocialMedia    NotificationType = "connected_social_media"
	NotifDisconnectedSocialMedia NotificationType = "disconnected_social_media"
	NotifFriendAccept            NotificationType = "friend_accept"
	NotifFriendRequest           NotificationType = "friend_request"
	NotifPostComment             NotificationType = "post_comment"
	NotifPostMention             NotificationType = "post_mention"
	NotifPostRemoved             NotificationType = "post_removed"
	NotifPostTips                NotificationType = "post_tips"
	NotifPostTipsUnclaimed       NotificationType = "post_tips_unclaimed"
	NotifPostVote                NotificationType = "post_vote"
	NotifReportComment           NotificationType = "report_comment"
	NotifReportPost              NotificationType = "report_post"
	NotifReportUser              NotificationType = "report_user"
	NotifUserBanned              NotificationType = "user_banned"
	NotifUserClaimTips           NotificationType = "user_claim_tips"
	NotifUserInitialTips         NotificationType = "user_initial_tips"
	NotifUserReward              NotificationType = "user_reward"
	NotifUserTips                NotificationType = "user_tips"
	NotifUserTipsUnclaimed       NotificationType = "user_tips_unclaimed"
)

// Notification is immutable after creation. Templates are built without To
// and bound per recipient with Bind just before persistence.
type Notification struct {
	ID                    string           `json:"id" bson:"_id,omitempty"`
	Type                  NotificationType `json:"type" bson:"type"`
	From                  string           `json:"from" bson:"from"`
	To                    string           `json:"to" bson:"to"`
	Read                  bool             `json:"read" bson:"read"`
	ReferenceID           string           `json:"reference_id" bson:"reference_id"`
	AdditionalReferenceID []ReferenceLink  `json:"additional_reference_id,omitempty" bson:"additional_reference_id,omitempty"`
	Message               string           `json:"message" bson:"message"`
	CreatedAt             time.Time        `json:"created_at" bson:"created_at"`
}

// Bind returns a copy of the notification addressed to the given recipient.
// The receiver is unchanged, so one template can be bound to many recipients
// without aliasing.
func (n Notification) Bind(recipientID string) Notification {
	n.To = recipientID
	return n
}
