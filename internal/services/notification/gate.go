package notification

import (
	"context"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
)

// Gate decides whether a recipient accepts a notification category.
type Gate struct {
	settings repositories.NotificationSettingRepository
}

// NewGate creates a Gate
func NewGate(settings repositories.NotificationSettingRepository) *Gate {
	return &Gate{settings: settings}
}

// IsEnabled reports whether delivery of the given category to the user is
// permitted. A user without a settings document accepts everything
// (fail-open); a category outside the four toggle groups is denied even when
// a settings document exists (fail-closed). The two defaults are deliberate
// and independent.
func (g *Gate) IsEnabled(ctx context.Context, userID string, notificationType models.NotificationType) (bool, error) {
	setting, err := g.settings.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if setting == nil {
		return true, nil
	}

	switch notificationType {
	case models.NotifFriendRequest:
		return setting.FriendRequests, nil
	case models.NotifPostComment, models.NotifCommentComment:
		return setting.Comments, nil
	case models.NotifPostMention, models.NotifCommentMention:
		return setting.Mentions, nil
	case models.NotifPostTips, models.NotifCommentTips, models.NotifUserTips:
		return setting.Tips, nil
	default:
		return false, nil
	}
}
