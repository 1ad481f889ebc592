package notification

import (
	"context"
	"testing"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateNoSettingsAcceptsEverything(t *testing.T) {
	gate := NewGate(newFakeSettingRepo())

	for _, notifType := range []models.NotificationType{
		models.NotifFriendRequest,
		models.NotifPostComment,
		models.NotifCommentMention,
		models.NotifUserTips,
	} {
		active, err := gate.IsEnabled(context.Background(), "alice", notifType)
		require.NoError(t, err)
		assert.True(t, active, "type %s should be accepted without a settings document", notifType)
	}
}

func TestGateToggleGroups(t *testing.T) {
	gate := NewGate(newFakeSettingRepo(models.NotificationSetting{
		UserID:         "alice",
		FriendRequests: true,
		Comments:       false,
		Mentions:       true,
		Tips:           false,
	}))

	cases := []struct {
		notifType models.NotificationType
		want      bool
	}{
		{models.NotifFriendRequest, true},
		{models.NotifPostComment, false},
		{models.NotifCommentComment, false},
		{models.NotifPostMention, true},
		{models.NotifCommentMention, true},
		{models.NotifPostTips, false},
		{models.NotifCommentTips, false},
		{models.NotifUserTips, false},
	}
	for _, tc := range cases {
		active, err := gate.IsEnabled(context.Background(), "alice", tc.notifType)
		require.NoError(t, err)
		assert.Equal(t, tc.want, active, "type %s", tc.notifType)
	}
}

func TestGateUnknownCategoryDenied(t *testing.T) {
	gate := NewGate(newFakeSettingRepo(models.NotificationSetting{
		UserID:         "alice",
		FriendRequests: true,
		Comments:       true,
		Mentions:       true,
		Tips:           true,
	}))

	// Categories outside the four toggle groups are denied even when every
	// toggle is on.
	for _, notifType := range []models.NotificationType{
		models.NotifUserBanned,
		models.NotifPostRemoved,
		models.NotificationType("bogus"),
	} {
		active, err := gate.IsEnabled(context.Background(), "alice", notifType)
		require.NoError(t, err)
		assert.False(t, active, "type %s", notifType)
	}
}
