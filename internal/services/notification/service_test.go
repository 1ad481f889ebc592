package notification

import (
	"context"
	"testing"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const officialAddress = "0xmyriad"

type serviceFixture struct {
	users         *fakeUserRepo
	posts         *fakePostRepo
	comments      *fakeCommentRepo
	notifications *fakeNotificationRepo
	socialMedias  *fakeUserSocialMediaRepo
	reports       *fakeReportRepo
	userReports   *fakeUserReportRepo
	settings      *fakeSettingRepo
	pusher        *fakePusher
	service       *Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		users: newFakeUserRepo(
			models.User{ID: "alice", Name: "Alice", FCMTokens: []string{"tok-alice"}},
			models.User{ID: "bob", Name: "Bob", FCMTokens: []string{"tok-bob"}},
			models.User{ID: "carol", Name: "Carol"},
			models.User{ID: "dave", Name: "Dave", FCMTokens: []string{"tok-dave"}},
		),
		posts: newFakePostRepo(
			models.Post{ID: "p1", CreatedBy: "alice", Platform: models.PlatformMyriad},
		),
		comments: newFakeCommentRepo(
			models.Comment{ID: "c1", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "bob", Text: "first"},
			models.Comment{ID: "c2", Type: models.RefComment, ReferenceID: "c1", PostID: "p1", UserID: "carol", Text: "reply"},
		),
		notifications: &fakeNotificationRepo{},
		socialMedias:  newFakeUserSocialMediaRepo(),
		reports:       newFakeReportRepo(),
		userReports:   &fakeUserReportRepo{},
		settings:      newFakeSettingRepo(),
		pusher:        &fakePusher{},
	}
	f.service = NewService(Config{
		Users:            f.users,
		Posts:            f.posts,
		Comments:         f.comments,
		Notifications:    f.notifications,
		UserSocialMedias: f.socialMedias,
		Reports:          f.reports,
		UserReports:      f.userReports,
		Settings:         f.settings,
		Pusher:           f.pusher,
		OfficialAddress:  officialAddress,
		FanoutLimit:      4,
	})
	return f
}

func TestSendFriendRequest(t *testing.T) {
	f := newServiceFixture()

	sent, err := f.service.SendFriendRequest(context.Background(), "bob", "alice")
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("alice")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifFriendRequest, created[0].Type)
	assert.Equal(t, "bob", created[0].From)
	assert.Equal(t, "bob", created[0].ReferenceID)

	pushes := f.pusher.sentTo("alice")
	require.Len(t, pushes, 1)
	assert.Equal(t, "New Friend Request", pushes[0].title)
	assert.Equal(t, "Bob sent you a friend request", pushes[0].body)
	assert.Equal(t, []string{"tok-alice"}, pushes[0].tokens)
}

func TestSendFriendRequestDisabledPreference(t *testing.T) {
	f := newServiceFixture()
	f.settings.settings["alice"] = models.NotificationSetting{
		UserID: "alice", Comments: true, Mentions: true, Tips: true,
	}

	sent, err := f.service.SendFriendRequest(context.Background(), "bob", "alice")
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.byRecipient("alice"))
	assert.Empty(t, f.pusher.calls)
}

func TestCancelFriendRequestIsIdempotent(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.SendFriendRequest(context.Background(), "bob", "alice")
	require.NoError(t, err)

	require.NoError(t, f.service.CancelFriendRequest(context.Background(), "bob", "alice"))
	assert.Empty(t, f.notifications.byRecipient("alice"))

	// Second cancellation finds nothing to retract and succeeds.
	require.NoError(t, f.service.CancelFriendRequest(context.Background(), "bob", "alice"))
}

func TestSendPostCommentNotifiesPostCreator(t *testing.T) {
	f := newServiceFixture()
	comment := &models.Comment{ID: "c1", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "bob", Text: "first"}

	sent, err := f.service.SendPostComment(context.Background(), "bob", comment)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("alice")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifPostComment, created[0].Type)
	assert.Equal(t, "commented: first", created[0].Message)
	assert.Equal(t, []models.ReferenceLink{{PostID: "p1"}}, created[0].AdditionalReferenceID)
}

func TestSendPostCommentOnOwnPost(t *testing.T) {
	f := newServiceFixture()
	f.comments.CreateComment(context.Background(), &models.Comment{
		ID: "c9", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "alice", Text: "own",
	})
	comment := &models.Comment{ID: "c9", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "alice", Text: "own"}

	sent, err := f.service.SendPostComment(context.Background(), "alice", comment)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestSendPostCommentReplyNotifiesParentAuthor(t *testing.T) {
	f := newServiceFixture()
	comment := &models.Comment{ID: "c2", Type: models.RefComment, ReferenceID: "c1", PostID: "p1", UserID: "carol", Text: "reply"}

	sent, err := f.service.SendPostComment(context.Background(), "carol", comment)
	require.NoError(t, err)
	assert.True(t, sent)

	// Parent comment author gets a reply notification, the post creator a
	// comment notification, both carrying the same resolved chain.
	toBob := f.notifications.byRecipient("bob")
	require.Len(t, toBob, 1)
	assert.Equal(t, models.NotifCommentComment, toBob[0].Type)
	assert.Equal(t, []models.ReferenceLink{{PostID: "p1"}, {FirstCommentID: "c1"}}, toBob[0].AdditionalReferenceID)

	toAlice := f.notifications.byRecipient("alice")
	require.Len(t, toAlice, 1)
	assert.Equal(t, models.NotifCommentComment, toAlice[0].Type)
}

func TestSendPostCommentMentionIsCommentMention(t *testing.T) {
	f := newServiceFixture()
	comment := &models.Comment{
		ID: "c1", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "bob",
		Text: "first", Mentions: []models.MentionUser{{ID: "dave", Name: "Dave"}},
	}

	sent, err := f.service.SendPostComment(context.Background(), "bob", comment)
	require.NoError(t, err)
	assert.True(t, sent)

	// A mention inside a post-level comment is still a comment mention and
	// carries the chain resolved from the comment.
	toDave := f.notifications.byRecipient("dave")
	require.Len(t, toDave, 1)
	assert.Equal(t, models.NotifCommentMention, toDave[0].Type)
	assert.Equal(t, "c1", toDave[0].ReferenceID)
	assert.Equal(t, []models.ReferenceLink{{PostID: "p1"}}, toDave[0].AdditionalReferenceID)
}

func TestSendMentionEmptyListIsNoOp(t *testing.T) {
	f := newServiceFixture()

	sent, err := f.service.SendMention(context.Background(), "bob", "c1", nil, models.RefPost)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestSendMentionExcludesActorAndDisabledUsers(t *testing.T) {
	f := newServiceFixture()
	f.settings.settings["carol"] = models.NotificationSetting{
		UserID: "carol", FriendRequests: true, Comments: true, Tips: true,
	}

	mentions := []models.MentionUser{
		{ID: "bob", Name: "Bob"},
		{ID: "alice", Name: "Alice"},
		{ID: "carol", Name: "Carol"},
		{ID: "dave", Name: "Dave"},
	}
	sent, err := f.service.SendMention(context.Background(), "bob", "p1", mentions, models.RefPost)
	require.NoError(t, err)
	assert.True(t, sent)

	// The actor and the user with mentions disabled receive nothing.
	assert.Empty(t, f.notifications.byRecipient("bob"))
	assert.Empty(t, f.notifications.byRecipient("carol"))
	assert.Len(t, f.notifications.byRecipient("alice"), 1)
	assert.Len(t, f.notifications.byRecipient("dave"), 1)

	require.Len(t, f.pusher.sentTo("alice"), 1)
	assert.Equal(t, "New Mention", f.pusher.sentTo("alice")[0].title)
}

func TestSendMentionAllRecipientsDisabled(t *testing.T) {
	f := newServiceFixture()
	f.settings.settings["alice"] = models.NotificationSetting{UserID: "alice"}

	mentions := []models.MentionUser{{ID: "alice", Name: "Alice"}}
	sent, err := f.service.SendMention(context.Background(), "bob", "p1", mentions, models.RefPost)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestSendPostVote(t *testing.T) {
	f := newServiceFixture()
	vote := &models.Vote{ID: "v1", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "bob", State: true}

	sent, err := f.service.SendPostVote(context.Background(), "bob", vote)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("alice")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifPostVote, created[0].Type)
	assert.Equal(t, "upvoted", created[0].Message)
}

func TestSendCommentVote(t *testing.T) {
	f := newServiceFixture()
	vote := &models.Vote{ID: "v3", Type: models.RefComment, ReferenceID: "c2", PostID: "p1", UserID: "bob", State: true}

	sent, err := f.service.SendPostVote(context.Background(), "bob", vote)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("carol")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifCommentVote, created[0].Type)
	assert.Equal(t, "v3", created[0].ReferenceID)
	assert.Equal(t, []models.ReferenceLink{{PostID: "p1"}, {FirstCommentID: "c1"}}, created[0].AdditionalReferenceID)
	assert.Len(t, f.notifications.created, 1)
}

func TestSendCommentVoteOnOwnComment(t *testing.T) {
	f := newServiceFixture()
	vote := &models.Vote{ID: "v2", Type: models.RefComment, ReferenceID: "c1", PostID: "p1", UserID: "bob", State: false}

	sent, err := f.service.SendPostVote(context.Background(), "bob", vote)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestSendTipsSuccessOnComment(t *testing.T) {
	f := newServiceFixture()
	tx := &models.Transaction{
		ID: "t1", From: "alice", To: "carol", Amount: 1.5, CurrencyID: "MYRIA",
		Type: models.RefComment, ReferenceID: "c2",
	}

	sent, err := f.service.SendTipsSuccess(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("carol")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifCommentTips, created[0].Type)
	assert.Equal(t, "1.5 MYRIA", created[0].Message)
	assert.Equal(t, []models.ReferenceLink{{PostID: "p1"}, {FirstCommentID: "c1"}}, created[0].AdditionalReferenceID)
}

func TestSendTipsSuccessDirect(t *testing.T) {
	f := newServiceFixture()
	tx := &models.Transaction{ID: "t2", From: "alice", To: "bob", Amount: 10, CurrencyID: "DOT"}

	sent, err := f.service.SendTipsSuccess(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("bob")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifUserTips, created[0].Type)
	assert.Equal(t, "10 DOT", created[0].Message)
	assert.Empty(t, created[0].AdditionalReferenceID)
}

func TestSendTipsSuccessDisabledPreference(t *testing.T) {
	f := newServiceFixture()
	f.settings.settings["bob"] = models.NotificationSetting{
		UserID: "bob", FriendRequests: true, Comments: true, Mentions: true,
	}
	tx := &models.Transaction{ID: "t3", From: "alice", To: "bob", Amount: 1, CurrencyID: "DOT"}

	sent, err := f.service.SendTipsSuccess(context.Background(), tx)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestSendTipsSuccessUnknownTipper(t *testing.T) {
	f := newServiceFixture()
	f.settings.settings["bob"] = models.NotificationSetting{
		UserID: "bob", FriendRequests: true, Comments: true, Mentions: true,
	}

	// The tipper lookup fails before the recipient's disabled toggle can
	// short-circuit the event.
	tx := &models.Transaction{ID: "t9", From: "ghost", To: "bob", Amount: 1, CurrencyID: "DOT"}
	_, err := f.service.SendTipsSuccess(context.Background(), tx)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Empty(t, f.notifications.created)
}

func TestSendClaimTips(t *testing.T) {
	f := newServiceFixture()
	tx := &models.Transaction{ID: "t4", From: "escrow", To: "bob", Amount: 3, CurrencyID: "MYRIA"}

	sent, err := f.service.SendClaimTips(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("bob")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifUserClaimTips, created[0].Type)
	assert.Equal(t, officialAddress, created[0].From)
}

func TestSendConnectedSocialMedia(t *testing.T) {
	f := newServiceFixture()
	usm := &models.UserSocialMedia{ID: "usm1", UserID: "bob", Platform: models.PlatformTwitter, PeopleID: "pe1"}

	sent, err := f.service.SendConnectedSocialMedia(context.Background(), usm)
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("bob")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifConnectedSocialMedia, created[0].Type)
	assert.Equal(t, []models.ReferenceLink{{PeopleID: "pe1"}}, created[0].AdditionalReferenceID)

	pushes := f.pusher.sentTo("bob")
	require.Len(t, pushes, 1)
	assert.Equal(t, "Connected Twitter Success", pushes[0].title)
}

func TestSendDisconnectedSocialMedia(t *testing.T) {
	f := newServiceFixture()
	f.socialMedias.CreateUserSocialMedia(context.Background(), &models.UserSocialMedia{
		ID: "usm1", UserID: "bob", Platform: models.PlatformReddit, PeopleID: "pe2",
	})

	sent, err := f.service.SendDisconnectedSocialMedia(context.Background(), "usm1", "")
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("bob")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifDisconnectedSocialMedia, created[0].Type)
	assert.Equal(t, "bob", created[0].From)
}

func TestSendReportResponseToUserNonRemoved(t *testing.T) {
	f := newServiceFixture()
	f.reports.reports["r1"] = models.Report{
		ID: "r1", ReferenceType: models.RefPost, ReferenceID: "p1", Status: models.ReportStatusIgnored,
	}

	sent, err := f.service.SendReportResponseToUser(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestSendReportResponseToUserRemovedPost(t *testing.T) {
	f := newServiceFixture()
	f.reports.reports["r2"] = models.Report{
		ID: "r2", ReferenceType: models.RefPost, ReferenceID: "p1", Status: models.ReportStatusRemoved,
	}

	sent, err := f.service.SendReportResponseToUser(context.Background(), "r2")
	require.NoError(t, err)
	assert.True(t, sent)

	created := f.notifications.byRecipient("alice")
	require.Len(t, created, 1)
	assert.Equal(t, models.NotifPostRemoved, created[0].Type)
	assert.Equal(t, officialAddress, created[0].From)
	assert.Equal(t, "removed your post", created[0].Message)
}

func TestSendReportResponseToUserUnknownReferenceType(t *testing.T) {
	f := newServiceFixture()
	f.reports.reports["r3"] = models.Report{
		ID: "r3", ReferenceType: models.ReferenceType("video"), ReferenceID: "x", Status: models.ReportStatusRemoved,
	}

	_, err := f.service.SendReportResponseToUser(context.Background(), "r3")
	assert.Error(t, err)
}

func TestSendReportResponseToReporters(t *testing.T) {
	f := newServiceFixture()
	f.reports.reports["r4"] = models.Report{
		ID: "r4", ReferenceType: models.RefPost, ReferenceID: "p1", Status: models.ReportStatusRemoved,
	}
	f.userReports.userReports = []models.UserReport{
		{ID: "ur1", ReportID: "r4", ReportedBy: "bob"},
		{ID: "ur2", ReportID: "r4", ReportedBy: "dave"},
	}

	sent, err := f.service.SendReportResponseToReporters(context.Background(), "r4")
	require.NoError(t, err)
	assert.True(t, sent)

	assert.Len(t, f.notifications.byRecipient("bob"), 1)
	assert.Len(t, f.notifications.byRecipient("dave"), 1)
	assert.Len(t, f.pusher.calls, 2)
}

func TestSendReportResponseToReportersNoReporters(t *testing.T) {
	f := newServiceFixture()
	f.reports.reports["r5"] = models.Report{
		ID: "r5", ReferenceType: models.RefUser, ReferenceID: "bob", Status: models.ReportStatusRemoved,
	}

	sent, err := f.service.SendReportResponseToReporters(context.Background(), "r5")
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, f.notifications.created)
}

func TestNotifyUsersSkipsUnknownRecipients(t *testing.T) {
	f := newServiceFixture()
	template := models.Notification{Type: models.NotifPostMention, From: "bob", ReferenceID: "p1"}

	err := f.service.notifyUsers(context.Background(), template, []string{"alice", "ghost"}, "t", "b")
	require.NoError(t, err)

	// Both clones persist; only the existing user receives a push.
	assert.Len(t, f.notifications.created, 2)
	assert.Len(t, f.pusher.calls, 1)
	assert.Equal(t, "alice", f.pusher.calls[0].notification.To)
}
