package notification

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/sourcegraph/conc/pool"
)

// Service composes the reference resolver, the preference gate and the
// fan-out dispatcher into one handler per domain event. Every handler builds
// an immutable notification template, binds it per recipient and hands it to
// the dispatcher; a false return means the event was intentionally dropped
// (preference disabled, self-notify, state gating), not an error.
type Service struct {
	users            repositories.UserRepository
	posts            repositories.PostRepository
	comments         repositories.CommentRepository
	notifications    repositories.NotificationRepository
	userSocialMedias repositories.UserSocialMediaRepository
	reports          repositories.ReportRepository
	userReports      repositories.UserReportRepository

	resolver *Resolver
	gate     *Gate
	pusher   Pusher

	// officialAddress is the platform's own public address; it is the sender
	// of every platform-originated notification.
	officialAddress string
	fanoutLimit     int
}

// Config carries the Service dependencies
type Config struct {
	Users            repositories.UserRepository
	Posts            repositories.PostRepository
	Comments         repositories.CommentRepository
	Notifications    repositories.NotificationRepository
	UserSocialMedias repositories.UserSocialMediaRepository
	Reports          repositories.ReportRepository
	UserReports      repositories.UserReportRepository
	Settings         repositories.NotificationSettingRepository
	Pusher           Pusher
	OfficialAddress  string
	MaxChainDepth    int
	FanoutLimit      int
}

// NewService creates a notification Service
func NewService(cfg Config) *Service {
	fanout := cfg.FanoutLimit
	if fanout <= 0 {
		fanout = 10
	}
	return &Service{
		users:            cfg.Users,
		posts:            cfg.Posts,
		comments:         cfg.Comments,
		notifications:    cfg.Notifications,
		userSocialMedias: cfg.UserSocialMedias,
		reports:          cfg.Reports,
		userReports:      cfg.UserReports,
		resolver:         NewResolver(cfg.Comments, cfg.MaxChainDepth),
		gate:             NewGate(cfg.Settings),
		pusher:           cfg.Pusher,
		officialAddress:  cfg.OfficialAddress,
		fanoutLimit:      fanout,
	}
}

// SendFriendRequest notifies the requestee of a new friend request
func (s *Service) SendFriendRequest(ctx context.Context, from, to string) (bool, error) {
	active, err := s.gate.IsEnabled(ctx, to, models.NotifFriendRequest)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}

	fromUser, err := s.users.GetUserByID(ctx, from)
	if err != nil {
		return false, err
	}

	template := models.Notification{
		Type:        models.NotifFriendRequest,
		From:        fromUser.ID,
		ReferenceID: fromUser.ID,
		Message:     "sent you a friend request",
	}

	title := "New Friend Request"
	body := fromUser.Name + " " + template.Message
	if err := s.notifyUser(ctx, template, to, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendFriendAccept notifies the requestor that their request was accepted
func (s *Service) SendFriendAccept(ctx context.Context, from, to string) (bool, error) {
	fromUser, err := s.users.GetUserByID(ctx, from)
	if err != nil {
		return false, err
	}
	toUser, err := s.users.GetUserByID(ctx, to)
	if err != nil {
		return false, err
	}

	template := models.Notification{
		Type:        models.NotifFriendAccept,
		From:        fromUser.ID,
		ReferenceID: fromUser.ID,
		Message:     "accepted your friend request",
	}

	title := "Friend Request Accepted"
	body := fromUser.Name + " " + template.Message
	if err := s.notifyUser(ctx, template, toUser.ID, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// CancelFriendRequest retracts the pending friend-request notification. A
// repeat cancellation is a no-op.
func (s *Service) CancelFriendRequest(ctx context.Context, from, to string) error {
	found, err := s.notifications.FindOneNotification(ctx, repositories.NotificationFilter{
		Type:        models.NotifFriendRequest,
		From:        from,
		To:          to,
		ReferenceID: from,
	})
	if err != nil {
		return err
	}
	if found == nil {
		return nil
	}
	return s.notifications.DeleteNotification(ctx, found.ID)
}

// SendPostComment notifies mentioned users, the parent comment's author (for
// replies) and the post's creator about a new comment. Returns false when the
// post creator was not notified.
func (s *Service) SendPostComment(ctx context.Context, from string, comment *models.Comment) (bool, error) {
	// Mentions inside a comment are always comment mentions, whatever the
	// comment itself is attached to; the chain is resolved from the comment.
	if _, err := s.SendMention(ctx, from, comment.ID, comment.Mentions, models.RefComment); err != nil {
		return false, err
	}

	fromUser, err := s.users.GetUserByID(ctx, from)
	if err != nil {
		return false, err
	}

	chain, err := s.resolver.CommentChain(ctx, comment.ID)
	if err != nil {
		return false, err
	}

	notifType := models.NotifPostComment
	if comment.Type == models.RefComment {
		notifType = models.NotifCommentComment
	}

	template := models.Notification{
		Type:                  notifType,
		From:                  fromUser.ID,
		ReferenceID:           comment.ID,
		Message:               "commented: " + comment.Text,
		AdditionalReferenceID: chain,
	}

	post, err := s.posts.GetPostByID(ctx, comment.PostID)
	if err != nil {
		return false, err
	}

	title := "New Comment"

	// Reply notification to the parent comment's author
	if comment.Type == models.RefComment {
		parent, err := s.comments.GetCommentByID(ctx, comment.ReferenceID)
		if err != nil {
			return false, err
		}

		if parent.UserID != comment.UserID {
			active, err := s.gate.IsEnabled(ctx, parent.UserID, models.NotifCommentComment)
			if err != nil {
				return false, err
			}
			if active {
				body := fromUser.Name + " replied to your comment"
				if err := s.notifyUser(ctx, template, parent.UserID, title, body); err != nil {
					return false, err
				}
			}
		}
	}

	// Comment notification to the post creator
	if post.CreatedBy == comment.UserID {
		return false, nil
	}

	active, err := s.gate.IsEnabled(ctx, post.CreatedBy, models.NotifPostComment)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}

	body := fromUser.Name + " commented on your post"
	if err := s.notifyUser(ctx, template, post.CreatedBy, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendPostVote notifies the author of a voted post or comment. Voting on your
// own comment notifies nobody.
func (s *Service) SendPostVote(ctx context.Context, from string, vote *models.Vote) (bool, error) {
	fromUser, err := s.users.GetUserByID(ctx, from)
	if err != nil {
		return false, err
	}

	notifType := models.NotifPostVote
	if vote.Type == models.RefComment {
		notifType = models.NotifCommentVote
	}

	message := "downvoted"
	if vote.State {
		message = "upvoted"
	}

	template := models.Notification{
		Type:        notifType,
		From:        fromUser.ID,
		ReferenceID: vote.ID,
		Message:     message,
	}

	title := "New Vote"
	body := fromUser.Name + " " + template.Message

	if vote.Type == models.RefComment {
		target, err := s.comments.GetCommentByID(ctx, vote.ReferenceID)
		if err != nil {
			return false, err
		}

		template.AdditionalReferenceID, err = s.resolver.CommentChain(ctx, target.ID)
		if err != nil {
			return false, err
		}

		if target.UserID == vote.UserID {
			return false, nil
		}

		if err := s.notifyUser(ctx, template, target.UserID, title, body); err != nil {
			return false, err
		}
		return true, nil
	}

	post, err := s.posts.GetPostByID(ctx, vote.PostID)
	if err != nil {
		return false, err
	}

	if err := s.notifyUser(ctx, template, post.CreatedBy, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendMention notifies every mentioned user except the actor and users whose
// mention preference is disabled. The preference checks run concurrently and
// are all awaited before the recipient set is fixed. An empty mention list is
// a no-op.
func (s *Service) SendMention(ctx context.Context, from, referenceID string, mentions []models.MentionUser, referenceType models.ReferenceType) (bool, error) {
	if len(mentions) == 0 {
		return false, nil
	}

	fromUser, err := s.users.GetUserByID(ctx, from)
	if err != nil {
		return false, err
	}

	notifType := models.NotifPostMention
	if referenceType == models.RefComment {
		notifType = models.NotifCommentMention
	}

	template := models.Notification{
		Type:        notifType,
		From:        fromUser.ID,
		ReferenceID: referenceID,
		Message:     "mentioned you",
	}

	if referenceType == models.RefComment {
		template.AdditionalReferenceID, err = s.resolver.CommentChain(ctx, referenceID)
		if err != nil {
			return false, err
		}
	}

	var candidates []string
	for _, mention := range mentions {
		if mention.ID != from {
			candidates = append(candidates, mention.ID)
		}
	}

	p := pool.NewWithResults[string]().WithContext(ctx)
	for _, id := range candidates {
		p.Go(func(ctx context.Context) (string, error) {
			active, err := s.gate.IsEnabled(ctx, id, notifType)
			if err != nil {
				return "", err
			}
			if !active {
				return "", nil
			}
			return id, nil
		})
	}
	checked, err := p.Wait()
	if err != nil {
		return false, err
	}

	var userIDs []string
	for _, id := range checked {
		if id != "" {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		return false, nil
	}

	title := "New Mention"
	body := fromUser.Name + " " + template.Message
	if err := s.notifyUsers(ctx, template, userIDs, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendTipsSuccess notifies the tip recipient. The category follows the
// transaction's reference type; a transaction without one is a direct
// user-level tip.
func (s *Service) SendTipsSuccess(ctx context.Context, transaction *models.Transaction) (bool, error) {
	fromUser, err := s.users.GetUserByID(ctx, transaction.From)
	if err != nil {
		return false, err
	}

	active, err := s.gate.IsEnabled(ctx, transaction.To, models.NotifPostTips)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}

	template := models.Notification{
		From:        fromUser.ID,
		ReferenceID: transaction.ID,
		Message:     formatAmount(transaction.Amount) + " " + transaction.CurrencyID,
	}

	switch {
	case transaction.Type == models.RefComment && transaction.ReferenceID != "":
		template.Type = models.NotifCommentTips
		template.AdditionalReferenceID, err = s.resolver.CommentChain(ctx, transaction.ReferenceID)
		if err != nil {
			return false, err
		}
	case transaction.Type == models.RefPost && transaction.ReferenceID != "":
		template.Type = models.NotifPostTips
		template.AdditionalReferenceID = []models.ReferenceLink{{PostID: transaction.ReferenceID}}
	default:
		template.Type = models.NotifUserTips
	}

	title := "Send Tips Success"
	body := fromUser.Name + " " + template.Message
	if err := s.notifyUser(ctx, template, transaction.To, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendRewardSuccess notifies a user of a platform reward
func (s *Service) SendRewardSuccess(ctx context.Context, transaction *models.Transaction) (bool, error) {
	template := models.Notification{
		Type:        models.NotifUserReward,
		From:        transaction.From,
		ReferenceID: transaction.ID,
		Message:     formatAmount(transaction.Amount) + " " + transaction.CurrencyID,
	}

	title := "Send Reward Success"
	body := "Myriad Official " + template.Message
	if err := s.notifyUser(ctx, template, transaction.To, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendInitialTips notifies a new user of their initial token grant
func (s *Service) SendInitialTips(ctx context.Context, transaction *models.Transaction) (bool, error) {
	template := models.Notification{
		Type:        models.NotifUserInitialTips,
		From:        transaction.From,
		ReferenceID: transaction.ID,
		Message:     formatAmount(transaction.Amount) + " " + transaction.CurrencyID,
	}

	title := "Send Initial Tips Success"
	body := "Myriad Official " + template.Message
	if err := s.notifyUser(ctx, template, transaction.To, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendClaimTips notifies a user that their escrowed tips were claimed
func (s *Service) SendClaimTips(ctx context.Context, transaction *models.Transaction) (bool, error) {
	active, err := s.gate.IsEnabled(ctx, transaction.To, models.NotifPostTips)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}

	template := models.Notification{
		Type:        models.NotifUserClaimTips,
		From:        s.officialAddress,
		ReferenceID: transaction.ID,
		Message:     formatAmount(transaction.Amount) + " " + transaction.CurrencyID,
	}

	title := "Send Claim Tips Success"
	body := "You " + template.Message
	if err := s.notifyUser(ctx, template, transaction.To, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendConnectedSocialMedia notifies a user that a social media account was
// connected to their profile
func (s *Service) SendConnectedSocialMedia(ctx context.Context, usm *models.UserSocialMedia) (bool, error) {
	template := models.Notification{
		Type:                  models.NotifConnectedSocialMedia,
		From:                  usm.UserID,
		ReferenceID:           usm.UserID,
		Message:               fmt.Sprintf("connected your %s social media", usm.Platform),
		AdditionalReferenceID: []models.ReferenceLink{{PeopleID: usm.PeopleID}},
	}

	title := fmt.Sprintf("Connected %s Success", capitalize(string(usm.Platform)))
	body := "You " + template.Message
	if err := s.notifyUser(ctx, template, usm.UserID, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendDisconnectedSocialMedia notifies the owner of a social media link that
// it was disconnected. fromUserID is the actor when an admin disconnects on
// behalf of the user; empty means the owner did it themselves.
func (s *Service) SendDisconnectedSocialMedia(ctx context.Context, id, fromUserID string) (bool, error) {
	usm, err := s.userSocialMedias.GetUserSocialMediaByID(ctx, id)
	if err != nil {
		return false, err
	}

	if fromUserID == "" {
		fromUserID = usm.UserID
	} else if _, err := s.users.GetUserByID(ctx, fromUserID); err != nil {
		return false, err
	}

	template := models.Notification{
		Type:                  models.NotifDisconnectedSocialMedia,
		From:                  fromUserID,
		ReferenceID:           fromUserID,
		Message:               fmt.Sprintf("disconnected your %s social media", usm.Platform),
		AdditionalReferenceID: []models.ReferenceLink{{PeopleID: usm.PeopleID}},
	}

	title := fmt.Sprintf("Disconnected %s Success", capitalize(string(usm.Platform)))
	body := "You " + template.Message
	if err := s.notifyUser(ctx, template, usm.UserID, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendReportResponseToReporters notifies everyone who reported the subject
// that the report was approved
func (s *Service) SendReportResponseToReporters(ctx context.Context, reportID string) (bool, error) {
	report, err := s.reports.GetReportByID(ctx, reportID)
	if err != nil {
		return false, err
	}

	reporters, err := s.userReports.GetUserReportsByReportID(ctx, reportID)
	if err != nil {
		return false, err
	}
	if len(reporters) == 0 {
		return false, nil
	}

	template := models.Notification{
		From:        s.officialAddress,
		ReferenceID: report.ReferenceID,
		Message:     "approved your report",
	}

	switch report.ReferenceType {
	case models.RefUser:
		template.Type = models.NotifUserBanned
	case models.RefPost:
		template.Type = models.NotifPostRemoved
	case models.RefComment:
		template.Type = models.NotifCommentRemoved
		template.AdditionalReferenceID, err = s.resolver.CommentChain(ctx, report.ReferenceID)
		if err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown report reference type %q", report.ReferenceType)
	}

	userIDs := make([]string, len(reporters))
	for i, reporter := range reporters {
		userIDs[i] = reporter.ReportedBy
	}

	title := "Report Approved"
	body := "Myriad Official " + template.Message
	if err := s.notifyUsers(ctx, template, userIDs, title, body); err != nil {
		return false, err
	}
	return true, nil
}

// SendReportResponseToUser notifies the subject of a report whose content was
// removed. Any status other than removed is a no-op.
func (s *Service) SendReportResponseToUser(ctx context.Context, reportID string) (bool, error) {
	report, err := s.reports.GetReportByID(ctx, reportID)
	if err != nil {
		return false, err
	}
	if report.Status != models.ReportStatusRemoved {
		return false, nil
	}

	template := models.Notification{
		From:        s.officialAddress,
		ReferenceID: report.ReferenceID,
	}

	switch report.ReferenceType {
	case models.RefComment:
		template.Type = models.NotifCommentRemoved
		template.Message = "removed your comment"
		template.AdditionalReferenceID, err = s.resolver.CommentChain(ctx, report.ReferenceID)
		if err != nil {
			return false, err
		}

		comment, err := s.comments.GetCommentByID(ctx, report.ReferenceID)
		if err != nil {
			return false, err
		}

		body := "Myriad Official " + template.Message
		if err := s.notifyUser(ctx, template, comment.UserID, "Comment Removed", body); err != nil {
			return false, err
		}

	case models.RefPost:
		template.Type = models.NotifPostRemoved
		template.Message = "removed your post"

		post, err := s.posts.GetPostByID(ctx, report.ReferenceID)
		if err != nil {
			return false, err
		}

		body := "Myriad Official " + template.Message
		if err := s.notifyUser(ctx, template, post.CreatedBy, "Post Removed", body); err != nil {
			return false, err
		}

	case models.RefUser:
		template.Type = models.NotifUserBanned
		template.Message = "banned you"

		body := "Myriad Official " + template.Message
		if err := s.notifyUser(ctx, template, report.ReferenceID, "User Banned", body); err != nil {
			return false, err
		}

	default:
		return false, fmt.Errorf("unknown report reference type %q", report.ReferenceType)
	}

	return true, nil
}

// formatAmount renders a tip amount without a trailing decimal point for
// whole numbers
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
