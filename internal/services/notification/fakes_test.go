package notification

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repositories.ErrNotFound)
	}
	return &u, nil
}

func (r *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetUserByName(_ context.Context, name string) (*models.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user named %q: %w", name, repositories.ErrNotFound)
}

func (r *fakeUserRepo) GetUsers(context.Context, int64, int64) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SearchUsers(context.Context, string) ([]models.User, error) {
	return nil, nil
}

type fakePostRepo struct {
	posts map[string]models.Post
}

func newFakePostRepo(posts ...models.Post) *fakePostRepo {
	r := &fakePostRepo{posts: map[string]models.Post{}}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, repositories.ErrNotFound)
	}
	return &p, nil
}

func (r *fakePostRepo) GetPostsByUserID(context.Context, string, int64, int64) ([]models.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) GetAllPosts(context.Context, int64, int64) ([]models.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) UpdatePost(context.Context, string, *models.Post) error { return nil }
func (r *fakePostRepo) DeletePost(context.Context, string) error               { return nil }

type fakeCommentRepo struct {
	comments map[string]models.Comment
	lookups  int
}

func newFakeCommentRepo(comments ...models.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: map[string]models.Comment{}}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	r.lookups++
	c, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %s: %w", id, repositories.ErrNotFound)
	}
	return &c, nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(context.Context, string, int64, int64) ([]models.Comment, error) {
	return nil, nil
}

func (r *fakeCommentRepo) DeleteComment(context.Context, string) error { return nil }

type fakeNotificationRepo struct {
	mu      sync.Mutex
	seq     int
	created []models.Notification
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, notification models.Notification) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = "n" + strconv.Itoa(r.seq)
	r.created = append(r.created, notification)
	return &notification, nil
}

func (r *fakeNotificationRepo) CreateNotifications(_ context.Context, notifications []models.Notification) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range notifications {
		r.seq++
		notifications[i].ID = "n" + strconv.Itoa(r.seq)
		r.created = append(r.created, notifications[i])
	}
	return notifications, nil
}

func (r *fakeNotificationRepo) FindOneNotification(_ context.Context, filter repositories.NotificationFilter) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.created {
		if filter.Type != "" && n.Type != filter.Type {
			continue
		}
		if filter.From != "" && n.From != filter.From {
			continue
		}
		if filter.To != "" && n.To != filter.To {
			continue
		}
		if filter.ReferenceID != "" && n.ReferenceID != filter.ReferenceID {
			continue
		}
		return &n, nil
	}
	return nil, nil
}

func (r *fakeNotificationRepo) GetByRecipientID(context.Context, string, int64, int64) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkAsRead(context.Context, string) error    { return nil }
func (r *fakeNotificationRepo) MarkAllAsRead(context.Context, string) error { return nil }

func (r *fakeNotificationRepo) DeleteNotification(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.created {
		if n.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id, repositories.ErrNotFound)
}

func (r *fakeNotificationRepo) byRecipient(userID string) []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.created {
		if n.To == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeSettingRepo struct {
	settings map[string]models.NotificationSetting
}

func newFakeSettingRepo(settings ...models.NotificationSetting) *fakeSettingRepo {
	r := &fakeSettingRepo{settings: map[string]models.NotificationSetting{}}
	for _, s := range settings {
		r.settings[s.UserID] = s
	}
	return r
}

func (r *fakeSettingRepo) GetByUserID(_ context.Context, userID string) (*models.NotificationSetting, error) {
	s, ok := r.settings[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, setting *models.NotificationSetting) error {
	r.settings[setting.UserID] = *setting
	return nil
}

type fakeUserSocialMediaRepo struct {
	links map[string]models.UserSocialMedia
}

func newFakeUserSocialMediaRepo(links ...models.UserSocialMedia) *fakeUserSocialMediaRepo {
	r := &fakeUserSocialMediaRepo{links: map[string]models.UserSocialMedia{}}
	for _, l := range links {
		r.links[l.ID] = l
	}
	return r
}

func (r *fakeUserSocialMediaRepo) CreateUserSocialMedia(_ context.Context, usm *models.UserSocialMedia) error {
	r.links[usm.ID] = *usm
	return nil
}

func (r *fakeUserSocialMediaRepo) GetUserSocialMediaByID(_ context.Context, id string) (*models.UserSocialMedia, error) {
	l, ok := r.links[id]
	if !ok {
		return nil, fmt.Errorf("user social media %s: %w", id, repositories.ErrNotFound)
	}
	return &l, nil
}

func (r *fakeUserSocialMediaRepo) GetUserSocialMediaByPeopleID(_ context.Context, peopleID string) (*models.UserSocialMedia, error) {
	for _, l := range r.links {
		if l.PeopleID == peopleID {
			return &l, nil
		}
	}
	return nil, nil
}

func (r *fakeUserSocialMediaRepo) GetUserSocialMediaByUserID(context.Context, string) ([]models.UserSocialMedia, error) {
	return nil, nil
}

func (r *fakeUserSocialMediaRepo) DeleteUserSocialMedia(_ context.Context, id string) error {
	delete(r.links, id)
	return nil
}

type fakeReportRepo struct {
	reports map[string]models.Report
}

func newFakeReportRepo(reports ...models.Report) *fakeReportRepo {
	r := &fakeReportRepo{reports: map[string]models.Report{}}
	for _, rep := range reports {
		r.reports[rep.ID] = rep
	}
	return r
}

func (r *fakeReportRepo) CreateReport(_ context.Context, report *models.Report) error {
	r.reports[report.ID] = *report
	return nil
}

func (r *fakeReportRepo) GetReportByID(_ context.Context, id string) (*models.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, repositories.ErrNotFound)
	}
	return &rep, nil
}

func (r *fakeReportRepo) GetReportByReference(_ context.Context, referenceType models.ReferenceType, referenceID string) (*models.Report, error) {
	for _, rep := range r.reports {
		if rep.ReferenceType == referenceType && rep.ReferenceID == referenceID {
			return &rep, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) UpdateReportStatus(_ context.Context, id string, status models.ReportStatus) error {
	rep, ok := r.reports[id]
	if !ok {
		return fmt.Errorf("report %s: %w", id, repositories.ErrNotFound)
	}
	rep.Status = status
	r.reports[id] = rep
	return nil
}

type fakeUserReportRepo struct {
	userReports []models.UserReport
}

func (r *fakeUserReportRepo) CreateUserReport(_ context.Context, userReport *models.UserReport) error {
	r.userReports = append(r.userReports, *userReport)
	return nil
}

func (r *fakeUserReportRepo) GetUserReportsByReportID(_ context.Context, reportID string) ([]models.UserReport, error) {
	var out []models.UserReport
	for _, ur := range r.userReports {
		if ur.ReportID == reportID {
			out = append(out, ur)
		}
	}
	return out, nil
}

type pushCall struct {
	tokens       []string
	title, body  string
	notification models.Notification
}

type fakePusher struct {
	mu    sync.Mutex
	calls []pushCall
}

func (p *fakePusher) Send(_ context.Context, tokens []string, title, body string, notification models.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, pushCall{tokens: tokens, title: title, body: body, notification: notification})
	return nil
}

func (p *fakePusher) sentTo(userID string) []pushCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []pushCall
	for _, c := range p.calls {
		if c.notification.To == userID {
			out = append(out, c)
		}
	}
	return out
}
