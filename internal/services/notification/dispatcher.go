package notification

import (
	"context"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/sourcegraph/conc/pool"
)

// Pusher is the external push-delivery channel. Delivery failures are owned
// by the channel; the engine neither retries nor compensates.
type Pusher interface {
	Send(ctx context.Context, tokens []string, title, body string, notification models.Notification) error
}

// notifyUser binds the template to a single recipient, persists it and hands
// it to the push channel. A nonexistent recipient fails with ErrNotFound
// before anything is persisted.
func (s *Service) notifyUser(ctx context.Context, template models.Notification, userID, title, body string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	created, err := s.notifications.CreateNotification(ctx, template.Bind(user.ID))
	if err != nil {
		return err
	}
	if created == nil {
		return nil
	}

	return s.pusher.Send(ctx, user.FCMTokens, title, body, *created)
}

// notifyUsers binds the template once per recipient, batch-persists the
// clones, then pushes to every recipient concurrently with a bounded number
// of in-flight deliveries. Recipients without a matching persisted record are
// skipped.
func (s *Service) notifyUsers(ctx context.Context, template models.Notification, userIDs []string, title, body string) error {
	if len(userIDs) == 0 {
		return nil
	}

	batch := make([]models.Notification, len(userIDs))
	for i, id := range userIDs {
		batch[i] = template.Bind(id)
	}

	created, err := s.notifications.CreateNotifications(ctx, batch)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		return nil
	}

	users, err := s.users.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	byRecipient := make(map[string]models.Notification, len(created))
	for _, n := range created {
		byRecipient[n.To] = n
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(s.fanoutLimit)
	for _, user := range users {
		notification, ok := byRecipient[user.ID]
		if !ok {
			continue
		}
		tokens := user.FCMTokens
		p.Go(func(ctx context.Context) error {
			return s.pusher.Send(ctx, tokens, title, body, notification)
		})
	}
	return p.Wait()
}
