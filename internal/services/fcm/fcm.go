package fcm

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/pkg/logger"
)

// Service delivers push notifications through Firebase Cloud Messaging
type Service struct {
	client *messaging.Client
}

// NewService creates a new FCM Service
func NewService(client *messaging.Client) *Service {
	return &Service{client: client}
}

// Send pushes a notification to every registered device token of one
// recipient. A recipient without tokens is a no-op.
func (s *Service) Send(ctx context.Context, tokens []string, title, body string, notification models.Notification) error {
	if len(tokens) == 0 {
		return nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"id":          notification.ID,
			"type":        string(notification.Type),
			"referenceId": notification.ReferenceID,
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return err
	}

	if response.FailureCount > 0 {
		logger.For(ctx).WithField("failures", response.FailureCount).
			WithField("recipient", notification.To).
			Warn("some FCM deliveries failed")
	}
	return nil
}
