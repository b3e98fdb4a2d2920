package notification

import (
	"context"

	"go.uber.org/zap"
)

// NotificationService is the sink for user-visible outcome messages:
// booking summaries, recurring-run reports, appointment reminders.
type NotificationService interface {
	Notify(ctx context.Context, title, body string) error
}

// LogNotificationService writes notifications to the structured log. The
// default sink when no push/mail channel is configured.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) Notify(ctx context.Context, title, body string) error {
	s.Logger.Info("notification",
		zap.String("title", title),
		zap.String("body", body))
	return nil
}
