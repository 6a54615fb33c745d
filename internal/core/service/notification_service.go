package service

import (
	"context"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/stackit/community-api/internal/core/domain"
	"github.com/stackit/community-api/internal/core/ports"
)

// NotificationService lists a user's notifications and records new ones on
// behalf of the dispatcher workers.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// ListForUser returns the caller's notifications newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Record persists a single notification.
func (s *NotificationService) Record(ctx context.Context, input ports.NotificationInput) error {
	n := &domain.Notification{
		ID:        xid.New().String(),
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.logger.Debug().
		Str("notification_id", n.ID).
		Str("user_id", n.UserID).
		Msg("notification recorded")

	return nil
}
