package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListByUser returns a user's notifications newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
}
