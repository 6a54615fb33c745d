package ports

import (
	"context"

	"github.com/stackit/community-api/internal/core/domain"
)

// NotificationInput is a pending notification handed to the dispatcher.
type NotificationInput struct {
	UserID  string
	Content string
}

// NotificationDispatcher decouples notification production from persistence.
// Enqueue must not block the producing request beyond channel buffering.
type NotificationDispatcher interface {
	Enqueue(input NotificationInput)
}

// NotificationService defines use-case operations for notifications.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	// Record persists a single notification. Called by dispatcher workers.
	Record(ctx context.Context, input NotificationInput) error
}
