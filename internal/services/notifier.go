// file: internal/services/notifier.go
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"badgehub/internal/events"
	"badgehub/internal/models"
	"badgehub/internal/repositories"
)

// BadgeNotifier turns badge.awarded events into persisted user
// notifications.
type BadgeNotifier struct {
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

// NewBadgeNotifier creates the notifier.
func NewBadgeNotifier(notificationRepo repositories.NotificationRepository, logger *zap.Logger) *BadgeNotifier {
	return &BadgeNotifier{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Register subscribes the notifier on the bus. Call before bus.Start.
func (n *BadgeNotifier) Register(bus events.EventBus) {
	bus.Subscribe(events.EventTypeBadgeAwarded, n.handleBadgeAwarded)
}

func (n *BadgeNotifier) handleBadgeAwarded(ctx context.Context, event events.Event) error {
	awarded, ok := event.(*events.BadgeAwardedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	notification := &models.Notification{
		UserID:  awarded.UserID,
		Type:    models.NotificationBadgeAwarded,
		Title:   "New Badge Unlocked!",
		Message: fmt.Sprintf("You earned the \"%s\" badge (+%d points)", awarded.BadgeName, awarded.Points),
	}

	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to persist badge notification: %w", err)
	}

	n.logger.Debug("Badge notification created",
		zap.Int64("user_id", awarded.UserID),
		zap.String("badge_id", awarded.BadgeID),
	)
	return nil
}
