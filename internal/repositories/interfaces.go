// file: internal/repositories/interfaces.go
package repositories

import (
	"context"
	"time"

	"badgehub/internal/models"
)

// ProgressRepository persists per-user metric counters.
type ProgressRepository interface {
	// GetProgress returns the user's progress snapshot. A user with no
	// recorded progress gets a zero-valued snapshot, never an error.
	GetProgress(ctx context.Context, userID int64) (*models.UserProgress, error)

	// ApplyDelta atomically adds delta to a single metric and returns
	// the updated snapshot. Negative deltas are allowed.
	ApplyDelta(ctx context.Context, userID int64, metric string, delta int64) (*models.UserProgress, error)
}

// BadgeRepository persists badge awards. The (userID, badgeID) pair is
// unique; Award is the engine's sole serialization point.
type BadgeRepository interface {
	// Award records a badge for the user. It returns true when this
	// call inserted the row and false when the badge was already held;
	// a lost race is not an error.
	Award(ctx context.Context, userID int64, badgeID string, awardedAt time.Time) (bool, error)

	// GetByUserID returns the user's badges ordered by award time ascending.
	GetByUserID(ctx context.Context, userID int64) ([]models.UserBadge, error)

	// GetOwnedIDs returns the set of badge IDs the user already holds.
	GetOwnedIDs(ctx context.Context, userID int64) (map[string]struct{}, error)
}

// NotificationRepository persists user-facing notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
}

// Collection bundles the repositories for service construction.
type Collection struct {
	Progress      ProgressRepository
	Badges        BadgeRepository
	Notifications NotificationRepository
}
