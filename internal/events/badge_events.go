// file: internal/events/badge_events.go
package events

// Badge engine event types.
const (
	EventTypeBadgeAwarded    = "badge.awarded"
	EventTypeProgressUpdated = "progress.updated"
)

// BadgeAwardedEvent fires when a user unlocks a badge.
type BadgeAwardedEvent struct {
	BaseEvent
	UserID    int64  `json:"user_id"`
	BadgeID   string `json:"badge_id"`
	BadgeName string `json:"badge_name"`
	Points    int64  `json:"points"`
}

// NewBadgeAwardedEvent creates a badge awarded event.
func NewBadgeAwardedEvent(userID int64, badgeID, badgeName string, points int64) *BadgeAwardedEvent {
	return &BadgeAwardedEvent{
		BaseEvent: NewBaseEvent(EventTypeBadgeAwarded),
		UserID:    userID,
		BadgeID:   badgeID,
		BadgeName: badgeName,
		Points:    points,
	}
}

// ProgressUpdatedEvent fires after a metric delta is applied.
type ProgressUpdatedEvent struct {
	BaseEvent
	UserID   int64  `json:"user_id"`
	Metric   string `json:"metric"`
	Delta    int64  `json:"delta"`
	NewValue int64  `json:"new_value"`
}

// NewProgressUpdatedEvent creates a progress updated event.
func NewProgressUpdatedEvent(userID int64, metric string, delta, newValue int64) *ProgressUpdatedEvent {
	return &ProgressUpdatedEvent{
		BaseEvent: NewBaseEvent(EventTypeProgressUpdated),
		UserID:    userID,
		Metric:    metric,
		Delta:     delta,
		NewValue:  newValue,
	}
}
