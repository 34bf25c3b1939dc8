// file: internal/models/notification.go
package models

import "time"

// Notification types emitted by the badge engine.
const (
	NotificationBadgeAwarded = "badge_awarded"
)

// Notification is a persisted user-facing message.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
