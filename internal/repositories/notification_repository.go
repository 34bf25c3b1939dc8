// file: internal/repositories/notification_repository.go
package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"badgehub/internal/database"
	"badgehub/internal/models"
)

type notificationRepository struct {
	*BaseRepository
}

// NewNotificationRepository creates a Postgres-backed notification repository
func NewNotificationRepository(db *database.Manager, logger *zap.Logger) NotificationRepository {
	return &notificationRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	err := r.QueryRowContext(ctx, query, n.UserID, n.Type, n.Title, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	r.logger.Debug("Notification created",
		zap.Int64("user_id", n.UserID),
		zap.String("type", n.Type),
	)
	return nil
}

func (r *notificationRepository) GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, user_id, type, title, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notification rows: %w", err)
	}

	return notifications, nil
}
