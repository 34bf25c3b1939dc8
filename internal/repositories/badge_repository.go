// file: internal/repositories/badge_repository.go
package repositories

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"badgehub/internal/database"
	"badgehub/internal/models"
)

type badgeRepository struct {
	*BaseRepository
}

// NewBadgeRepository creates a Postgres-backed badge repository
func NewBadgeRepository(db *database.Manager, logger *zap.Logger) BadgeRepository {
	return &badgeRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// Award inserts the award row. The UNIQUE (user_id, badge_id)
// constraint makes the insert the single point of serialization:
// exactly one concurrent caller observes inserted == true.
func (r *badgeRepository) Award(ctx context.Context, userID int64, badgeID string, awardedAt time.Time) (bool, error) {
	query := `
		INSERT INTO user_badges (user_id, badge_id, awarded_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge_id) DO NOTHING`

	result, err := r.ExecContext(ctx, query, userID, badgeID, awardedAt)
	if err != nil {
		return false, fmt.Errorf("failed to award badge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read award result: %w", err)
	}

	if affected == 0 {
		r.logger.Debug("Badge already held, award skipped",
			zap.Int64("user_id", userID),
			zap.String("badge_id", badgeID),
		)
		return false, nil
	}

	return true, nil
}

// GetByUserID returns the user's badges ordered by award time ascending.
func (r *badgeRepository) GetByUserID(ctx context.Context, userID int64) ([]models.UserBadge, error) {
	query := `
		SELECT id, user_id, badge_id, awarded_at
		FROM user_badges
		WHERE user_id = $1
		ORDER BY awarded_at ASC, id ASC`

	rows, err := r.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user badges: %w", err)
	}
	defer rows.Close()

	var badges []models.UserBadge
	for rows.Next() {
		var b models.UserBadge
		if err := rows.Scan(&b.ID, &b.UserID, &b.BadgeID, &b.AwardedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge row: %w", err)
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read badge rows: %w", err)
	}

	return badges, nil
}

// GetOwnedIDs returns the set of badge IDs the user already holds.
func (r *badgeRepository) GetOwnedIDs(ctx context.Context, userID int64) (map[string]struct{}, error) {
	query := `SELECT badge_id FROM user_badges WHERE user_id = $1`

	rows, err := r.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned badge ids: %w", err)
	}
	defer rows.Close()

	owned := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan badge id: %w", err)
		}
		owned[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read badge ids: %w", err)
	}

	return owned, nil
}
