// file: internal/repositories/progress_repository.go
package repositories

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"badgehub/internal/database"
	"badgehub/internal/models"
)

type progressRepository struct {
	*BaseRepository
}

// NewProgressRepository creates a Postgres-backed progress repository
func NewProgressRepository(db *database.Manager, logger *zap.Logger) ProgressRepository {
	return &progressRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// GetProgress returns all metric counters for a user. Users without
// rows get a zero-valued snapshot.
func (r *progressRepository) GetProgress(ctx context.Context, userID int64) (*models.UserProgress, error) {
	query := `
		SELECT metric, value, updated_at
		FROM user_progress
		WHERE user_id = $1`

	rows, err := r.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	defer rows.Close()

	progress := &models.UserProgress{
		UserID:  userID,
		Metrics: make(map[string]int64),
	}

	for rows.Next() {
		var (
			metric    string
			value     int64
			updatedAt time.Time
		)
		if err := rows.Scan(&metric, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		progress.Metrics[metric] = value
		if updatedAt.After(progress.UpdatedAt) {
			progress.UpdatedAt = updatedAt
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress rows: %w", err)
	}

	return progress, nil
}

// ApplyDelta adds delta to one metric atomically. The upsert arithmetic
// runs inside Postgres, so concurrent deltas never lose updates.
func (r *progressRepository) ApplyDelta(ctx context.Context, userID int64, metric string, delta int64) (*models.UserProgress, error) {
	query := `
		INSERT INTO user_progress (user_id, metric, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, metric)
		DO UPDATE SET value = user_progress.value + EXCLUDED.value, updated_at = NOW()
		RETURNING value`

	var value int64
	if err := r.QueryRowContext(ctx, query, userID, metric, delta).Scan(&value); err != nil {
		return nil, fmt.Errorf("failed to apply progress delta: %w", err)
	}

	r.logger.Debug("Applied progress delta",
		zap.Int64("user_id", userID),
		zap.String("metric", metric),
		zap.Int64("delta", delta),
		zap.Int64("value", value),
	)

	return r.GetProgress(ctx, userID)
}
