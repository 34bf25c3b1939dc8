// file: internal/services/badge_service.go
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"badgehub/internal/catalog"
	"badgehub/internal/events"
	"badgehub/internal/models"
	"badgehub/internal/repositories"
	"badgehub/internal/validation"
)

// ===============================
// BADGE SERVICE
// ===============================

type badgeService struct {
	catalog      *catalog.Catalog
	progressRepo repositories.ProgressRepository
	badgeRepo    repositories.BadgeRepository
	eventBus     events.EventBus
	logger       *zap.Logger
}

// NewBadgeService creates the award engine. The catalog is injected so
// tests can run against synthetic definition sets.
func NewBadgeService(
	cat *catalog.Catalog,
	progressRepo repositories.ProgressRepository,
	badgeRepo repositories.BadgeRepository,
	eventBus events.EventBus,
	logger *zap.Logger,
) BadgeService {
	return &badgeService{
		catalog:      cat,
		progressRepo: progressRepo,
		badgeRepo:    badgeRepo,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// CheckAndAward evaluates unheld definitions against the user's current
// progress and awards the satisfied ones. Safe to call any number of
// times: awarding is idempotent, and concurrent callers racing on the
// same badge are serialized by the storage uniqueness constraint.
func (s *badgeService) CheckAndAward(ctx context.Context, userID int64) ([]models.BadgeDefinition, error) {
	if userID <= 0 {
		return nil, NewValidationError("user id is required")
	}

	progress, err := s.progressRepo.GetProgress(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to load user progress").WithCause(err)
	}

	owned, err := s.badgeRepo.GetOwnedIDs(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to load owned badges").WithCause(err)
	}

	// All definitions are evaluated against the snapshot taken above;
	// points granted during this pass feed the next check, not this one.
	newlyAwarded := make([]models.BadgeDefinition, 0)
	for _, def := range s.catalog.Definitions() {
		if _, held := owned[def.ID]; held {
			continue
		}
		if !catalog.Evaluate(*progress, def) {
			continue
		}

		inserted, err := s.badgeRepo.Award(ctx, userID, def.ID, time.Now().UTC())
		if err != nil {
			return nil, NewInternalError("failed to award badge").WithCause(err)
		}
		if !inserted {
			// Another caller won the race; their result reports it.
			s.logger.Debug("Concurrent award race lost",
				zap.Int64("user_id", userID),
				zap.String("badge_id", def.ID),
			)
			continue
		}

		if def.Points > 0 {
			if _, err := s.progressRepo.ApplyDelta(ctx, userID, models.MetricTotalPoints, def.Points); err != nil {
				// The award itself stands; points are reconcilable.
				s.logger.Error("Failed to grant badge points",
					zap.Int64("user_id", userID),
					zap.String("badge_id", def.ID),
					zap.Error(err),
				)
			}
		}

		s.publish(ctx, events.NewBadgeAwardedEvent(userID, def.ID, def.Name, def.Points))
		s.logger.Info("Badge awarded",
			zap.Int64("user_id", userID),
			zap.String("badge_id", def.ID),
			zap.String("rarity", def.Rarity),
			zap.Int64("points", def.Points),
		)

		newlyAwarded = append(newlyAwarded, def)
	}

	return newlyAwarded, nil
}

// UpdateProgress applies one additive metric delta. Evaluation is a
// separate step; callers follow up with CheckAndAward when they want
// awards to happen.
func (s *badgeService) UpdateProgress(ctx context.Context, req *UpdateProgressRequest) (*ProgressResponse, error) {
	if req == nil {
		return nil, NewValidationError("request is required")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	progress, err := s.progressRepo.ApplyDelta(ctx, req.UserID, req.Metric, req.Delta)
	if err != nil {
		return nil, NewInternalError("failed to update progress").WithCause(err)
	}

	s.publish(ctx, events.NewProgressUpdatedEvent(req.UserID, req.Metric, req.Delta, progress.Metric(req.Metric)))

	return toProgressResponse(progress), nil
}

// GetUserBadges returns the user's awards ordered by award time ascending.
func (s *badgeService) GetUserBadges(ctx context.Context, userID int64) ([]models.UserBadge, error) {
	if userID <= 0 {
		return nil, NewValidationError("user id is required")
	}

	badges, err := s.badgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to get user badges").WithCause(err)
	}
	if badges == nil {
		badges = []models.UserBadge{}
	}
	return badges, nil
}

// GetUserProgress returns the user's snapshot with level math. Unknown
// users get the zero-valued snapshot, never an error.
func (s *badgeService) GetUserProgress(ctx context.Context, userID int64) (*ProgressResponse, error) {
	if userID <= 0 {
		return nil, NewValidationError("user id is required")
	}

	progress, err := s.progressRepo.GetProgress(ctx, userID)
	if err != nil {
		return nil, NewInternalError("failed to get user progress").WithCause(err)
	}
	return toProgressResponse(progress), nil
}

// ListDefinitions returns the full catalog in catalog order.
func (s *badgeService) ListDefinitions(ctx context.Context) ([]models.BadgeDefinition, error) {
	return s.catalog.Definitions(), nil
}

func (s *badgeService) publish(ctx context.Context, event events.Event) {
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
}

func toProgressResponse(progress *models.UserProgress) *ProgressResponse {
	return &ProgressResponse{
		UserID:  progress.UserID,
		Metrics: progress.Metrics,
		Level:   models.LevelProgressFromPoints(progress.TotalPoints()),
	}
}
