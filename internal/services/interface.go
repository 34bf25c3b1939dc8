// file: internal/services/interface.go
package services

import (
	"context"

	"badgehub/internal/models"
)

// UpdateProgressRequest carries one additive metric delta. Delta may be
// negative (corrections) or zero (no-op).
type UpdateProgressRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Metric string `json:"metric" validate:"required,min=1,max=64"`
	Delta  int64  `json:"delta"`
}

// ProgressResponse is a progress snapshot enriched with level math.
type ProgressResponse struct {
	UserID  int64                `json:"user_id"`
	Metrics map[string]int64     `json:"metrics"`
	Level   models.LevelProgress `json:"level"`
}

// BadgeService is the award engine and query facade.
type BadgeService interface {
	// CheckAndAward evaluates every definition the user does not yet
	// hold and awards the satisfied ones. Returns the newly awarded
	// definitions in catalog order; an empty slice means nothing new.
	CheckAndAward(ctx context.Context, userID int64) ([]models.BadgeDefinition, error)

	// UpdateProgress applies one additive delta to a metric and returns
	// the updated snapshot. It does not evaluate badges; callers decide
	// when to follow up with CheckAndAward.
	UpdateProgress(ctx context.Context, req *UpdateProgressRequest) (*ProgressResponse, error)

	// GetUserBadges returns the user's awards ordered by award time ascending.
	GetUserBadges(ctx context.Context, userID int64) ([]models.UserBadge, error)

	// GetUserProgress returns the user's snapshot, zero-valued when the
	// user has no recorded activity.
	GetUserProgress(ctx context.Context, userID int64) (*ProgressResponse, error)

	// ListDefinitions returns the full catalog in catalog order.
	ListDefinitions(ctx context.Context) ([]models.BadgeDefinition, error)
}
