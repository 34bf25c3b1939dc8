// file: internal/repositories/memory.go
package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"badgehub/internal/models"
)

// In-memory repositories with the same semantics as the Postgres ones.
// Used in development mode (no DATABASE_URL) and throughout the tests.

// ===============================
// PROGRESS
// ===============================

type memoryProgressRepository struct {
	mu      sync.Mutex
	metrics map[int64]map[string]int64
	updated map[int64]time.Time
}

// NewMemoryProgressRepository creates an in-memory progress repository.
func NewMemoryProgressRepository() ProgressRepository {
	return &memoryProgressRepository{
		metrics: make(map[int64]map[string]int64),
		updated: make(map[int64]time.Time),
	}
}

func (r *memoryProgressRepository) GetProgress(ctx context.Context, userID int64) (*models.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(userID), nil
}

func (r *memoryProgressRepository) ApplyDelta(ctx context.Context, userID int64, metric string, delta int64) (*models.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.metrics[userID]
	if !ok {
		m = make(map[string]int64)
		r.metrics[userID] = m
	}
	m[metric] += delta
	r.updated[userID] = time.Now().UTC()

	return r.snapshotLocked(userID), nil
}

func (r *memoryProgressRepository) snapshotLocked(userID int64) *models.UserProgress {
	progress := &models.UserProgress{
		UserID:    userID,
		Metrics:   make(map[string]int64),
		UpdatedAt: r.updated[userID],
	}
	for metric, value := range r.metrics[userID] {
		progress.Metrics[metric] = value
	}
	return progress
}

// ===============================
// BADGES
// ===============================

type memoryBadgeRepository struct {
	mu     sync.Mutex
	nextID int64
	badges map[int64][]models.UserBadge
	owned  map[int64]map[string]struct{}
}

// NewMemoryBadgeRepository creates an in-memory badge repository. The
// owned set stands in for the storage uniqueness constraint.
func NewMemoryBadgeRepository() BadgeRepository {
	return &memoryBadgeRepository{
		badges: make(map[int64][]models.UserBadge),
		owned:  make(map[int64]map[string]struct{}),
	}
}

func (r *memoryBadgeRepository) Award(ctx context.Context, userID int64, badgeID string, awardedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.owned[userID]
	if !ok {
		set = make(map[string]struct{})
		r.owned[userID] = set
	}
	if _, held := set[badgeID]; held {
		return false, nil
	}

	set[badgeID] = struct{}{}
	r.nextID++
	r.badges[userID] = append(r.badges[userID], models.UserBadge{
		ID:        r.nextID,
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: awardedAt,
	})
	return true, nil
}

func (r *memoryBadgeRepository) GetByUserID(ctx context.Context, userID int64) ([]models.UserBadge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.UserBadge, len(r.badges[userID]))
	copy(out, r.badges[userID])
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AwardedAt.Equal(out[j].AwardedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AwardedAt.Before(out[j].AwardedAt)
	})
	return out, nil
}

func (r *memoryBadgeRepository) GetOwnedIDs(ctx context.Context, userID int64) (map[string]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]struct{}, len(r.owned[userID]))
	for id := range r.owned[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}

// ===============================
// NOTIFICATIONS
// ===============================

type memoryNotificationRepository struct {
	mu     sync.Mutex
	nextID int64
	byUser map[int64][]models.Notification
}

// NewMemoryNotificationRepository creates an in-memory notification repository.
func NewMemoryNotificationRepository() NotificationRepository {
	return &memoryNotificationRepository{
		byUser: make(map[int64][]models.Notification),
	}
}

func (r *memoryNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	n.ID = r.nextID
	n.CreatedAt = time.Now().UTC()
	r.byUser[n.UserID] = append(r.byUser[n.UserID], *n)
	return nil
}

func (r *memoryNotificationRepository) GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.byUser[userID]
	var out []models.Notification
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
