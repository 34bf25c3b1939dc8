// file: internal/repositories/memory_test.go
package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgehub/internal/models"
)

func TestMemoryProgress_ZeroValuedDefault(t *testing.T) {
	repo := NewMemoryProgressRepository()

	progress, err := repo.GetProgress(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), progress.UserID)
	assert.Empty(t, progress.Metrics)
	assert.Equal(t, int64(0), progress.Metric("articles_published"))
}

func TestMemoryProgress_ApplyDelta(t *testing.T) {
	repo := NewMemoryProgressRepository()
	ctx := context.Background()

	progress, err := repo.ApplyDelta(ctx, 1, "logins", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), progress.Metric("logins"))

	progress, err = repo.ApplyDelta(ctx, 1, "logins", -1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), progress.Metric("logins"))

	// Other users and metrics stay untouched.
	other, err := repo.GetProgress(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.Metric("logins"))
}

func TestMemoryProgress_ConcurrentDeltasCommute(t *testing.T) {
	repo := NewMemoryProgressRepository()
	ctx := context.Background()

	deltas := []int64{3, 2, -1}
	var wg sync.WaitGroup
	for _, d := range deltas {
		wg.Add(1)
		go func(delta int64) {
			defer wg.Done()
			_, err := repo.ApplyDelta(ctx, 1, "views", delta)
			assert.NoError(t, err)
		}(d)
	}
	wg.Wait()

	progress, err := repo.GetProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), progress.Metric("views"))
}

func TestMemoryProgress_SnapshotIsACopy(t *testing.T) {
	repo := NewMemoryProgressRepository()
	ctx := context.Background()

	_, err := repo.ApplyDelta(ctx, 1, "views", 5)
	require.NoError(t, err)

	progress, err := repo.GetProgress(ctx, 1)
	require.NoError(t, err)
	progress.Metrics["views"] = 999

	fresh, err := repo.GetProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), fresh.Metric("views"))
}

func TestMemoryBadges_AwardOnce(t *testing.T) {
	repo := NewMemoryBadgeRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	inserted, err := repo.Award(ctx, 1, "first_article", now)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Award(ctx, 1, "first_article", now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, inserted)

	badges, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "first_article", badges[0].BadgeID)
	assert.Equal(t, now, badges[0].AwardedAt)
}

func TestMemoryBadges_ConcurrentAwardSingleWinner(t *testing.T) {
	repo := NewMemoryBadgeRepository()
	ctx := context.Background()

	const goroutines = 32
	var wins int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := repo.Award(ctx, 1, "connector", time.Now().UTC())
			assert.NoError(t, err)
			if inserted {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)

	badges, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestMemoryBadges_OrderedByAwardTime(t *testing.T) {
	repo := NewMemoryBadgeRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	_, err := repo.Award(ctx, 1, "second", base.Add(time.Hour))
	require.NoError(t, err)
	_, err = repo.Award(ctx, 1, "first", base)
	require.NoError(t, err)
	_, err = repo.Award(ctx, 1, "third", base.Add(2*time.Hour))
	require.NoError(t, err)

	badges, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, badges, 3)
	assert.Equal(t, "first", badges[0].BadgeID)
	assert.Equal(t, "second", badges[1].BadgeID)
	assert.Equal(t, "third", badges[2].BadgeID)
}

func TestMemoryBadges_GetOwnedIDs(t *testing.T) {
	repo := NewMemoryBadgeRepository()
	ctx := context.Background()

	owned, err := repo.GetOwnedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, owned)

	_, err = repo.Award(ctx, 1, "a", time.Now().UTC())
	require.NoError(t, err)
	_, err = repo.Award(ctx, 1, "b", time.Now().UTC())
	require.NoError(t, err)

	owned, err = repo.GetOwnedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, owned, 2)
	_, ok := owned["a"]
	assert.True(t, ok)
}

func TestMemoryNotifications_CreateAndList(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n := &models.Notification{
			UserID:  7,
			Type:    models.NotificationBadgeAwarded,
			Title:   "New Badge Unlocked!",
			Message: "You earned a badge",
		}
		require.NoError(t, repo.Create(ctx, n))
		assert.NotZero(t, n.ID)
	}

	recent, err := repo.GetRecentByUserID(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Greater(t, recent[0].ID, recent[1].ID)
}
