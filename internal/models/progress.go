// file: internal/models/progress.go
package models

import "time"

// MetricTotalPoints accumulates the points granted by awarded badges.
// It is an ordinary progress metric and may itself appear in criteria.
const MetricTotalPoints = "total_points"

// PointsPerLevel is the flat point cost of each user level.
const PointsPerLevel = 100

// UserProgress is a snapshot of a user's metric counters. A user with no
// recorded activity has an empty Metrics map; every metric reads as 0.
type UserProgress struct {
	UserID    int64            `json:"user_id"`
	Metrics   map[string]int64 `json:"metrics"`
	UpdatedAt time.Time        `json:"updated_at,omitempty"`
}

// Metric returns the counter value for name, 0 when absent.
func (p UserProgress) Metric(name string) int64 {
	if p.Metrics == nil {
		return 0
	}
	return p.Metrics[name]
}

// TotalPoints returns the accumulated badge points.
func (p UserProgress) TotalPoints() int64 {
	return p.Metric(MetricTotalPoints)
}

// LevelFromPoints maps accumulated points to a level, starting at 1.
func LevelFromPoints(points int64) int64 {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// LevelProgress describes where a point total sits within its level.
type LevelProgress struct {
	Level         int64 `json:"level"`
	CurrentPoints int64 `json:"current_points"`
	PointsInLevel int64 `json:"points_in_level"`
	PointsToNext  int64 `json:"points_to_next"`
}

// LevelProgressFromPoints computes the level breakdown for a point total.
func LevelProgressFromPoints(points int64) LevelProgress {
	if points < 0 {
		points = 0
	}
	inLevel := points % PointsPerLevel
	return LevelProgress{
		Level:         LevelFromPoints(points),
		CurrentPoints: points,
		PointsInLevel: inLevel,
		PointsToNext:  PointsPerLevel - inLevel,
	}
}
