// file: internal/models/progress_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromPoints(t *testing.T) {
	tests := []struct {
		points int64
		level  int64
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{150, 2},
		{250, 3},
		{1000, 11},
		{-5, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelFromPoints(tt.points), "points=%d", tt.points)
	}
}

func TestLevelProgressFromPoints(t *testing.T) {
	lp := LevelProgressFromPoints(250)
	assert.Equal(t, int64(3), lp.Level)
	assert.Equal(t, int64(250), lp.CurrentPoints)
	assert.Equal(t, int64(50), lp.PointsInLevel)
	assert.Equal(t, int64(50), lp.PointsToNext)

	lp = LevelProgressFromPoints(0)
	assert.Equal(t, int64(1), lp.Level)
	assert.Equal(t, int64(100), lp.PointsToNext)
}

func TestUserProgress_MetricDefaultsToZero(t *testing.T) {
	var p UserProgress
	assert.Equal(t, int64(0), p.Metric("anything"))
	assert.Equal(t, int64(0), p.TotalPoints())

	p.Metrics = map[string]int64{MetricTotalPoints: 42}
	assert.Equal(t, int64(42), p.TotalPoints())
}

func TestOperator_Valid(t *testing.T) {
	for _, op := range []Operator{OpGTE, OpGT, OpEQ, OpLTE, OpLT} {
		assert.True(t, op.Valid(), string(op))
	}
	assert.False(t, Operator("!=").Valid())
	assert.False(t, Operator("").Valid())
}
