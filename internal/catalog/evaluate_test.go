// file: internal/catalog/evaluate_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"badgehub/internal/models"
)

func progressWith(metrics map[string]int64) models.UserProgress {
	return models.UserProgress{UserID: 1, Metrics: metrics}
}

func TestEvaluate_Operators(t *testing.T) {
	tests := []struct {
		name  string
		op    models.Operator
		value int64
		want  bool
	}{
		{"gte above", models.OpGTE, 11, true},
		{"gte equal", models.OpGTE, 10, true},
		{"gte below", models.OpGTE, 9, false},
		{"gt above", models.OpGT, 11, true},
		{"gt equal", models.OpGT, 10, false},
		{"eq equal", models.OpEQ, 10, true},
		{"eq other", models.OpEQ, 11, false},
		{"lte equal", models.OpLTE, 10, true},
		{"lte above", models.OpLTE, 11, false},
		{"lt below", models.OpLT, 9, true},
		{"lt equal", models.OpLT, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := models.BadgeDefinition{
				ID:   "t",
				Name: "t",
				Criteria: []models.Condition{
					{Metric: "m", Operator: tt.op, Threshold: 10},
				},
			}
			got := Evaluate(progressWith(map[string]int64{"m": tt.value}), def)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_MissingMetricDefaultsToZero(t *testing.T) {
	def := models.BadgeDefinition{
		ID:   "t",
		Name: "t",
		Criteria: []models.Condition{
			{Metric: "articles_published", Operator: models.OpGTE, Threshold: 1},
		},
	}

	assert.False(t, Evaluate(progressWith(nil), def))
	assert.False(t, Evaluate(progressWith(map[string]int64{"other": 5}), def))

	// Zero satisfies a < comparison even with no recorded progress.
	lt := models.BadgeDefinition{
		ID:   "t2",
		Name: "t2",
		Criteria: []models.Condition{
			{Metric: "strikes", Operator: models.OpLT, Threshold: 3},
		},
	}
	assert.True(t, Evaluate(progressWith(nil), lt))
}

func TestEvaluate_AllConditionsMustHold(t *testing.T) {
	def := models.BadgeDefinition{
		ID:   "power_user",
		Name: "Power User",
		Criteria: []models.Condition{
			{Metric: "articles_published", Operator: models.OpGTE, Threshold: 10},
			{Metric: "views", Operator: models.OpGTE, Threshold: 1000},
		},
	}

	assert.False(t, Evaluate(progressWith(map[string]int64{
		"articles_published": 5,
		"views":              999,
	}), def))

	assert.False(t, Evaluate(progressWith(map[string]int64{
		"articles_published": 10,
		"views":              999,
	}), def))

	assert.True(t, Evaluate(progressWith(map[string]int64{
		"articles_published": 10,
		"views":              1000,
	}), def))
}

func TestEvaluate_AnyOfSingleConditionSuffices(t *testing.T) {
	def := models.BadgeDefinition{
		ID:    "connector",
		Name:  "Connector",
		AnyOf: true,
		Criteria: []models.Condition{
			{Metric: "logins", Operator: models.OpGTE, Threshold: 10},
			{Metric: "referrals", Operator: models.OpGTE, Threshold: 1},
		},
	}

	assert.True(t, Evaluate(progressWith(map[string]int64{
		"logins":    0,
		"referrals": 1,
	}), def))

	assert.True(t, Evaluate(progressWith(map[string]int64{
		"logins": 10,
	}), def))

	assert.False(t, Evaluate(progressWith(map[string]int64{
		"logins":    9,
		"referrals": 0,
	}), def))
}

func TestEvaluate_NoCriteriaNeverSatisfied(t *testing.T) {
	def := models.BadgeDefinition{ID: "manual", Name: "Manual"}
	assert.False(t, Evaluate(progressWith(map[string]int64{"anything": 100}), def))
}
