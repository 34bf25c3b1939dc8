// file: internal/catalog/evaluate.go
package catalog

import "badgehub/internal/models"

// Evaluate reports whether the progress snapshot satisfies the badge's
// criteria. All conditions must hold unless the definition sets AnyOf,
// in which case a single holding condition suffices. The function is
// pure and safe for concurrent use.
func Evaluate(progress models.UserProgress, def models.BadgeDefinition) bool {
	if len(def.Criteria) == 0 {
		return false
	}
	if def.AnyOf {
		for _, c := range def.Criteria {
			if holds(progress.Metric(c.Metric), c) {
				return true
			}
		}
		return false
	}
	for _, c := range def.Criteria {
		if !holds(progress.Metric(c.Metric), c) {
			return false
		}
	}
	return true
}

func holds(value int64, c models.Condition) bool {
	switch c.Operator {
	case models.OpGTE:
		return value >= c.Threshold
	case models.OpGT:
		return value > c.Threshold
	case models.OpEQ:
		return value == c.Threshold
	case models.OpLTE:
		return value <= c.Threshold
	case models.OpLT:
		return value < c.Threshold
	}
	return false
}
