// file: internal/models/badge.go
package models

import "time"

// ===============================
// BADGE DEFINITIONS
// ===============================

// Operator is a comparison applied to a single progress metric.
type Operator string

const (
	OpGTE Operator = ">="
	OpGT  Operator = ">"
	OpEQ  Operator = "=="
	OpLTE Operator = "<="
	OpLT  Operator = "<"
)

// Valid reports whether the operator is one of the supported comparisons.
func (o Operator) Valid() bool {
	switch o {
	case OpGTE, OpGT, OpEQ, OpLTE, OpLT:
		return true
	}
	return false
}

// Badge rarity tiers, cosmetic metadata surfaced to clients.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Badge categories used for catalog filtering.
const (
	CategoryContent     = "content"
	CategoryEngagement  = "engagement"
	CategoryCommunity   = "community"
	CategoryAchievement = "achievement"
	CategorySpecial     = "special"
)

// Condition compares one progress metric against a threshold.
// A metric absent from the user's progress evaluates as 0.
type Condition struct {
	Metric    string   `json:"metric"`
	Operator  Operator `json:"operator"`
	Threshold int64    `json:"threshold"`
}

// BadgeDefinition is a static, immutable badge description. Definitions
// live in code for the lifetime of the process; they are never stored.
type BadgeDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Rarity      string      `json:"rarity"`
	Points      int64       `json:"points"`
	Criteria    []Condition `json:"criteria"`

	// AnyOf switches the combinator from all-conditions-must-hold to
	// any-condition-suffices.
	AnyOf bool `json:"any_of,omitempty"`
}

// ===============================
// USER BADGES
// ===============================

// UserBadge records that a user unlocked a badge. The (UserID, BadgeID)
// pair is unique in storage; awards are never revoked.
type UserBadge struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	BadgeID   string    `json:"badge_id" db:"badge_id"`
	AwardedAt time.Time `json:"awarded_at" db:"awarded_at"`
}
