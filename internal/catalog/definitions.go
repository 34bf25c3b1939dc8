// file: internal/catalog/definitions.go
package catalog

import "badgehub/internal/models"

// DefaultDefinitions returns the built-in badge set. Order here is
// catalog order, which is also the order awards are reported in.
func DefaultDefinitions() []models.BadgeDefinition {
	return []models.BadgeDefinition{
		{
			ID:          "first_article",
			Name:        "First Steps",
			Description: "Published your first article",
			Category:    models.CategoryContent,
			Icon:        "pencil",
			Color:       "#10B981",
			Rarity:      models.RarityCommon,
			Points:      10,
			Criteria: []models.Condition{
				{Metric: "articles_published", Operator: models.OpGTE, Threshold: 1},
			},
		},
		{
			ID:          "regular_writer",
			Name:        "Regular Writer",
			Description: "Published 5 articles",
			Category:    models.CategoryContent,
			Icon:        "notebook",
			Color:       "#3B82F6",
			Rarity:      models.RarityCommon,
			Points:      25,
			Criteria: []models.Condition{
				{Metric: "articles_published", Operator: models.OpGTE, Threshold: 5},
			},
		},
		{
			ID:          "prolific_author",
			Name:        "Prolific Author",
			Description: "Published 10 articles",
			Category:    models.CategoryContent,
			Icon:        "books",
			Color:       "#8B5CF6",
			Rarity:      models.RarityRare,
			Points:      50,
			Criteria: []models.Condition{
				{Metric: "articles_published", Operator: models.OpGTE, Threshold: 10},
			},
		},
		{
			ID:          "conversation_starter",
			Name:        "Conversation Starter",
			Description: "Posted 10 comments",
			Category:    models.CategoryEngagement,
			Icon:        "speech-bubble",
			Color:       "#F59E0B",
			Rarity:      models.RarityCommon,
			Points:      15,
			Criteria: []models.Condition{
				{Metric: "comments_posted", Operator: models.OpGTE, Threshold: 10},
			},
		},
		{
			ID:          "appreciator",
			Name:        "Appreciator",
			Description: "Gave 50 reactions",
			Category:    models.CategoryEngagement,
			Icon:        "heart",
			Color:       "#EF4444",
			Rarity:      models.RarityCommon,
			Points:      20,
			Criteria: []models.Condition{
				{Metric: "reactions_given", Operator: models.OpGTE, Threshold: 50},
			},
		},
		{
			ID:          "curator",
			Name:        "Curator",
			Description: "Saved 20 bookmarks",
			Category:    models.CategoryEngagement,
			Icon:        "bookmark",
			Color:       "#06B6D4",
			Rarity:      models.RarityCommon,
			Points:      15,
			Criteria: []models.Condition{
				{Metric: "bookmarks_saved", Operator: models.OpGTE, Threshold: 20},
			},
		},
		{
			ID:          "complete_profile",
			Name:        "All Set Up",
			Description: "Completed your profile",
			Category:    models.CategoryAchievement,
			Icon:        "badge-check",
			Color:       "#14B8A6",
			Rarity:      models.RarityRare,
			Points:      30,
			Criteria: []models.Condition{
				{Metric: "profile_complete", Operator: models.OpGTE, Threshold: 1},
			},
		},
		{
			ID:          "early_adopter",
			Name:        "Early Adopter",
			Description: "Active for 30 days",
			Category:    models.CategorySpecial,
			Icon:        "sunrise",
			Color:       "#F97316",
			Rarity:      models.RarityEpic,
			Points:      100,
			Criteria: []models.Condition{
				{Metric: "days_active", Operator: models.OpGTE, Threshold: 30},
			},
		},
		{
			ID:          "connector",
			Name:        "Connector",
			Description: "Referred a friend or logged in 10 times",
			Category:    models.CategoryCommunity,
			Icon:        "link",
			Color:       "#6366F1",
			Rarity:      models.RarityRare,
			Points:      40,
			AnyOf:       true,
			Criteria: []models.Condition{
				{Metric: "referrals", Operator: models.OpGTE, Threshold: 1},
				{Metric: "logins", Operator: models.OpGTE, Threshold: 10},
			},
		},
		{
			ID:          "community_pillar",
			Name:        "Community Pillar",
			Description: "Consistent writing, commenting and reacting",
			Category:    models.CategoryCommunity,
			Icon:        "trophy",
			Color:       "#EAB308",
			Rarity:      models.RarityEpic,
			Points:      150,
			Criteria: []models.Condition{
				{Metric: "articles_published", Operator: models.OpGTE, Threshold: 5},
				{Metric: "comments_posted", Operator: models.OpGTE, Threshold: 20},
				{Metric: "reactions_given", Operator: models.OpGTE, Threshold: 100},
			},
		},
		{
			ID:          "legend",
			Name:        "Legend",
			Description: "Earned 1000 points",
			Category:    models.CategorySpecial,
			Icon:        "crown",
			Color:       "#A855F7",
			Rarity:      models.RarityLegendary,
			Points:      0,
			Criteria: []models.Condition{
				{Metric: models.MetricTotalPoints, Operator: models.OpGTE, Threshold: 1000},
			},
		},
	}
}
