// file: internal/catalog/catalog.go
package catalog

import (
	"fmt"

	"badgehub/internal/models"
)

// ===============================
// BADGE CATALOG
// ===============================

// Catalog is the immutable, ordered set of badge definitions for the
// process lifetime. Construct once at startup and inject it; a Catalog
// is safe for concurrent use because it is never mutated after New.
type Catalog struct {
	defs []models.BadgeDefinition
	byID map[string]int
}

// New validates the definitions and builds a catalog. Validation errors
// are startup-fatal for the caller: a malformed definition means the
// static badge set itself is broken.
func New(defs []models.BadgeDefinition) (*Catalog, error) {
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("badge definition at index %d has an empty id", i)
		}
		if _, dup := byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate badge definition id %q", def.ID)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("badge definition %q has an empty name", def.ID)
		}
		if def.Points < 0 {
			return nil, fmt.Errorf("badge definition %q has negative points", def.ID)
		}
		if len(def.Criteria) == 0 {
			return nil, fmt.Errorf("badge definition %q has no criteria", def.ID)
		}
		for j, c := range def.Criteria {
			if c.Metric == "" {
				return nil, fmt.Errorf("badge definition %q condition %d has an empty metric", def.ID, j)
			}
			if !c.Operator.Valid() {
				return nil, fmt.Errorf("badge definition %q condition %d has unknown operator %q", def.ID, j, c.Operator)
			}
			if c.Threshold < 0 {
				return nil, fmt.Errorf("badge definition %q condition %d has a negative threshold", def.ID, j)
			}
		}
		byID[def.ID] = i
	}

	owned := make([]models.BadgeDefinition, len(defs))
	copy(owned, defs)
	return &Catalog{defs: owned, byID: byID}, nil
}

// MustNew is New for static definition sets known to be valid.
func MustNew(defs []models.BadgeDefinition) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// Definitions returns all definitions in catalog order. Callers must
// not modify the returned slice.
func (c *Catalog) Definitions() []models.BadgeDefinition { return c.defs }

// ByID looks up a definition by badge ID.
func (c *Catalog) ByID(id string) (models.BadgeDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.BadgeDefinition{}, false
	}
	return c.defs[i], true
}

// ByCategory returns the definitions in a category, in catalog order.
func (c *Catalog) ByCategory(category string) []models.BadgeDefinition {
	var out []models.BadgeDefinition
	for _, def := range c.defs {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// ByRarity returns the definitions of a rarity tier, in catalog order.
func (c *Catalog) ByRarity(rarity string) []models.BadgeDefinition {
	var out []models.BadgeDefinition
	for _, def := range c.defs {
		if def.Rarity == rarity {
			out = append(out, def)
		}
	}
	return out
}
