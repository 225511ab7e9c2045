package catalog

import "time"

// Ingredient represents a catalog ingredient. Ingredients are immutable
// once loaded from the source; the catalog is rebuilt wholesale on each
// fetch, never patched in place.
type Ingredient struct {
	ID    string
	Title string

	// AverageWeight in grams, used for leftover-weight aggregation.
	AverageWeight float64

	// SeasonalMonths lists the months the ingredient is in season.
	// Empty means year-round or unknown.
	SeasonalMonths []time.Month

	// Parent is a weak reference to a parent ingredient (id and title
	// only, no ownership). Nil when the ingredient has no parent.
	Parent *IngredientRef
}

// InSeason reports whether the ingredient is in season for the given
// month. Ingredients without seasonal data are always in season.
func (i Ingredient) InSeason(month time.Month) bool {
	if len(i.SeasonalMonths) == 0 {
		return true
	}
	for _, m := range i.SeasonalMonths {
		if m == month {
			return true
		}
	}
	return false
}

// IngredientRef is a weak id+title reference to an ingredient. Equality
// for matching and filtering is always by id; titles are carried for the
// legacy title-based comparisons in ranking and step relevance.
type IngredientRef struct {
	ID    string
	Title string
}

// Ref returns a weak reference to the ingredient.
func (i Ingredient) Ref() IngredientRef {
	return IngredientRef{ID: i.ID, Title: i.Title}
}
