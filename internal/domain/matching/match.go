package matching

import (
	"sort"

	"github.com/platewise/v1/internal/domain/catalog"
)

// MatchAny returns every framework referencing at least one of the given
// ingredient ids anywhere in its slots: optional slots, required-slot
// recommended ingredients, or alternative-slot ingredients. It serves both
// "recipes that use ingredient X" (singleton set) and "recipes matching my
// selected ingredients" (multi-element set).
func MatchAny(frameworks []catalog.Framework, ingredientIDs []string) []catalog.Framework {
	if len(ingredientIDs) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(ingredientIDs))
	for _, id := range ingredientIDs {
		wanted[id] = struct{}{}
	}

	matched := make([]catalog.Framework, 0, len(frameworks))
	for _, fw := range frameworks {
		if intersects(fw.IngredientIDs(), wanted) {
			matched = append(matched, fw)
		}
	}
	return matched
}

// Rank sorts frameworks descending by how many distinct selected
// ingredient titles each one references across its recommended,
// alternative and optional slots. Equal-count frameworks keep their
// relative input order.
//
// Matching elsewhere is id-based, but ranking compares titles. That is a
// deliberate parity decision with the legacy client, not a new design
// choice; see DESIGN.md before changing it.
func Rank(frameworks []catalog.Framework, selection []catalog.IngredientRef) []catalog.Framework {
	selectedTitles := make(map[string]struct{}, len(selection))
	for _, sel := range selection {
		selectedTitles[sel.Title] = struct{}{}
	}

	ranked := make([]catalog.Framework, len(frameworks))
	copy(ranked, frameworks)

	overlaps := make(map[string]int, len(ranked))
	for _, fw := range ranked {
		overlaps[fw.ID] = overlapCount(fw.IngredientTitles(), selectedTitles)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return overlaps[ranked[i].ID] > overlaps[ranked[j].ID]
	})
	return ranked
}

func intersects(have map[string]struct{}, want map[string]struct{}) bool {
	for id := range want {
		if _, ok := have[id]; ok {
			return true
		}
	}
	return false
}

func overlapCount(have map[string]struct{}, want map[string]struct{}) int {
	n := 0
	for title := range have {
		if _, ok := want[title]; ok {
			n++
		}
	}
	return n
}
