// Package matching contains the pure ingredient-matching logic: the
// allergy/preference filter and the match-and-rank search over the catalog.
// All functions here are side-effect free over immutable input.
package matching

import "github.com/platewise/v1/internal/domain/catalog"

// Exclude removes frameworks whose mandatory ingredients conflict with the
// user's disallowed set.
//
// A framework is excluded only when some component has a required slot with
// an empty alternatives list whose recommended ingredient is disallowed.
// Slots that do have alternatives never trigger exclusion even if the
// recommended ingredient is disallowed: an alternative exists for
// substitution, so the recipe is still usable. Optional slots likewise
// never trigger exclusion since an optional ingredient can be omitted.
// This asymmetry is intentional.
//
// The relative order of surviving frameworks equals the input order.
func Exclude(frameworks []catalog.Framework, disallowed []string) []catalog.Framework {
	if len(disallowed) == 0 {
		return frameworks
	}

	blocked := make(map[string]struct{}, len(disallowed))
	for _, id := range disallowed {
		blocked[id] = struct{}{}
	}

	kept := make([]catalog.Framework, 0, len(frameworks))
	for _, fw := range frameworks {
		if !conflicts(fw, blocked) {
			kept = append(kept, fw)
		}
	}
	return kept
}

// conflicts reports whether any bare required slot binds a blocked
// ingredient.
func conflicts(fw catalog.Framework, blocked map[string]struct{}) bool {
	for _, c := range fw.Components {
		for _, slot := range c.Required {
			if len(slot.Alternatives) > 0 {
				continue
			}
			if _, bad := blocked[slot.Recommended.ID]; bad {
				return true
			}
		}
	}
	return false
}
