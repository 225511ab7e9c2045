// Package catalog contains the canonical domain model for frameworks.
// A framework is a recipe: a titled, sluggable unit composed of ordered
// components, each with variant-scoped ingredient slots and steps.
package catalog

// Variant is a named flavor/style of a framework (e.g. "chinese",
// "italian") gating which components and steps apply.
type Variant struct {
	ID    string
	Title string
}

// DefaultVariant returns the sentinel variant attached to frameworks that
// declare no flavor tags of their own. It is constructed by the source
// adapter exactly once per framework; downstream code never needs to treat
// an empty variant list as a special case.
func DefaultVariant() Variant {
	return Variant{ID: "variant-default", Title: "Default"}
}

// Framework represents a recipe in its canonical in-memory form.
// Frameworks are created fresh on each content fetch and never patched in
// place; the owning Catalog replaces the prior set wholesale.
type Framework struct {
	ID    string
	Title string
	Slug  string

	ShortDescription string
	LongDescription  string

	HeroImage   ImageRef
	Sponsor     SponsorRef
	CategoryIDs []string

	// LeftoverFrameworkIDs reference follow-up recipes for using leftovers.
	LeftoverFrameworkIDs []string

	Variants   []Variant
	Components []Component
}

// HasVariant reports whether the framework declares the given variant id.
func (f Framework) HasVariant(variantID string) bool {
	for _, v := range f.Variants {
		if v.ID == variantID {
			return true
		}
	}
	return false
}

// VariantIDs returns the ids of all declared variants in order.
func (f Framework) VariantIDs() []string {
	ids := make([]string, len(f.Variants))
	for i, v := range f.Variants {
		ids[i] = v.ID
	}
	return ids
}

// ComponentsForVariant returns the components whose variant membership
// includes the given variant id, preserving declaration order.
func (f Framework) ComponentsForVariant(variantID string) []Component {
	var kept []Component
	for _, c := range f.Components {
		if c.IncludedIn(variantID) {
			kept = append(kept, c)
		}
	}
	return kept
}

// IngredientIDs returns the deduplicated set of ingredient ids referenced
// anywhere in the framework's slots: recommended, alternative and optional.
func (f Framework) IngredientIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, c := range f.Components {
		for _, slot := range c.Required {
			ids[slot.Recommended.ID] = struct{}{}
			for _, alt := range slot.Alternatives {
				ids[alt.Ingredient.ID] = struct{}{}
			}
		}
		for _, slot := range c.Optional {
			ids[slot.Ingredient.ID] = struct{}{}
		}
	}
	return ids
}

// IngredientTitles returns the deduplicated set of ingredient titles
// referenced anywhere in the framework's slots. Ranking compares titles
// rather than ids for parity with the legacy client behavior.
func (f Framework) IngredientTitles() map[string]struct{} {
	titles := make(map[string]struct{})
	for _, c := range f.Components {
		for _, slot := range c.Required {
			titles[slot.Recommended.Title] = struct{}{}
			for _, alt := range slot.Alternatives {
				titles[alt.Ingredient.Title] = struct{}{}
			}
		}
		for _, slot := range c.Optional {
			titles[slot.Ingredient.Title] = struct{}{}
		}
	}
	return titles
}

// Component is a cooking stage (e.g. "aromatics", "protein") within a
// framework, scoped to one or more variants.
type Component struct {
	ID    string
	Title string

	// IncludedInVariants holds resolved variant ids. The source adapter
	// guarantees this is never empty for a framework with declared
	// variants: a component without explicit membership is rewritten to
	// belong to every variant at normalization time.
	IncludedInVariants []string

	Required []RequiredSlot
	Optional []OptionalSlot
	Steps    []Step
}

// IncludedIn reports whether the component belongs to the given variant.
func (c Component) IncludedIn(variantID string) bool {
	for _, id := range c.IncludedInVariants {
		if id == variantID {
			return true
		}
	}
	return false
}

// SlotIngredientIDs returns the ids of every ingredient attached to this
// component through any slot kind.
func (c Component) SlotIngredientIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, slot := range c.Required {
		ids[slot.Recommended.ID] = struct{}{}
		for _, alt := range slot.Alternatives {
			ids[alt.Ingredient.ID] = struct{}{}
		}
	}
	for _, slot := range c.Optional {
		ids[slot.Ingredient.ID] = struct{}{}
	}
	return ids
}

// RequiredSlot is a mandatory ingredient slot. It always carries exactly
// one recommended ingredient as the default binding; the adapter never
// produces a slot without one.
type RequiredSlot struct {
	Recommended  Ingredient
	Quantity     string
	Preparation  string
	Alternatives []AlternativeSlot
}

// AlternativeSlot is a substitute for a required slot's recommended
// ingredient. Quantity and preparation either override or inherit the
// parent slot's values via the explicit inherit flags.
type AlternativeSlot struct {
	Ingredient         Ingredient
	Quantity           string
	Preparation        string
	InheritQuantity    bool
	InheritPreparation bool
}

// EffectiveQuantity resolves the slot's quantity against its parent.
func (a AlternativeSlot) EffectiveQuantity(parent RequiredSlot) string {
	if a.InheritQuantity {
		return parent.Quantity
	}
	return a.Quantity
}

// EffectivePreparation resolves the slot's preparation against its parent.
func (a AlternativeSlot) EffectivePreparation(parent RequiredSlot) string {
	if a.InheritPreparation {
		return parent.Preparation
	}
	return a.Preparation
}

// OptionalSlot is a purely additive ingredient slot with no alternatives.
type OptionalSlot struct {
	Ingredient  Ingredient
	Quantity    string
	Preparation string
}

// Step is a single cooking instruction within a component.
type Step struct {
	ID           string
	Instructions string

	// AlwaysShow marks a step that survives assembly filtering
	// unconditionally.
	AlwaysShow bool

	// RelevantIngredients gate whether the step is shown: a step with a
	// non-empty list only survives if a bound ingredient's title matches
	// one of these. Empty means no gating.
	RelevantIngredients []IngredientRef

	TipIDs []string
}

// SponsorRef is a weak reference to a framework sponsor.
type SponsorRef struct {
	ID    string
	Title string
}

// ImageRef is a weak reference to a hero image asset.
type ImageRef struct {
	ID  string
	URL string
}
