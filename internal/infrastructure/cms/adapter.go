package cms

import (
	"encoding/json"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
)

// Normalize converts a raw recipe record into the canonical framework.
// It never fails: unresolvable references degrade to entities with an
// empty title rather than aborting the conversion, and a titleless record
// yields an empty slug, which downstream lookups simply never match.
func Normalize(raw RecipeRecord) catalog.Framework {
	fw := catalog.Framework{
		ID:               raw.ID.ID,
		Title:            raw.Title,
		Slug:             catalog.Slugify(raw.Title),
		ShortDescription: raw.ShortDescription,
		LongDescription:  raw.LongDescription,
		HeroImage:        resolveImage(raw.HeroImage),
		Sponsor:          resolveSponsor(raw.Sponsor),
		Variants:         normalizeVariants(raw.VariantTags),
	}

	for _, ref := range raw.Categories {
		if ref.ID != "" {
			fw.CategoryIDs = append(fw.CategoryIDs, ref.ID)
		}
	}
	for _, ref := range raw.LeftoverRecipes {
		if ref.ID != "" {
			fw.LeftoverFrameworkIDs = append(fw.LeftoverFrameworkIDs, ref.ID)
		}
	}

	allVariantIDs := make([]string, len(fw.Variants))
	for i, v := range fw.Variants {
		allVariantIDs[i] = v.ID
	}

	for _, rawComp := range raw.Components {
		fw.Components = append(fw.Components, normalizeComponent(rawComp, allVariantIDs))
	}

	return fw
}

// normalizeVariants maps declared flavor tags onto variants. A record with
// no tags gets exactly one synthetic default variant, implicitly attached
// to every component.
func normalizeVariants(tags []string) []catalog.Variant {
	if len(tags) == 0 {
		return []catalog.Variant{catalog.DefaultVariant()}
	}
	variants := make([]catalog.Variant, len(tags))
	for i, tag := range tags {
		variants[i] = catalog.Variant{ID: catalog.VariantID(tag), Title: tag}
	}
	return variants
}

// normalizeComponent resolves a raw component. Variant membership is
// rewritten here, not left ambiguous downstream: tags go through the same
// id derivation as the framework's variant list, and an empty membership
// list becomes the full variant list.
func normalizeComponent(raw ComponentRecord, allVariantIDs []string) catalog.Component {
	comp := catalog.Component{
		ID:    raw.ID.ID,
		Title: raw.Title,
	}

	if len(raw.IncludedInVariants) == 0 {
		comp.IncludedInVariants = append([]string(nil), allVariantIDs...)
	} else {
		comp.IncludedInVariants = make([]string, len(raw.IncludedInVariants))
		for i, tag := range raw.IncludedInVariants {
			comp.IncludedInVariants[i] = catalog.VariantID(tag)
		}
	}

	for _, rawSlot := range raw.RequiredIngredients {
		slot := catalog.RequiredSlot{
			Recommended: ResolveIngredient(rawSlot.Ingredient),
			Quantity:    rawSlot.Quantity,
			Preparation: rawSlot.Preparation,
		}
		for _, rawAlt := range rawSlot.AlternativeIngredients {
			slot.Alternatives = append(slot.Alternatives, catalog.AlternativeSlot{
				Ingredient:         ResolveIngredient(rawAlt.Ingredient),
				Quantity:           rawAlt.Quantity,
				Preparation:        rawAlt.Preparation,
				InheritQuantity:    rawAlt.InheritQuantity,
				InheritPreparation: rawAlt.InheritPreparation,
			})
		}
		comp.Required = append(comp.Required, slot)
	}

	for _, rawSlot := range raw.OptionalIngredients {
		comp.Optional = append(comp.Optional, catalog.OptionalSlot{
			Ingredient:  ResolveIngredient(rawSlot.Ingredient),
			Quantity:    rawSlot.Quantity,
			Preparation: rawSlot.Preparation,
		})
	}

	for _, rawStep := range raw.Steps {
		comp.Steps = append(comp.Steps, normalizeStep(rawStep))
	}

	return comp
}

func normalizeStep(raw StepRecord) catalog.Step {
	step := catalog.Step{
		ID:           raw.ID.ID,
		Instructions: raw.Instructions,
		AlwaysShow:   raw.AlwaysShow,
	}
	for _, ref := range raw.RelevantIngredients {
		ing := ResolveIngredient(ref)
		step.RelevantIngredients = append(step.RelevantIngredients, ing.Ref())
	}
	for _, ref := range raw.Tips {
		if ref.ID != "" {
			step.TipIDs = append(step.TipIDs, ref.ID)
		}
	}
	return step
}

// ResolveIngredient resolves an ingredient reference: a populated document
// is normalized in full, a bare id degrades to an ingredient with an empty
// title.
func ResolveIngredient(ref Reference) catalog.Ingredient {
	if ref.IsPopulated() {
		var raw IngredientRecord
		if err := json.Unmarshal(ref.Raw, &raw); err == nil {
			ing := NormalizeIngredient(raw)
			if ing.ID == "" {
				ing.ID = ref.ID
			}
			return ing
		}
	}
	return catalog.Ingredient{ID: ref.ID}
}

// NormalizeIngredient converts a raw ingredient record into the canonical
// ingredient, with the same degradation rules as Normalize.
func NormalizeIngredient(raw IngredientRecord) catalog.Ingredient {
	ing := catalog.Ingredient{
		ID:            raw.ID.ID,
		Title:         raw.Title,
		AverageWeight: raw.AverageWeight,
	}
	for _, m := range raw.SeasonalMonths {
		if m >= 1 && m <= 12 {
			ing.SeasonalMonths = append(ing.SeasonalMonths, time.Month(m))
		}
	}
	if parent := resolveParent(raw.Parent); parent != nil {
		ing.Parent = parent
	}
	return ing
}

// resolveParent resolves the weak parent reference, keeping id and title
// only. A reference with neither yields no parent at all.
func resolveParent(ref Reference) *catalog.IngredientRef {
	if ref.IsPopulated() {
		var raw IngredientRecord
		if err := json.Unmarshal(ref.Raw, &raw); err == nil {
			id := raw.ID.ID
			if id == "" {
				id = ref.ID
			}
			if id != "" || raw.Title != "" {
				return &catalog.IngredientRef{ID: id, Title: raw.Title}
			}
		}
	}
	if ref.ID != "" {
		return &catalog.IngredientRef{ID: ref.ID}
	}
	return nil
}

func resolveSponsor(ref Reference) catalog.SponsorRef {
	if ref.IsPopulated() {
		var raw SponsorRecord
		if err := json.Unmarshal(ref.Raw, &raw); err == nil {
			id := raw.ID.ID
			if id == "" {
				id = ref.ID
			}
			return catalog.SponsorRef{ID: id, Title: raw.Title}
		}
	}
	return catalog.SponsorRef{ID: ref.ID}
}

func resolveImage(ref Reference) catalog.ImageRef {
	if ref.IsPopulated() {
		var raw ImageRecord
		if err := json.Unmarshal(ref.Raw, &raw); err == nil {
			id := raw.ID.ID
			if id == "" {
				id = ref.ID
			}
			return catalog.ImageRef{ID: id, URL: raw.URL}
		}
	}
	return catalog.ImageRef{ID: ref.ID}
}
