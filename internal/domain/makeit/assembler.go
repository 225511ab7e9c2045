package makeit

import "github.com/platewise/v1/internal/domain/catalog"

// TerminalStepID identifies the synthetic closing step appended to every
// assembled sequence.
const TerminalStepID = "step-terminal"

// terminalInstruction is the fixed closing text of the terminal step.
const terminalInstruction = "Let's eat!"

// AssembledStep is one presentable step of the cooking flow, stamped with
// its parent component's title as a section header and the ingredients
// bound to that component.
type AssembledStep struct {
	ID             string
	ComponentTitle string
	Instructions   string
	AlwaysShow     bool
	Ingredients    []catalog.Ingredient
	TipIDs         []string

	// relevant carries the step's relevance gate through the pipeline.
	relevant []catalog.IngredientRef
}

// Assemble resolves the chosen variant and produces the ordered, filtered
// step sequence for a framework. It runs the whole single-pass pipeline on
// every call; there is no cross-call memoization, so callers re-run it
// whenever the variant or the selection changes.
//
// The pipeline:
//
//  1. keep components whose variant membership contains variantID
//  2. bind each required slot to its recommended ingredient unless the
//     selection overrides it; selected optional ingredients bind too
//  3. flatten component steps, stamping each with the component title and
//     the bound ingredients appearing in that component's slots
//  4. drop steps with no bound ingredients unless alwaysShow or last
//  5. drop steps whose relevance gate matches no bound ingredient title
//     unless alwaysShow or last
//  6. append the terminal step, which is never subject to the filters
//
// An unknown variant id is not an error: the pipeline runs over an empty
// component set and returns the terminal step alone.
func Assemble(fw catalog.Framework, variantID string, selection []catalog.Ingredient) []AssembledStep {
	components := fw.ComponentsForVariant(variantID)

	flat := flatten(components, selection)

	steps := make([]AssembledStep, 0, len(flat)+1)
	last := len(flat) - 1
	for i, step := range flat {
		if !survives(step, i == last) {
			continue
		}
		steps = append(steps, step)
	}

	return append(steps, terminalStep())
}

// flatten emits one assembled step per component step, in original
// component and step order, with ingredient bindings resolved.
func flatten(components []catalog.Component, selection []catalog.Ingredient) []AssembledStep {
	var flat []AssembledStep
	for _, c := range components {
		bound := bindComponent(c, selection)
		for _, step := range c.Steps {
			flat = append(flat, AssembledStep{
				ID:             step.ID,
				ComponentTitle: c.Title,
				Instructions:   step.Instructions,
				AlwaysShow:     step.AlwaysShow,
				Ingredients:    bound,
				TipIDs:         step.TipIDs,
				relevant:       step.RelevantIngredients,
			})
		}
	}
	return flat
}

// bindComponent resolves the component's current ingredient bindings:
// every required slot binds its recommended ingredient unless the
// selection carries that slot's recommended or one of its alternatives,
// and selected optional ingredients are bound additively. Bindings are
// deduplicated by id, preserving slot order.
func bindComponent(c catalog.Component, selection []catalog.Ingredient) []catalog.Ingredient {
	var bound []catalog.Ingredient
	seen := make(map[string]struct{})

	add := func(ing catalog.Ingredient) {
		if _, dup := seen[ing.ID]; dup {
			return
		}
		seen[ing.ID] = struct{}{}
		bound = append(bound, ing)
	}

	for _, slot := range c.Required {
		add(resolveRequired(slot, selection))
	}
	for _, slot := range c.Optional {
		for _, sel := range selection {
			if sel.ID == slot.Ingredient.ID {
				add(slot.Ingredient)
				break
			}
		}
	}
	return bound
}

// resolveRequired returns the selection override for a required slot when
// one exists, falling back to the recommended default binding.
func resolveRequired(slot catalog.RequiredSlot, selection []catalog.Ingredient) catalog.Ingredient {
	for _, sel := range selection {
		if sel.ID == slot.Recommended.ID {
			return slot.Recommended
		}
		for _, alt := range slot.Alternatives {
			if sel.ID == alt.Ingredient.ID {
				return alt.Ingredient
			}
		}
	}
	return slot.Recommended
}

// survives applies both survival filters to a flattened step. The "last"
// position refers to the full flattened sequence, not to the survivors.
func survives(step AssembledStep, isLast bool) bool {
	if step.AlwaysShow || isLast {
		return true
	}
	// Filter A: a step must have at least one bound ingredient.
	if len(step.Ingredients) == 0 {
		return false
	}
	// Filter B: a non-empty relevance list must match a bound title.
	if len(step.relevant) == 0 {
		return true
	}
	for _, rel := range step.relevant {
		for _, ing := range step.Ingredients {
			if ing.Title == rel.Title {
				return true
			}
		}
	}
	return false
}

// terminalStep builds the synthetic closing step. It is appended after
// filtering and is therefore never filtered itself.
func terminalStep() AssembledStep {
	return AssembledStep{
		ID:           TerminalStepID,
		Instructions: terminalInstruction,
		AlwaysShow:   true,
	}
}
