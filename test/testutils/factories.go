// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
)

// IngredientFactory provides methods to create test ingredients
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a new ingredient factory with seeded faker
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient creates a random ingredient
func (f *IngredientFactory) Ingredient() catalog.Ingredient {
	return catalog.Ingredient{
		ID:            uuid.NewString(),
		Title:         f.faker.Vegetable(),
		AverageWeight: f.faker.Float64Range(5, 500),
	}
}

// SeasonalIngredient creates an ingredient in season for the given months
func (f *IngredientFactory) SeasonalIngredient(months ...time.Month) catalog.Ingredient {
	ing := f.Ingredient()
	ing.SeasonalMonths = months
	return ing
}

// FrameworkBuilder provides a fluent interface for building test frameworks
type FrameworkBuilder struct {
	id         string
	title      string
	variants   []catalog.Variant
	components []catalog.Component
}

// NewFrameworkBuilder creates a new framework builder with default values
func NewFrameworkBuilder() *FrameworkBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	title := faker.Dinner()
	return &FrameworkBuilder{
		id:       uuid.NewString(),
		title:    title,
		variants: []catalog.Variant{catalog.DefaultVariant()},
	}
}

// WithID sets the framework id
func (fb *FrameworkBuilder) WithID(id string) *FrameworkBuilder {
	fb.id = id
	return fb
}

// WithTitle sets the framework title
func (fb *FrameworkBuilder) WithTitle(title string) *FrameworkBuilder {
	fb.title = title
	return fb
}

// WithVariants replaces the default variant with the given flavor tags
func (fb *FrameworkBuilder) WithVariants(tags ...string) *FrameworkBuilder {
	fb.variants = make([]catalog.Variant, len(tags))
	for i, tag := range tags {
		fb.variants[i] = catalog.Variant{ID: catalog.VariantID(tag), Title: tag}
	}
	return fb
}

// WithComponent appends a component
func (fb *FrameworkBuilder) WithComponent(c catalog.Component) *FrameworkBuilder {
	fb.components = append(fb.components, c)
	return fb
}

// Build creates the framework
func (fb *FrameworkBuilder) Build() catalog.Framework {
	return catalog.Framework{
		ID:         fb.id,
		Title:      fb.title,
		Slug:       catalog.Slugify(fb.title),
		Variants:   fb.variants,
		Components: fb.components,
	}
}

// ComponentBuilder provides a fluent interface for building test components
type ComponentBuilder struct {
	id       string
	title    string
	variants []string
	required []catalog.RequiredSlot
	optional []catalog.OptionalSlot
	steps    []catalog.Step
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(title string) *ComponentBuilder {
	return &ComponentBuilder{
		id:    uuid.NewString(),
		title: title,
	}
}

// InVariants scopes the component to the given variant ids
func (cb *ComponentBuilder) InVariants(variantIDs ...string) *ComponentBuilder {
	cb.variants = variantIDs
	return cb
}

// WithRequired appends a required slot binding the given recommended
// ingredient, with optional alternatives
func (cb *ComponentBuilder) WithRequired(recommended catalog.Ingredient, alternatives ...catalog.Ingredient) *ComponentBuilder {
	slot := catalog.RequiredSlot{Recommended: recommended}
	for _, alt := range alternatives {
		slot.Alternatives = append(slot.Alternatives, catalog.AlternativeSlot{Ingredient: alt})
	}
	cb.required = append(cb.required, slot)
	return cb
}

// WithOptional appends an optional slot
func (cb *ComponentBuilder) WithOptional(ing catalog.Ingredient) *ComponentBuilder {
	cb.optional = append(cb.optional, catalog.OptionalSlot{Ingredient: ing})
	return cb
}

// WithStep appends a plain instruction step
func (cb *ComponentBuilder) WithStep(instructions string) *ComponentBuilder {
	cb.steps = append(cb.steps, catalog.Step{
		ID:           uuid.NewString(),
		Instructions: instructions,
	})
	return cb
}

// WithGatedStep appends a step gated on the given relevant ingredients
func (cb *ComponentBuilder) WithGatedStep(instructions string, relevant ...catalog.IngredientRef) *ComponentBuilder {
	cb.steps = append(cb.steps, catalog.Step{
		ID:                  uuid.NewString(),
		Instructions:        instructions,
		RelevantIngredients: relevant,
	})
	return cb
}

// WithAlwaysShownStep appends a step that survives assembly filtering
func (cb *ComponentBuilder) WithAlwaysShownStep(instructions string) *ComponentBuilder {
	cb.steps = append(cb.steps, catalog.Step{
		ID:           uuid.NewString(),
		Instructions: instructions,
		AlwaysShow:   true,
	})
	return cb
}

// Build creates the component
func (cb *ComponentBuilder) Build() catalog.Component {
	return catalog.Component{
		ID:                 cb.id,
		Title:              cb.title,
		IncludedInVariants: cb.variants,
		Required:           cb.required,
		Optional:           cb.optional,
		Steps:              cb.steps,
	}
}
