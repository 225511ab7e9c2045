// Package inbound defines the interfaces for inbound ports (primary/
// driving adapters): the use cases the application exposes to HTTP
// handlers and any other callers, plus their command and DTO shapes.
package inbound

import "context"

// CatalogService defines the recipe-composition use cases. This is the
// primary port the HTTP layer drives.
type CatalogService interface {
	// Refresh fetches the content set from the source and replaces the
	// in-memory catalog wholesale.
	Refresh(ctx context.Context) error

	// Queries over the current catalog snapshot.
	ListFrameworks(ctx context.Context) ([]FrameworkSummaryDTO, error)
	GetFrameworkBySlug(ctx context.Context, slug string) (*FrameworkDTO, error)
	GetFrameworkByID(ctx context.Context, id string) (*FrameworkDTO, error)
	ListIngredients(ctx context.Context) ([]IngredientDTO, error)
	GetIngredient(ctx context.Context, id string) (*IngredientDTO, error)

	// Matching and ranking.
	SearchByIngredients(ctx context.Context, query SearchQuery) ([]FrameworkSummaryDTO, error)
	FrameworksUsingIngredient(ctx context.Context, ingredientID string) ([]FrameworkSummaryDTO, error)

	// Make-It: resolve a variant and assemble the cooking-flow steps.
	AssembleSteps(ctx context.Context, cmd AssembleCommand) (*StepSequenceDTO, error)
}

// SearchQuery carries the user's ingredient selection and exclusions.
type SearchQuery struct {
	// Selection is the ordered id+title list of ingredients the user has.
	Selection []SelectedIngredient
	// DisallowedIngredientIDs excludes frameworks whose mandatory
	// ingredients conflict with the user's allergies or preferences.
	DisallowedIngredientIDs []string
}

// SelectedIngredient is one user-selected ingredient. Matching uses the
// id; ranking compares titles.
type SelectedIngredient struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AssembleCommand requests a step sequence for one framework and variant.
// Exactly one of FrameworkID or Slug must be set; Slug wins when both are.
type AssembleCommand struct {
	FrameworkID string
	Slug        string
	VariantID   string
	// Selection is a snapshot of the caller-owned ingredient selection;
	// ids not present in the framework's slots are ignored.
	Selection []SelectedIngredient
}

// FrameworkSummaryDTO is the list-screen shape of a framework.
type FrameworkSummaryDTO struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description,omitempty"`
	HeroImageURL     string   `json:"hero_image_url,omitempty"`
	SponsorTitle     string   `json:"sponsor_title,omitempty"`
	CategoryIDs      []string `json:"category_ids,omitempty"`
	VariantCount     int      `json:"variant_count"`
}

// FrameworkDTO is the full detail shape of a framework.
type FrameworkDTO struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Slug                 string         `json:"slug"`
	ShortDescription     string         `json:"short_description,omitempty"`
	LongDescription      string         `json:"long_description,omitempty"`
	HeroImageURL         string         `json:"hero_image_url,omitempty"`
	SponsorTitle         string         `json:"sponsor_title,omitempty"`
	CategoryIDs          []string       `json:"category_ids,omitempty"`
	LeftoverFrameworkIDs []string       `json:"leftover_framework_ids,omitempty"`
	Variants             []VariantDTO   `json:"variants"`
	Components           []ComponentDTO `json:"components"`
}

// VariantDTO is one selectable flavor of a framework.
type VariantDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ComponentDTO is one cooking stage of a framework.
type ComponentDTO struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	IncludedInVariants []string          `json:"included_in_variants"`
	Required           []RequiredSlotDTO `json:"required_ingredients"`
	Optional           []OptionalSlotDTO `json:"optional_ingredients,omitempty"`
	StepCount          int               `json:"step_count"`
}

// RequiredSlotDTO is a mandatory ingredient slot with its default binding.
type RequiredSlotDTO struct {
	Recommended  IngredientDTO        `json:"recommended_ingredient"`
	Quantity     string               `json:"quantity,omitempty"`
	Preparation  string               `json:"preparation,omitempty"`
	Alternatives []AlternativeSlotDTO `json:"alternative_ingredients,omitempty"`
}

// AlternativeSlotDTO is a substitute with inheritance already resolved.
type AlternativeSlotDTO struct {
	Ingredient  IngredientDTO `json:"ingredient"`
	Quantity    string        `json:"quantity,omitempty"`
	Preparation string        `json:"preparation,omitempty"`
}

// OptionalSlotDTO is a purely additive ingredient slot.
type OptionalSlotDTO struct {
	Ingredient  IngredientDTO `json:"ingredient"`
	Quantity    string        `json:"quantity,omitempty"`
	Preparation string        `json:"preparation,omitempty"`
}

// IngredientDTO is the transfer shape of an ingredient.
type IngredientDTO struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	AverageWeight  float64 `json:"average_weight,omitempty"`
	SeasonalMonths []int   `json:"seasonal_months,omitempty"`
	ParentID       string  `json:"parent_id,omitempty"`
	ParentTitle    string  `json:"parent_title,omitempty"`
}

// StepSequenceDTO is the assembled cooking flow for one variant.
type StepSequenceDTO struct {
	FrameworkID string    `json:"framework_id"`
	VariantID   string    `json:"variant_id"`
	Steps       []StepDTO `json:"steps"`
}

// StepDTO is one presentable step with its bound ingredients.
type StepDTO struct {
	ID             string          `json:"id"`
	ComponentTitle string          `json:"component_title,omitempty"`
	Instructions   string          `json:"instructions"`
	AlwaysShow     bool            `json:"always_show"`
	Ingredients    []IngredientDTO `json:"ingredients,omitempty"`
	TipIDs         []string        `json:"tip_ids,omitempty"`
}
