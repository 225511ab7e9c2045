package cms

// Raw record types mirroring the CMS payload. Reference-typed fields may
// be bare ids or populated documents; the adapter resolves both.

// RecipeRecord is one raw recipe as delivered by the content API.
type RecipeRecord struct {
	ID               Reference         `json:"_id"`
	Title            string            `json:"title"`
	ShortDescription string            `json:"shortDescription"`
	LongDescription  string            `json:"longDescription"`
	HeroImage        Reference         `json:"heroImage"`
	Sponsor          Reference         `json:"sponsor"`
	Categories       []Reference       `json:"categories"`
	LeftoverRecipes  []Reference       `json:"leftoverRecipes"`
	VariantTags      []string          `json:"variantTags"`
	Components       []ComponentRecord `json:"components"`
}

// ComponentRecord is one raw cooking stage.
type ComponentRecord struct {
	ID                  Reference                  `json:"_id"`
	Title               string                     `json:"title"`
	IncludedInVariants  []string                   `json:"includedInVariants"`
	RequiredIngredients []RequiredIngredientRecord `json:"requiredIngredients"`
	OptionalIngredients []OptionalIngredientRecord `json:"optionalIngredients"`
	Steps               []StepRecord               `json:"steps"`
}

// RequiredIngredientRecord is a raw mandatory slot.
type RequiredIngredientRecord struct {
	Ingredient             Reference                     `json:"recommendedIngredient"`
	Quantity               string                        `json:"quantity"`
	Preparation            string                        `json:"preparation"`
	AlternativeIngredients []AlternativeIngredientRecord `json:"alternativeIngredients"`
}

// AlternativeIngredientRecord is a raw substitute slot.
type AlternativeIngredientRecord struct {
	Ingredient         Reference `json:"ingredient"`
	Quantity           string    `json:"quantity"`
	Preparation        string    `json:"preparation"`
	InheritQuantity    bool      `json:"inheritQuantity"`
	InheritPreparation bool      `json:"inheritPreparation"`
}

// OptionalIngredientRecord is a raw additive slot.
type OptionalIngredientRecord struct {
	Ingredient  Reference `json:"ingredient"`
	Quantity    string    `json:"quantity"`
	Preparation string    `json:"preparation"`
}

// StepRecord is one raw cooking step.
type StepRecord struct {
	ID                  Reference   `json:"_id"`
	Instructions        string      `json:"instructions"`
	AlwaysShow          bool        `json:"alwaysShow"`
	RelevantIngredients []Reference `json:"relevantIngredients"`
	Tips                []Reference `json:"tips"`
}

// IngredientRecord is one raw catalog ingredient.
type IngredientRecord struct {
	ID             Reference `json:"_id"`
	Title          string    `json:"title"`
	AverageWeight  float64   `json:"averageWeight"`
	SeasonalMonths []int     `json:"seasonalMonths"`
	Parent         Reference `json:"parent"`
}

// SponsorRecord is one raw sponsor document.
type SponsorRecord struct {
	ID    Reference `json:"_id"`
	Title string    `json:"title"`
}

// ImageRecord is one raw image asset document.
type ImageRecord struct {
	ID  Reference `json:"_id"`
	URL string    `json:"url"`
}
