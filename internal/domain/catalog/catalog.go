package catalog

// Catalog is one fetched content set. It owns all nested entities; a new
// fetch produces a new Catalog that replaces the prior one wholesale.
// There are no update or delete operations on its contents.
type Catalog struct {
	Frameworks  []Framework
	Ingredients []Ingredient
}

// FrameworkBySlug looks a framework up by its derived slug. The caller is
// expected to pass a slug produced by Slugify; lookups recompute nothing.
func (c *Catalog) FrameworkBySlug(slug string) (*Framework, bool) {
	if slug == "" {
		return nil, false
	}
	for i := range c.Frameworks {
		if c.Frameworks[i].Slug == slug {
			return &c.Frameworks[i], true
		}
	}
	return nil, false
}

// FrameworkByID looks a framework up by id.
func (c *Catalog) FrameworkByID(id string) (*Framework, bool) {
	if id == "" {
		return nil, false
	}
	for i := range c.Frameworks {
		if c.Frameworks[i].ID == id {
			return &c.Frameworks[i], true
		}
	}
	return nil, false
}

// IngredientByID looks an ingredient up by id.
func (c *Catalog) IngredientByID(id string) (*Ingredient, bool) {
	if id == "" {
		return nil, false
	}
	for i := range c.Ingredients {
		if c.Ingredients[i].ID == id {
			return &c.Ingredients[i], true
		}
	}
	return nil, false
}
