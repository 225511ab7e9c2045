package catalog

import "errors"

// Domain errors for catalog lookups. Nothing in the core is fatal: every
// input shape, however degenerate, produces some well-formed output, and
// misses surface as not-found.

var (
	ErrFrameworkNotFound  = errors.New("framework not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)
