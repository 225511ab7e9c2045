// Package memory provides in-memory repository implementations.
package memory

import (
	"context"
	"sync"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// CatalogRepository holds the current catalog snapshot in memory. Replace
// swaps the whole snapshot under the lock; reads serve whatever snapshot
// is current. Entities inside a snapshot are never mutated.
type CatalogRepository struct {
	mu      sync.RWMutex
	current *catalog.Catalog
}

// NewCatalogRepository creates an empty catalog repository.
func NewCatalogRepository() outbound.CatalogRepository {
	return &CatalogRepository{}
}

// Replace installs a freshly fetched catalog, discarding the prior one.
func (r *CatalogRepository) Replace(ctx context.Context, cat *catalog.Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = cat
	return nil
}

// Snapshot returns the current catalog.
func (r *CatalogRepository) Snapshot(ctx context.Context) (*catalog.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil, errors.NewCatalogEmptyError()
	}
	return r.current, nil
}

// FindFrameworkBySlug looks a framework up by its derived slug. An empty
// slug never matches.
func (r *CatalogRepository) FindFrameworkBySlug(ctx context.Context, slug string) (*catalog.Framework, error) {
	cat, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	fw, ok := cat.FrameworkBySlug(slug)
	if !ok {
		return nil, catalog.ErrFrameworkNotFound
	}
	return fw, nil
}

// FindFrameworkByID looks a framework up by id.
func (r *CatalogRepository) FindFrameworkByID(ctx context.Context, id string) (*catalog.Framework, error) {
	cat, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	fw, ok := cat.FrameworkByID(id)
	if !ok {
		return nil, catalog.ErrFrameworkNotFound
	}
	return fw, nil
}

// FindIngredient looks an ingredient up by id.
func (r *CatalogRepository) FindIngredient(ctx context.Context, id string) (*catalog.Ingredient, error) {
	cat, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ing, ok := cat.IngredientByID(id)
	if !ok {
		return nil, catalog.ErrIngredientNotFound
	}
	return ing, nil
}
