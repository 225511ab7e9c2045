// Package outbound defines the interfaces for outbound ports (secondary/
// driven adapters): the content source, the catalog snapshot store and the
// cache the application uses.
package outbound

import (
	"context"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
)

// CatalogSource fetches and normalizes the full content set from the CMS.
// Implementations own the transport and the raw-payload adaptation; the
// application only ever sees canonical entities.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) (*catalog.Catalog, error)
}

// CatalogRepository stores the current catalog snapshot. A refresh
// replaces the whole snapshot; there are no partial updates.
type CatalogRepository interface {
	Replace(ctx context.Context, cat *catalog.Catalog) error
	Snapshot(ctx context.Context) (*catalog.Catalog, error)

	FindFrameworkBySlug(ctx context.Context, slug string) (*catalog.Framework, error)
	FindFrameworkByID(ctx context.Context, id string) (*catalog.Framework, error)
	FindIngredient(ctx context.Context, id string) (*catalog.Ingredient, error)
}

// CacheRepository defines the caching operations used by the application.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
