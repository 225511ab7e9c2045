package memory

import (
	"context"
	"testing"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot before any replace reports empty catalog", func(t *testing.T) {
		repo := NewCatalogRepository()

		_, err := repo.Snapshot(ctx)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeCatalogEmpty))
	})

	t.Run("replace installs a new snapshot wholesale", func(t *testing.T) {
		repo := NewCatalogRepository()

		first := &catalog.Catalog{Frameworks: []catalog.Framework{
			{ID: "fw-1", Slug: "noodle-soup"},
		}}
		require.NoError(t, repo.Replace(ctx, first))

		second := &catalog.Catalog{Frameworks: []catalog.Framework{
			{ID: "fw-2", Slug: "shakshuka"},
		}}
		require.NoError(t, repo.Replace(ctx, second))

		// Nothing from the first snapshot survives.
		_, err := repo.FindFrameworkBySlug(ctx, "noodle-soup")
		assert.ErrorIs(t, err, catalog.ErrFrameworkNotFound)

		fw, err := repo.FindFrameworkBySlug(ctx, "shakshuka")
		require.NoError(t, err)
		assert.Equal(t, "fw-2", fw.ID)
	})

	t.Run("lookups on the current snapshot", func(t *testing.T) {
		repo := NewCatalogRepository()
		require.NoError(t, repo.Replace(ctx, &catalog.Catalog{
			Frameworks: []catalog.Framework{
				{ID: "fw-1", Slug: "noodle-soup"},
			},
			Ingredients: []catalog.Ingredient{
				{ID: "carrot-1", Title: "Carrot"},
			},
		}))

		fw, err := repo.FindFrameworkByID(ctx, "fw-1")
		require.NoError(t, err)
		assert.Equal(t, "noodle-soup", fw.Slug)

		ing, err := repo.FindIngredient(ctx, "carrot-1")
		require.NoError(t, err)
		assert.Equal(t, "Carrot", ing.Title)

		_, err = repo.FindIngredient(ctx, "missing")
		assert.ErrorIs(t, err, catalog.ErrIngredientNotFound)
	})

	t.Run("empty slug lookup never matches", func(t *testing.T) {
		repo := NewCatalogRepository()
		require.NoError(t, repo.Replace(ctx, &catalog.Catalog{
			Frameworks: []catalog.Framework{{ID: "fw-untitled", Slug: ""}},
		}))

		_, err := repo.FindFrameworkBySlug(ctx, "")

		assert.ErrorIs(t, err, catalog.ErrFrameworkNotFound)
	})
}
