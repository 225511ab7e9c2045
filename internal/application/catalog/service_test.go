package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/makeit"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// stubSource serves a fixed catalog or a fixed error.
type stubSource struct {
	catalog *catalog.Catalog
	err     error
	calls   int
}

func (s *stubSource) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

// ServiceTestSuite exercises the catalog application service against the
// in-memory snapshot store and cache.
type ServiceTestSuite struct {
	suite.Suite

	source  *stubSource
	service inbound.CatalogService
}

func (s *ServiceTestSuite) SetupTest() {
	s.source = &stubSource{catalog: s.fixtureCatalog()}
	s.service = NewService(
		s.source,
		memory.NewCatalogRepository(),
		memory.NewCacheRepository(),
		time.Minute,
		zap.NewNop(),
	)
}

func (s *ServiceTestSuite) fixtureCatalog() *catalog.Catalog {
	carrot := catalog.Ingredient{ID: "carrot-1", Title: "Carrot"}
	daikon := catalog.Ingredient{ID: "daikon-1", Title: "Daikon"}
	peanut := catalog.Ingredient{ID: "peanut-1", Title: "Peanut"}
	tofu := catalog.Ingredient{ID: "tofu-1", Title: "Tofu"}

	return &catalog.Catalog{
		Frameworks: []catalog.Framework{
			{
				ID:    "fw-soup",
				Title: "Noodle Soup",
				Slug:  "noodle-soup",
				Variants: []catalog.Variant{
					{ID: "variant-chinese", Title: "Chinese"},
				},
				Components: []catalog.Component{{
					ID:                 "comp-broth",
					Title:              "Broth",
					IncludedInVariants: []string{"variant-chinese"},
					Required: []catalog.RequiredSlot{{
						Recommended: carrot,
						Alternatives: []catalog.AlternativeSlot{
							{Ingredient: daikon},
						},
					}},
					Steps: []catalog.Step{
						{ID: "step-simmer", Instructions: "Simmer."},
					},
				}},
			},
			{
				ID:       "fw-satay",
				Title:    "Peanut Satay",
				Slug:     "peanut-satay",
				Variants: []catalog.Variant{catalog.DefaultVariant()},
				Components: []catalog.Component{{
					ID:                 "comp-sauce",
					Title:              "Sauce",
					IncludedInVariants: []string{"variant-default"},
					Required: []catalog.RequiredSlot{
						{Recommended: peanut},
						{Recommended: tofu},
					},
					Steps: []catalog.Step{
						{ID: "step-blend", Instructions: "Blend."},
					},
				}},
			},
		},
		Ingredients: []catalog.Ingredient{carrot, daikon, peanut, tofu},
	}
}

func (s *ServiceTestSuite) refresh() {
	require.NoError(s.T(), s.service.Refresh(context.Background()))
}

func (s *ServiceTestSuite) TestRefresh() {
	s.Run("SuccessfulRefresh_InstallsCatalog", func() {
		s.refresh()

		frameworks, err := s.service.ListFrameworks(context.Background())
		require.NoError(s.T(), err)
		assert.Len(s.T(), frameworks, 2)
	})

	s.Run("SourceFailure_SurfacesSourceError", func() {
		s.source.err = assert.AnError

		err := s.service.Refresh(context.Background())

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeSourceError))
	})
}

func (s *ServiceTestSuite) TestQueriesBeforeFirstRefresh() {
	_, err := s.service.ListIngredients(context.Background())

	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, errors.CodeCatalogEmpty))
}

func (s *ServiceTestSuite) TestLookups() {
	s.refresh()
	ctx := context.Background()

	s.Run("GetFrameworkBySlug_ReturnsDetail", func() {
		fw, err := s.service.GetFrameworkBySlug(ctx, "noodle-soup")

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "fw-soup", fw.ID)
		require.Len(s.T(), fw.Components, 1)
		require.Len(s.T(), fw.Components[0].Required, 1)
		assert.Equal(s.T(), "carrot-1", fw.Components[0].Required[0].Recommended.ID)
	})

	s.Run("GetFrameworkBySlug_AcceptsRawTitle", func() {
		fw, err := s.service.GetFrameworkBySlug(ctx, "Noodle Soup")

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "fw-soup", fw.ID)
	})

	s.Run("UnknownSlug_IsNotFound", func() {
		_, err := s.service.GetFrameworkBySlug(ctx, "missing")

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeFrameworkNotFound))
	})

	s.Run("GetIngredient_ByID", func() {
		ing, err := s.service.GetIngredient(ctx, "carrot-1")

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "Carrot", ing.Title)

		_, err = s.service.GetIngredient(ctx, "missing")
		assert.True(s.T(), errors.Is(err, errors.CodeIngredientNotFound))
	})
}

func (s *ServiceTestSuite) TestSearchByIngredients() {
	s.refresh()
	ctx := context.Background()

	s.Run("MatchesAndRanksByOverlap", func() {
		results, err := s.service.SearchByIngredients(ctx, inbound.SearchQuery{
			Selection: []inbound.SelectedIngredient{
				{ID: "peanut-1", Title: "Peanut"},
				{ID: "tofu-1", Title: "Tofu"},
				{ID: "carrot-1", Title: "Carrot"},
			},
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), results, 2)
		assert.Equal(s.T(), "fw-satay", results[0].ID)
		assert.Equal(s.T(), "fw-soup", results[1].ID)
	})

	s.Run("DisallowedIngredient_ExcludesBeforeMatching", func() {
		results, err := s.service.SearchByIngredients(ctx, inbound.SearchQuery{
			Selection: []inbound.SelectedIngredient{
				{ID: "peanut-1", Title: "Peanut"},
				{ID: "carrot-1", Title: "Carrot"},
			},
			DisallowedIngredientIDs: []string{"peanut-1"},
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), results, 1)
		assert.Equal(s.T(), "fw-soup", results[0].ID)
	})

	s.Run("DisallowedWithAlternative_DoesNotExclude", func() {
		// The soup's carrot slot has a daikon alternative, so
		// disallowing carrot keeps the recipe usable.
		results, err := s.service.SearchByIngredients(ctx, inbound.SearchQuery{
			Selection: []inbound.SelectedIngredient{
				{ID: "daikon-1", Title: "Daikon"},
			},
			DisallowedIngredientIDs: []string{"carrot-1"},
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), results, 1)
		assert.Equal(s.T(), "fw-soup", results[0].ID)
	})

	s.Run("EmptySelection_MatchesNothing", func() {
		results, err := s.service.SearchByIngredients(ctx, inbound.SearchQuery{})

		require.NoError(s.T(), err)
		assert.Empty(s.T(), results)
	})
}

func (s *ServiceTestSuite) TestFrameworksUsingIngredient() {
	s.refresh()

	results, err := s.service.FrameworksUsingIngredient(context.Background(), "daikon-1")

	require.NoError(s.T(), err)
	require.Len(s.T(), results, 1)
	assert.Equal(s.T(), "fw-soup", results[0].ID)
}

func (s *ServiceTestSuite) TestAssembleSteps() {
	s.refresh()
	ctx := context.Background()

	s.Run("BySlug_AssemblesSequence", func() {
		seq, err := s.service.AssembleSteps(ctx, inbound.AssembleCommand{
			Slug:      "noodle-soup",
			VariantID: "variant-chinese",
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "fw-soup", seq.FrameworkID)
		require.Len(s.T(), seq.Steps, 2)
		assert.Equal(s.T(), "step-simmer", seq.Steps[0].ID)
		assert.Equal(s.T(), makeit.TerminalStepID, seq.Steps[1].ID)
	})

	s.Run("SelectionOverride_AppearsInBindings", func() {
		seq, err := s.service.AssembleSteps(ctx, inbound.AssembleCommand{
			Slug:      "noodle-soup",
			VariantID: "variant-chinese",
			Selection: []inbound.SelectedIngredient{
				{ID: "daikon-1", Title: "Daikon"},
			},
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), seq.Steps, 2)
		require.Len(s.T(), seq.Steps[0].Ingredients, 1)
		assert.Equal(s.T(), "daikon-1", seq.Steps[0].Ingredients[0].ID)
	})

	s.Run("UnknownVariant_YieldsTerminalStepAlone", func() {
		seq, err := s.service.AssembleSteps(ctx, inbound.AssembleCommand{
			Slug:      "noodle-soup",
			VariantID: "variant-thai",
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), seq.Steps, 1)
		assert.Equal(s.T(), makeit.TerminalStepID, seq.Steps[0].ID)
	})

	s.Run("SlugWinsOverID", func() {
		seq, err := s.service.AssembleSteps(ctx, inbound.AssembleCommand{
			FrameworkID: "fw-satay",
			Slug:        "noodle-soup",
			VariantID:   "variant-chinese",
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "fw-soup", seq.FrameworkID)
	})

	s.Run("NeitherIDNorSlug_IsBadRequest", func() {
		_, err := s.service.AssembleSteps(ctx, inbound.AssembleCommand{
			VariantID: "variant-chinese",
		})

		require.Error(s.T(), err)
		assert.True(s.T(), errors.Is(err, errors.CodeBadRequest))
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
