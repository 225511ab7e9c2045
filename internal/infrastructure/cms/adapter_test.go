package cms

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AdapterTestSuite exercises normalization of raw CMS payloads into the
// canonical catalog model.
type AdapterTestSuite struct {
	suite.Suite
}

func (s *AdapterTestSuite) decodeRecipe(raw string) RecipeRecord {
	var rec RecipeRecord
	require.NoError(s.T(), json.Unmarshal([]byte(raw), &rec))
	return rec
}

func (s *AdapterTestSuite) TestNormalizeBasics() {
	rec := s.decodeRecipe(`{
		"_id": {"$oid": "recipe-1"},
		"title": "Noodle  Soup",
		"shortDescription": "Quick weeknight soup",
		"variantTags": ["Chinese", "Italian"]
	}`)

	fw := Normalize(rec)

	assert.Equal(s.T(), "recipe-1", fw.ID)
	assert.Equal(s.T(), "Noodle  Soup", fw.Title)
	assert.Equal(s.T(), "noodle-soup", fw.Slug)
	require.Len(s.T(), fw.Variants, 2)
	assert.Equal(s.T(), catalog.Variant{ID: "variant-chinese", Title: "Chinese"}, fw.Variants[0])
	assert.Equal(s.T(), catalog.Variant{ID: "variant-italian", Title: "Italian"}, fw.Variants[1])
}

func (s *AdapterTestSuite) TestNormalizeVariants() {
	s.Run("NoTags_YieldsSingleDefaultVariant", func() {
		fw := Normalize(s.decodeRecipe(`{"_id": "r1", "title": "Toast"}`))

		require.Len(s.T(), fw.Variants, 1)
		assert.Equal(s.T(), catalog.DefaultVariant(), fw.Variants[0])
	})

	s.Run("ComponentWithoutMembership_BelongsToEveryVariant", func() {
		fw := Normalize(s.decodeRecipe(`{
			"_id": "r1",
			"title": "Soup",
			"variantTags": ["Chinese", "Italian"],
			"components": [{"_id": "c1", "title": "Broth"}]
		}`))

		require.Len(s.T(), fw.Components, 1)
		assert.Equal(s.T(),
			[]string{"variant-chinese", "variant-italian"},
			fw.Components[0].IncludedInVariants,
		)
	})

	s.Run("ComponentMembershipTags_ShareVariantIDDerivation", func() {
		fw := Normalize(s.decodeRecipe(`{
			"_id": "r1",
			"title": "Soup",
			"variantTags": ["Chinese", "Italian"],
			"components": [{"_id": "c1", "title": "Noodles", "includedInVariants": ["Chinese"]}]
		}`))

		require.Len(s.T(), fw.Components, 1)
		assert.Equal(s.T(), []string{"variant-chinese"}, fw.Components[0].IncludedInVariants)
	})
}

func (s *AdapterTestSuite) TestNormalizeDegradation() {
	s.Run("TitlelessRecord_YieldsEmptySlug", func() {
		fw := Normalize(s.decodeRecipe(`{"_id": "r1"}`))

		assert.Empty(s.T(), fw.Slug)
	})

	s.Run("UnresolvableReferences_DegradeToEmptyIDs", func() {
		fw := Normalize(s.decodeRecipe(`{
			"_id": "r1",
			"title": "Soup",
			"sponsor": "[object Object]",
			"categories": ["[object Object]", "cat-1"]
		}`))

		assert.Empty(s.T(), fw.Sponsor.ID)
		assert.Equal(s.T(), []string{"cat-1"}, fw.CategoryIDs)
	})

	s.Run("PopulatedSponsorAndImage_Resolve", func() {
		fw := Normalize(s.decodeRecipe(`{
			"_id": "r1",
			"title": "Soup",
			"sponsor": {"_id": "sp-1", "title": "Acme Foods"},
			"heroImage": {"_id": "img-1", "url": "https://cdn.example.com/soup.jpg"}
		}`))

		assert.Equal(s.T(), catalog.SponsorRef{ID: "sp-1", Title: "Acme Foods"}, fw.Sponsor)
		assert.Equal(s.T(), catalog.ImageRef{ID: "img-1", URL: "https://cdn.example.com/soup.jpg"}, fw.HeroImage)
	})
}

func (s *AdapterTestSuite) TestNormalizeSlots() {
	fw := Normalize(s.decodeRecipe(`{
		"_id": "r1",
		"title": "Soup",
		"components": [{
			"_id": "c1",
			"title": "Broth",
			"requiredIngredients": [{
				"recommendedIngredient": {"_id": "carrot-1", "title": "Carrot"},
				"quantity": "200g",
				"preparation": "diced",
				"alternativeIngredients": [{
					"ingredient": "parsnip-1",
					"inheritQuantity": true,
					"preparation": "grated"
				}]
			}],
			"optionalIngredients": [{
				"ingredient": {"_id": "chili-1", "title": "Chili"}
			}],
			"steps": [{
				"_id": "s1",
				"instructions": "Simmer.",
				"relevantIngredients": [{"_id": "carrot-1", "title": "Carrot"}],
				"tips": ["tip-1", "[object Object]"]
			}]
		}]
	}`))

	require.Len(s.T(), fw.Components, 1)
	comp := fw.Components[0]

	require.Len(s.T(), comp.Required, 1)
	slot := comp.Required[0]
	assert.Equal(s.T(), "carrot-1", slot.Recommended.ID)
	assert.Equal(s.T(), "Carrot", slot.Recommended.Title)
	assert.Equal(s.T(), "200g", slot.Quantity)

	require.Len(s.T(), slot.Alternatives, 1)
	alt := slot.Alternatives[0]
	assert.Equal(s.T(), "parsnip-1", alt.Ingredient.ID)
	assert.Empty(s.T(), alt.Ingredient.Title, "bare id reference has no title")
	assert.Equal(s.T(), "200g", alt.EffectiveQuantity(slot))
	assert.Equal(s.T(), "grated", alt.EffectivePreparation(slot))

	require.Len(s.T(), comp.Optional, 1)
	assert.Equal(s.T(), "chili-1", comp.Optional[0].Ingredient.ID)

	require.Len(s.T(), comp.Steps, 1)
	step := comp.Steps[0]
	require.Len(s.T(), step.RelevantIngredients, 1)
	assert.Equal(s.T(), catalog.IngredientRef{ID: "carrot-1", Title: "Carrot"}, step.RelevantIngredients[0])
	assert.Equal(s.T(), []string{"tip-1"}, step.TipIDs)
}

func (s *AdapterTestSuite) TestNormalizeIngredient() {
	s.Run("ValidRecord_MapsAllFields", func() {
		var rec IngredientRecord
		require.NoError(s.T(), json.Unmarshal([]byte(`{
			"_id": "asparagus-1",
			"title": "Asparagus",
			"averageWeight": 18.5,
			"seasonalMonths": [4, 5, 6],
			"parent": {"_id": "veg-1", "title": "Vegetables"}
		}`), &rec))

		ing := NormalizeIngredient(rec)

		assert.Equal(s.T(), "asparagus-1", ing.ID)
		assert.Equal(s.T(), 18.5, ing.AverageWeight)
		assert.Equal(s.T(), []time.Month{time.April, time.May, time.June}, ing.SeasonalMonths)
		require.NotNil(s.T(), ing.Parent)
		assert.Equal(s.T(), "veg-1", ing.Parent.ID)
		assert.Equal(s.T(), "Vegetables", ing.Parent.Title)
	})

	s.Run("OutOfRangeMonths_AreDropped", func() {
		var rec IngredientRecord
		require.NoError(s.T(), json.Unmarshal([]byte(`{
			"_id": "x", "title": "X", "seasonalMonths": [0, 5, 13]
		}`), &rec))

		ing := NormalizeIngredient(rec)

		assert.Equal(s.T(), []time.Month{time.May}, ing.SeasonalMonths)
	})

	s.Run("EmptyParentReference_YieldsNoParent", func() {
		var rec IngredientRecord
		require.NoError(s.T(), json.Unmarshal([]byte(`{
			"_id": "x", "title": "X", "parent": null
		}`), &rec))

		ing := NormalizeIngredient(rec)

		assert.Nil(s.T(), ing.Parent)
	})
}

func (s *AdapterTestSuite) TestResolveIngredient() {
	s.Run("PopulatedReference_NormalizesInFull", func() {
		ref := Reference{}
		require.NoError(s.T(), ref.UnmarshalJSON([]byte(`{"_id": "carrot-1", "title": "Carrot"}`)))

		ing := ResolveIngredient(ref)

		assert.Equal(s.T(), "carrot-1", ing.ID)
		assert.Equal(s.T(), "Carrot", ing.Title)
	})

	s.Run("BareIDReference_DegradesToTitlelessIngredient", func() {
		ref := Reference{}
		require.NoError(s.T(), ref.UnmarshalJSON([]byte(`"carrot-1"`)))

		ing := ResolveIngredient(ref)

		assert.Equal(s.T(), "carrot-1", ing.ID)
		assert.Empty(s.T(), ing.Title)
	})
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}
