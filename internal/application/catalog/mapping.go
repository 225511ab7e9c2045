package catalog

import (
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/makeit"
	"github.com/platewise/v1/internal/ports/inbound"
)

// summaries maps frameworks onto their list-screen shape, preserving order.
func summaries(frameworks []catalog.Framework) []inbound.FrameworkSummaryDTO {
	dtos := make([]inbound.FrameworkSummaryDTO, len(frameworks))
	for i, fw := range frameworks {
		dtos[i] = inbound.FrameworkSummaryDTO{
			ID:               fw.ID,
			Title:            fw.Title,
			Slug:             fw.Slug,
			ShortDescription: fw.ShortDescription,
			HeroImageURL:     fw.HeroImage.URL,
			SponsorTitle:     fw.Sponsor.Title,
			CategoryIDs:      fw.CategoryIDs,
			VariantCount:     len(fw.Variants),
		}
	}
	return dtos
}

func frameworkToDTO(fw catalog.Framework) inbound.FrameworkDTO {
	dto := inbound.FrameworkDTO{
		ID:                   fw.ID,
		Title:                fw.Title,
		Slug:                 fw.Slug,
		ShortDescription:     fw.ShortDescription,
		LongDescription:      fw.LongDescription,
		HeroImageURL:         fw.HeroImage.URL,
		SponsorTitle:         fw.Sponsor.Title,
		CategoryIDs:          fw.CategoryIDs,
		LeftoverFrameworkIDs: fw.LeftoverFrameworkIDs,
		Variants:             make([]inbound.VariantDTO, len(fw.Variants)),
		Components:           make([]inbound.ComponentDTO, len(fw.Components)),
	}
	for i, v := range fw.Variants {
		dto.Variants[i] = inbound.VariantDTO{ID: v.ID, Title: v.Title}
	}
	for i, c := range fw.Components {
		dto.Components[i] = componentToDTO(c)
	}
	return dto
}

func componentToDTO(c catalog.Component) inbound.ComponentDTO {
	dto := inbound.ComponentDTO{
		ID:                 c.ID,
		Title:              c.Title,
		IncludedInVariants: c.IncludedInVariants,
		Required:           make([]inbound.RequiredSlotDTO, len(c.Required)),
		StepCount:          len(c.Steps),
	}
	for i, slot := range c.Required {
		dto.Required[i] = requiredSlotToDTO(slot)
	}
	for _, slot := range c.Optional {
		dto.Optional = append(dto.Optional, inbound.OptionalSlotDTO{
			Ingredient:  ingredientToDTO(slot.Ingredient),
			Quantity:    slot.Quantity,
			Preparation: slot.Preparation,
		})
	}
	return dto
}

// requiredSlotToDTO maps a required slot, resolving alternative quantity
// and preparation inheritance so clients never see the inherit flags.
func requiredSlotToDTO(slot catalog.RequiredSlot) inbound.RequiredSlotDTO {
	dto := inbound.RequiredSlotDTO{
		Recommended: ingredientToDTO(slot.Recommended),
		Quantity:    slot.Quantity,
		Preparation: slot.Preparation,
	}
	for _, alt := range slot.Alternatives {
		dto.Alternatives = append(dto.Alternatives, inbound.AlternativeSlotDTO{
			Ingredient:  ingredientToDTO(alt.Ingredient),
			Quantity:    alt.EffectiveQuantity(slot),
			Preparation: alt.EffectivePreparation(slot),
		})
	}
	return dto
}

func ingredientToDTO(ing catalog.Ingredient) inbound.IngredientDTO {
	dto := inbound.IngredientDTO{
		ID:            ing.ID,
		Title:         ing.Title,
		AverageWeight: ing.AverageWeight,
	}
	for _, m := range ing.SeasonalMonths {
		dto.SeasonalMonths = append(dto.SeasonalMonths, int(m))
	}
	if ing.Parent != nil {
		dto.ParentID = ing.Parent.ID
		dto.ParentTitle = ing.Parent.Title
	}
	return dto
}

func stepToDTO(step makeit.AssembledStep) inbound.StepDTO {
	dto := inbound.StepDTO{
		ID:             step.ID,
		ComponentTitle: step.ComponentTitle,
		Instructions:   step.Instructions,
		AlwaysShow:     step.AlwaysShow,
		TipIDs:         step.TipIDs,
	}
	for _, ing := range step.Ingredients {
		dto.Ingredients = append(dto.Ingredients, ingredientToDTO(ing))
	}
	return dto
}
