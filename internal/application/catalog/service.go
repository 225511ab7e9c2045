// Package catalog provides the application layer for the recipe
// composition engine: it drives the content source, the snapshot store
// and the pure matching/assembly logic behind the inbound port.
package catalog

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/makeit"
	"github.com/platewise/v1/internal/domain/matching"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

const frameworksCacheKey = "catalog:frameworks"

// Service implements the catalog use cases.
type Service struct {
	source   outbound.CatalogSource
	repo     outbound.CatalogRepository
	cache    outbound.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a new catalog service.
func NewService(
	source outbound.CatalogSource,
	repo outbound.CatalogRepository,
	cache outbound.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) inbound.CatalogService {
	return &Service{
		source:   source,
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.Named("catalog-service"),
	}
}

// Refresh fetches the content set from the source and replaces the
// in-memory catalog wholesale. Nothing from the prior catalog survives.
func (s *Service) Refresh(ctx context.Context) error {
	s.logger.Info("Refreshing catalog")

	cat, err := s.source.FetchCatalog(ctx)
	if err != nil {
		return errors.NewSourceError("fetch catalog", err)
	}

	if err := s.repo.Replace(ctx, cat); err != nil {
		return errors.Wrap(err, "failed to replace catalog snapshot")
	}

	s.cacheFrameworkList(ctx, cat)

	s.logger.Info("Catalog refreshed",
		zap.Int("frameworks", len(cat.Frameworks)),
		zap.Int("ingredients", len(cat.Ingredients)),
	)
	return nil
}

// ListFrameworks returns all frameworks in catalog order.
func (s *Service) ListFrameworks(ctx context.Context) ([]inbound.FrameworkSummaryDTO, error) {
	if cached := s.cachedFrameworkList(ctx); cached != nil {
		return cached, nil
	}

	cat, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return summaries(cat.Frameworks), nil
}

// GetFrameworkBySlug looks a framework up by slug. The slug passed in is
// re-derived with the same transform used at creation time, so callers may
// pass either a stored slug or a raw title.
func (s *Service) GetFrameworkBySlug(ctx context.Context, slug string) (*inbound.FrameworkDTO, error) {
	fw, err := s.repo.FindFrameworkBySlug(ctx, catalog.Slugify(slug))
	if err != nil {
		return nil, s.lookupError(err, slug)
	}
	dto := frameworkToDTO(*fw)
	return &dto, nil
}

// GetFrameworkByID looks a framework up by id.
func (s *Service) GetFrameworkByID(ctx context.Context, id string) (*inbound.FrameworkDTO, error) {
	fw, err := s.repo.FindFrameworkByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err, id)
	}
	dto := frameworkToDTO(*fw)
	return &dto, nil
}

// ListIngredients returns the full ingredient catalog.
func (s *Service) ListIngredients(ctx context.Context) ([]inbound.IngredientDTO, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]inbound.IngredientDTO, len(cat.Ingredients))
	for i, ing := range cat.Ingredients {
		dtos[i] = ingredientToDTO(ing)
	}
	return dtos, nil
}

// GetIngredient looks an ingredient up by id.
func (s *Service) GetIngredient(ctx context.Context, id string) (*inbound.IngredientDTO, error) {
	ing, err := s.repo.FindIngredient(ctx, id)
	if err != nil {
		if stderrors.Is(err, catalog.ErrIngredientNotFound) {
			return nil, errors.NewIngredientNotFoundError(id)
		}
		return nil, errors.Wrap(err, "failed to find ingredient")
	}
	dto := ingredientToDTO(*ing)
	return &dto, nil
}

// SearchByIngredients finds frameworks matching the user's selection:
// allergy exclusion first, then id-based matching, then title-based
// ranking with stable tie order.
func (s *Service) SearchByIngredients(ctx context.Context, query inbound.SearchQuery) ([]inbound.FrameworkSummaryDTO, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	candidates := matching.Exclude(cat.Frameworks, query.DisallowedIngredientIDs)

	ids := make([]string, len(query.Selection))
	selection := make([]catalog.IngredientRef, len(query.Selection))
	for i, sel := range query.Selection {
		ids[i] = sel.ID
		selection[i] = catalog.IngredientRef{ID: sel.ID, Title: sel.Title}
	}

	matched := matching.MatchAny(candidates, ids)
	ranked := matching.Rank(matched, selection)

	s.logger.Debug("Ingredient search completed",
		zap.Int("selected", len(query.Selection)),
		zap.Int("disallowed", len(query.DisallowedIngredientIDs)),
		zap.Int("results", len(ranked)),
	)

	return summaries(ranked), nil
}

// FrameworksUsingIngredient returns every framework referencing the given
// ingredient in any slot. Order follows the catalog; there is nothing to
// rank for a singleton query.
func (s *Service) FrameworksUsingIngredient(ctx context.Context, ingredientID string) ([]inbound.FrameworkSummaryDTO, error) {
	cat, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	matched := matching.MatchAny(cat.Frameworks, []string{ingredientID})
	return summaries(matched), nil
}

// AssembleSteps resolves the chosen variant and assembles the cooking-flow
// step sequence. An unknown variant id is not an error: the sequence then
// contains the terminal step alone.
func (s *Service) AssembleSteps(ctx context.Context, cmd inbound.AssembleCommand) (*inbound.StepSequenceDTO, error) {
	fw, err := s.resolveFramework(ctx, cmd)
	if err != nil {
		return nil, err
	}

	selection := make([]catalog.Ingredient, len(cmd.Selection))
	for i, sel := range cmd.Selection {
		selection[i] = catalog.Ingredient{ID: sel.ID, Title: sel.Title}
	}

	steps := makeit.Assemble(*fw, cmd.VariantID, selection)

	dto := &inbound.StepSequenceDTO{
		FrameworkID: fw.ID,
		VariantID:   cmd.VariantID,
		Steps:       make([]inbound.StepDTO, len(steps)),
	}
	for i, step := range steps {
		dto.Steps[i] = stepToDTO(step)
	}

	s.logger.Debug("Steps assembled",
		zap.String("framework_id", fw.ID),
		zap.String("variant_id", cmd.VariantID),
		zap.Int("steps", len(dto.Steps)),
	)

	return dto, nil
}

// resolveFramework resolves the assemble target by slug or id.
func (s *Service) resolveFramework(ctx context.Context, cmd inbound.AssembleCommand) (*catalog.Framework, error) {
	if cmd.Slug != "" {
		fw, err := s.repo.FindFrameworkBySlug(ctx, catalog.Slugify(cmd.Slug))
		if err != nil {
			return nil, s.lookupError(err, cmd.Slug)
		}
		return fw, nil
	}
	if cmd.FrameworkID != "" {
		fw, err := s.repo.FindFrameworkByID(ctx, cmd.FrameworkID)
		if err != nil {
			return nil, s.lookupError(err, cmd.FrameworkID)
		}
		return fw, nil
	}
	return nil, errors.NewBadRequestError("framework id or slug is required")
}

// snapshot loads the current catalog, mapping the empty state to its
// dedicated error code.
func (s *Service) snapshot(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot")
	}
	return cat, nil
}

// lookupError maps repository lookup failures onto AppErrors.
func (s *Service) lookupError(err error, key string) error {
	if stderrors.Is(err, catalog.ErrFrameworkNotFound) {
		return errors.NewFrameworkNotFoundError(key)
	}
	return errors.Wrap(err, "failed to find framework")
}

// cacheFrameworkList caches the summary list after a refresh. Cache
// failures are logged and otherwise ignored; the snapshot store remains
// authoritative.
func (s *Service) cacheFrameworkList(ctx context.Context, cat *catalog.Catalog) {
	data, err := json.Marshal(summaries(cat.Frameworks))
	if err != nil {
		s.logger.Warn("Failed to marshal framework list for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, frameworksCacheKey, data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache framework list", zap.Error(err))
	}
}

// cachedFrameworkList returns the cached summary list, or nil on any miss.
func (s *Service) cachedFrameworkList(ctx context.Context) []inbound.FrameworkSummaryDTO {
	data, err := s.cache.Get(ctx, frameworksCacheKey)
	if err != nil {
		return nil
	}
	var dtos []inbound.FrameworkSummaryDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil
	}
	return dtos
}
