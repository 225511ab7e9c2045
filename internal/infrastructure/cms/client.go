package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Client implements the CatalogSource port against the content API. It
// fetches the raw recipe and ingredient collections and normalizes them
// into one canonical catalog per call.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a new content API client.
func NewClient(cfg *config.CMSConfig, logger *zap.Logger) outbound.CatalogSource {
	logger.Info("CMS client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
	)

	return &Client{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("cms-client"),
	}
}

// FetchCatalog retrieves the full content set. The returned catalog owns
// every nested entity; callers replace any prior catalog wholesale.
func (c *Client) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var recipes []RecipeRecord
	if err := c.getJSON(ctx, "/recipes", &recipes); err != nil {
		return nil, fmt.Errorf("fetch recipes: %w", err)
	}

	var ingredients []IngredientRecord
	if err := c.getJSON(ctx, "/ingredients", &ingredients); err != nil {
		return nil, fmt.Errorf("fetch ingredients: %w", err)
	}

	cat := &catalog.Catalog{
		Frameworks:  make([]catalog.Framework, 0, len(recipes)),
		Ingredients: make([]catalog.Ingredient, 0, len(ingredients)),
	}
	for _, raw := range recipes {
		cat.Frameworks = append(cat.Frameworks, Normalize(raw))
	}
	for _, raw := range ingredients {
		cat.Ingredients = append(cat.Ingredients, NormalizeIngredient(raw))
	}

	c.logger.Info("Catalog fetched",
		zap.Int("frameworks", len(cat.Frameworks)),
		zap.Int("ingredients", len(cat.Ingredients)),
	)

	return cat, nil
}

// getJSON performs a GET against the content API and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: status %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
