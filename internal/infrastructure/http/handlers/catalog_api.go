// Package handlers provides HTTP handlers for the REST API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// CatalogHandlers handles catalog REST API requests.
type CatalogHandlers struct {
	service inbound.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandlers creates a new catalog handlers instance.
func NewCatalogHandlers(service inbound.CatalogService, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{
		service: service,
		logger:  logger.Named("catalog-api"),
	}
}

// searchRequest is the body of POST /frameworks/search.
type searchRequest struct {
	Ingredients   []inbound.SelectedIngredient `json:"ingredients"`
	DisallowedIDs []string                     `json:"disallowed_ingredient_ids"`
}

// assembleRequest is the body of POST /frameworks/{slug}/steps.
type assembleRequest struct {
	VariantID   string                       `json:"variant_id"`
	Ingredients []inbound.SelectedIngredient `json:"ingredients"`
}

// ListFrameworks handles GET /frameworks.
func (h *CatalogHandlers) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	frameworks, err := h.service.ListFrameworks(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, frameworks)
}

// GetFramework handles GET /frameworks/{slug}.
func (h *CatalogHandlers) GetFramework(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	framework, err := h.service.GetFrameworkBySlug(r.Context(), slug)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, framework)
}

// SearchFrameworks handles POST /frameworks/search.
func (h *CatalogHandlers) SearchFrameworks(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	results, err := h.service.SearchByIngredients(r.Context(), inbound.SearchQuery{
		Selection:               req.Ingredients,
		DisallowedIngredientIDs: req.DisallowedIDs,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// AssembleSteps handles POST /frameworks/{slug}/steps.
func (h *CatalogHandlers) AssembleSteps(w http.ResponseWriter, r *http.Request) {
	var req assembleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	sequence, err := h.service.AssembleSteps(r.Context(), inbound.AssembleCommand{
		Slug:      chi.URLParam(r, "slug"),
		VariantID: req.VariantID,
		Selection: req.Ingredients,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sequence)
}

// ListIngredients handles GET /ingredients.
func (h *CatalogHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.ListIngredients(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ingredients)
}

// GetIngredient handles GET /ingredients/{id}.
func (h *CatalogHandlers) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ingredient, err := h.service.GetIngredient(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ingredient)
}

// FrameworksUsingIngredient handles GET /ingredients/{id}/frameworks.
func (h *CatalogHandlers) FrameworksUsingIngredient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	frameworks, err := h.service.FrameworksUsingIngredient(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, frameworks)
}

// RefreshCatalog handles POST /catalog/refresh.
func (h *CatalogHandlers) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshed"})
}

// writeJSON writes a JSON response.
func (h *CatalogHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error onto its HTTP status and response body.
func (h *CatalogHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	requestID := chimiddleware.GetReqID(r.Context())
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
