package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resource-catalog-service/internal/app/service"
	"resource-catalog-service/internal/transport/httpserver/dto"
	"resource-catalog-service/internal/transport/httpserver/view"
	"resource-catalog-service/internal/validator"
)

// Messages shown in place of the results when the catalog cannot be built.
const (
	msgInvalidFilter = "Ces filtres ne sont pas valides (recherche limitée à 200 caractères)."
	msgStoreFailed   = "Les ressources n'ont pas pu être chargées."
)

// PageHandler renders the catalog page and its fragments.
type PageHandler struct {
	service   *service.CatalogService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(svc *service.CatalogService, v *validator.Validator, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Index handles GET /
// Renders the shell in its loading state; the client script then fetches
// the catalog fragment for the same filter.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	var req dto.CatalogRequest
	if err := c.QueryParser(&req); err != nil || h.validator.Validate(&req) != nil {
		req = dto.CatalogRequest{}
	}

	return c.Render("pages/index", view.NewShell(req.ToFilter()), "layouts/base")
}

// Catalog handles GET /catalog
// Renders hero, stats, controls and results.
func (h *PageHandler) Catalog(c *fiber.Ctx) error {
	model, status := h.build(c)

	return c.Status(status).Render("partials/catalog", model)
}

// Results handles GET /catalog/results
// Renders the results region only; controls stay in place on the client.
func (h *PageHandler) Results(c *fiber.Ctx) error {
	model, status := h.build(c)

	return c.Status(status).Render("partials/results", model)
}

// build runs the engine for the request filter. Rejected filters and store
// failures produce distinct error states, never the empty state.
func (h *PageHandler) build(c *fiber.Ctx) (view.Catalog, int) {
	var req dto.CatalogRequest
	if err := c.QueryParser(&req); err != nil {
		return view.NewCatalogInvalid(req.ToFilter(), msgInvalidFilter), fiber.StatusBadRequest
	}
	if err := h.validator.Validate(&req); err != nil {
		h.logger.Debug("invalid catalog filter", zap.Error(err))
		return view.NewCatalogInvalid(req.ToFilter(), msgInvalidFilter), fiber.StatusBadRequest
	}

	filter := req.ToFilter()
	v, err := h.service.Browse(c.UserContext(), filter)
	if err != nil {
		return view.NewCatalogError(filter, msgStoreFailed), fiber.StatusInternalServerError
	}

	return view.NewCatalog(v), fiber.StatusOK
}
