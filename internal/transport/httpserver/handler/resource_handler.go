// Package handler provides HTTP handlers for the API and the catalog pages.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resource-catalog-service/internal/app/service"
	"resource-catalog-service/internal/transport/httpserver/dto"
	"resource-catalog-service/internal/validator"
)

// ResourceHandler serves the JSON resource endpoints.
type ResourceHandler struct {
	service      *service.CatalogService
	validator    *validator.Validator
	cacheControl string
	logger       *zap.Logger
}

// NewResourceHandler creates a new ResourceHandler. cacheControl is sent on
// every successful gateway response.
func NewResourceHandler(svc *service.CatalogService, v *validator.Validator, cacheControl string, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		service:      svc,
		validator:    v,
		cacheControl: cacheControl,
		logger:       logger,
	}
}

// List handles GET /api/resources
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	var req dto.ResourceQueryRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	resources, err := h.service.Query(c.UserContext(), req.ToQuery())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	c.Set(fiber.HeaderCacheControl, h.cacheControl)

	return c.JSON(dto.FromDomainResources(resources))
}

// Catalog handles GET /api/catalog
// Returns the filtered catalog with the unfiltered stats and facets.
func (h *ResourceHandler) Catalog(c *fiber.Ctx) error {
	var req dto.CatalogRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	view, err := h.service.Browse(c.UserContext(), req.ToFilter())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	c.Set(fiber.HeaderCacheControl, h.cacheControl)

	return c.JSON(dto.FromView(view))
}
