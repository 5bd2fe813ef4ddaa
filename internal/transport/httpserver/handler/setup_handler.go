package handler

import (
	"github.com/gofiber/fiber/v2"

	"resource-catalog-service/internal/transport/httpserver/dto"
	"resource-catalog-service/internal/transport/httpserver/view"
)

// SetupHandler answers every request while the store is not configured.
type SetupHandler struct {
	model view.Setup
	err   error
}

// NewSetupHandler creates a SetupHandler for the given configuration error.
func NewSetupHandler(model view.Setup, err error) *SetupHandler {
	model.Title = "Configuration requise"

	return &SetupHandler{
		model: model,
		err:   err,
	}
}

// Page renders the missing configuration screen.
func (h *SetupHandler) Page(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).Render("pages/setup", h.model, "layouts/base")
}

// API answers JSON endpoints with the configuration error.
func (h *SetupHandler) API(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: h.err.Error(),
		Code:  "STORE_NOT_CONFIGURED",
	})
}
