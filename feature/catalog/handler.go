package catalog

import (
	"strings"

	"company-registry/core/httperr"
	"company-registry/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog combos.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/municipios", h.HandleMunicipalities)
	app.Get("/cnaes", h.HandleCnaes)
	app.Get("/situacoes-cadastrais", h.HandleSituations)
	app.Get("/categorias-mercado", h.HandleCategories)
}

// HandleMunicipalities lists municipality combo options.
// @Summary List municipalities
// @Tags catalogo
// @Produce json
// @Param uf query string false "Region filter"
// @Param busca query string false "Name or code term"
// @Success 200 {array} models.Municipality
// @Router /municipios [get]
func (h *Handler) HandleMunicipalities(c *fiber.Ctx) error {
	uf := strings.ToUpper(strings.TrimSpace(c.Query("uf")))
	busca := strings.TrimSpace(c.Query("busca"))

	rows, err := h.service.Municipalities(c.Context(), uf, busca)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Municipality listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(rows)
}

// HandleCnaes lists CNAE combo options.
// @Summary List CNAE codes
// @Tags catalogo
// @Produce json
// @Param busca query string false "Code or description term"
// @Success 200 {array} models.Option
// @Router /cnaes [get]
func (h *Handler) HandleCnaes(c *fiber.Ctx) error {
	rows, err := h.service.Cnaes(c.Context(), strings.TrimSpace(c.Query("busca")))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("CNAE listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(rows)
}

// HandleSituations lists the registration status dictionary.
// @Summary List registration statuses
// @Tags catalogo
// @Produce json
// @Success 200 {array} models.Option
// @Router /situacoes-cadastrais [get]
func (h *Handler) HandleSituations(c *fiber.Ctx) error {
	rows, err := h.service.Situations(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Status listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(rows)
}

// HandleCategories returns the sector to segments tree.
// @Summary List market categories
// @Tags catalogo
// @Produce json
// @Success 200 {object} models.CategoryTree
// @Router /categorias-mercado [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	tree, err := h.service.Categories(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Category listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(tree)
}
