package debt

import (
	"company-registry/core/logger"
	"company-registry/feature/debt/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for debt verification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the debt routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/divida-ativa")
	group.Post("/verificar", h.HandleVerify)
}

// HandleVerify aggregates debt enrollments for a list of CNPJs.
// @Summary Verify outstanding debt per CNPJ
// @Description Accepts a JSON array of identifiers and returns a map keyed by CNPJ with the unified debtor name, statuses and consolidated total. Unknown identifiers are omitted.
// @Tags divida-ativa
// @Accept json
// @Produce json
// @Param request body []string true "CNPJ list"
// @Success 200 {object} map[string]models.Summary "Debt summaries keyed by CNPJ"
// @Router /divida-ativa/verificar [post]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var itens []any
	if err := c.BodyParser(&itens); err != nil {
		// A non-array body means nothing to verify.
		l.Debug("Ignoring malformed debt payload", zap.Error(err))
		return c.JSON(map[string]models.Summary{})
	}

	return c.JSON(h.service.Verify(c.Context(), itens))
}
