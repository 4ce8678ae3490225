package reconciliation

import (
	"company-registry/core/httperr"
	"company-registry/core/logger"
	"company-registry/feature/reconciliation/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/importacao")
	group.Post("/cnpjs", h.HandleReconcile)
}

// HandleReconcile reconciles an imported identifier list against the registry.
// @Summary Reconcile imported CNPJs
// @Description Normalizes, deduplicates and matches caller rows against the per-region registry view, merging authoritative fields onto matches.
// @Tags importacao
// @Accept json
// @Produce json
// @Param request body models.Request true "Import request"
// @Success 200 {object} models.Report "Reconciliation report"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "No resolvable view"
// @Failure 500 {object} map[string]string "Store failure"
// @Router /importacao/cnpjs [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.Request
	if err := c.BodyParser(&req); err != nil {
		return httperr.Respond(c, httperr.Validation("Corpo da requisição inválido."))
	}

	report, err := h.service.Reconcile(c.Context(), req)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(report)
}
