package geocoding

import (
	"company-registry/core/httperr"
	"company-registry/core/logger"
	"company-registry/feature/geocoding/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for geocoding support services.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the geocoding routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/geocodificacao")
	group.Post("/cache/buscar", h.HandleCacheLookup)
	group.Post("/cache/salvar", h.HandleCacheSave)
	group.Post("/consultar_lote", h.HandleLotLookup)
	group.Get("/api/status", h.HandleQuotaStatus)
	group.Get("/api/verificar", h.HandleQuotaCheck)
	group.Post("/api/registrar", h.HandleQuotaRecord)
}

// HandleCacheLookup returns cached coordinates for (cnpj, endereco) pairs.
// @Summary Geocoding cache lookup
// @Description Returns validated cached coordinates, keyed by CNPJ. Misses are absent from the mapping.
// @Tags geocoding
// @Accept json
// @Produce json
// @Param items body []models.CacheLookupItem true "Lookup pairs"
// @Success 200 {object} map[string]models.CacheHit "Coordinates by CNPJ"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /geocodificacao/cache/buscar [post]
func (h *Handler) HandleCacheLookup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var items []models.CacheLookupItem
	if err := c.BodyParser(&items); err != nil || len(items) == 0 {
		// Empty or malformed input yields an empty mapping, never an error.
		return c.JSON(fiber.Map{})
	}

	results, err := h.service.LookupCache(c.Context(), items)
	if err != nil {
		l.Error("Geocoding cache lookup failed", zap.Error(err))
		return httperr.Respond(c, httperr.Dependency("Erro ao buscar cache de geocodificação", err))
	}
	return c.JSON(results)
}

// HandleCacheSave writes validated coordinates back to the cache.
// @Summary Geocoding cache save
// @Description Upserts candidate geocode results keyed by (cnpj, endereco).
// @Tags geocoding
// @Accept json
// @Produce json
// @Param items body []models.SaveItem true "Geocode results"
// @Success 200 {object} map[string]int "Saved count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /geocodificacao/cache/salvar [post]
func (h *Handler) HandleCacheSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var items []models.SaveItem
	if err := c.BodyParser(&items); err != nil || len(items) == 0 {
		return c.JSON(fiber.Map{"salvos": 0})
	}

	saved, err := h.service.SaveCache(c.Context(), items)
	if err != nil {
		l.Error("Geocoding cache save failed", zap.Error(err))
		return httperr.Respond(c, httperr.Dependency("Erro ao salvar cache de geocodificação", err))
	}
	return c.JSON(fiber.Map{"salvos": saved})
}

// HandleLotLookup returns stored coordinates for a batch of CNPJs.
// @Summary Bulk coordinate lookup
// @Description Returns pre-geocoded coordinates for up to thousands of CNPJs, chunked internally.
// @Tags geocoding
// @Accept json
// @Produce json
// @Param cnpjs body []string true "Raw CNPJs"
// @Success 200 {object} map[string]models.Coordinates "Coordinates by CNPJ"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /geocodificacao/consultar_lote [post]
func (h *Handler) HandleLotLookup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var cnpjs []string
	if err := c.BodyParser(&cnpjs); err != nil || len(cnpjs) == 0 {
		return c.JSON(fiber.Map{})
	}

	results, err := h.service.LookupCoordinates(c.Context(), cnpjs)
	if err != nil {
		l.Error("Lot coordinate lookup failed", zap.Error(err))
		return httperr.Respond(c, httperr.Dependency("Erro ao recuperar coordenadas", err))
	}
	return c.JSON(results)
}

// HandleQuotaStatus reports monthly usage of the geocoding provider.
// @Summary Quota status
// @Description Reports used/available requests and the limit state for the current month.
// @Tags geocoding
// @Produce json
// @Success 200 {object} models.QuotaStatus "Quota status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /geocodificacao/api/status [get]
func (h *Handler) HandleQuotaStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.QuotaStatus(c.Context())
	if err != nil {
		l.Error("Quota status failed", zap.Error(err))
		return httperr.Respond(c, httperr.Dependency("Erro ao verificar status da API", err))
	}
	return c.JSON(status)
}

// HandleQuotaCheck reports whether another provider call is allowed.
// @Summary Quota check
// @Description Reports whether the monthly limit still allows provider calls.
// @Tags geocoding
// @Produce json
// @Success 200 {object} models.QuotaCheck "Availability"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /geocodificacao/api/verificar [get]
func (h *Handler) HandleQuotaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	check, err := h.service.QuotaCheck(c.Context())
	if err != nil {
		l.Error("Quota check failed", zap.Error(err))
		return httperr.Respond(c, httperr.Dependency("Erro ao verificar limite da API", err))
	}
	return c.JSON(check)
}

// HandleQuotaRecord records one provider call against the monthly quota.
// @Summary Record quota usage
// @Description Atomically increments the month counters by one call.
// @Tags geocoding
// @Accept json
// @Produce json
// @Param body body object true "{sucesso: bool}"
// @Success 200 {object} map[string]bool "Recorded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /geocodificacao/api/registrar [post]
func (h *Handler) HandleQuotaRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var body struct {
		Sucesso any `json:"sucesso"`
	}
	_ = c.BodyParser(&body)
	success := body.Sucesso == true || body.Sucesso == "true"

	if err := h.service.RecordUsage(c.Context(), success); err != nil {
		l.Error("Quota record failed", zap.Error(err))
		return httperr.Respond(c, httperr.Dependency("Erro ao registrar uso da API", err))
	}
	return c.JSON(fiber.Map{"registrado": true})
}
