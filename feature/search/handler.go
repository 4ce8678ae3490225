package search

import (
	"company-registry/core/cnpj"
	"company-registry/core/httperr"
	"company-registry/core/logger"
	"company-registry/core/utils"
	"company-registry/feature/search/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for company search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/buscar", h.HandleSearch)
}

// HandleSearch runs the main company search.
// @Summary Search companies
// @Description Filtered search over the per-region registry views. uf is mandatory; q matches name, trade name, CNPJ and district. List filters accept repeated or comma-separated values.
// @Tags busca
// @Produce json
// @Param uf query string true "Two-letter region code"
// @Param q query string false "Free text term"
// @Param setor query string false "Market sector"
// @Param segmento query string false "Market segment"
// @Param municipio query []string false "Municipality codes"
// @Param cnae query []string false "CNAE codes, punctuation ignored"
// @Param situacao query []string false "Registration status codes"
// @Param porte query []string false "Company size codes"
// @Success 200 {array} models.Result "Matched companies"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "No view for the region"
// @Router /buscar [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	uf := utils.NormalizeUF(c.Query("uf"))
	if uf == "" {
		return httperr.Respond(c, httperr.Validation("UF inválida. Informe uma sigla com 2 letras."))
	}

	q := models.Query{
		Uf:         uf,
		Termo:      c.Query("q"),
		Setor:      c.Query("setor"),
		Segmento:   c.Query("segmento"),
		Municipios: queryList(c, "municipio"),
		Cnaes:      cnaeDigits(queryList(c, "cnae")),
		Situacoes:  queryList(c, "situacao"),
		Portes:     queryList(c, "porte"),
	}

	rows, err := h.service.Search(c.Context(), q)
	if err != nil {
		l.Error("Search failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	if rows == nil {
		rows = []models.Result{}
	}
	return c.JSON(rows)
}

// queryList collects a repeated or comma-separated query parameter.
func queryList(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return utils.SplitList(values)
}

// cnaeDigits strips punctuation from CNAE filters, dropping entries left
// empty.
func cnaeDigits(values []string) []string {
	var out []string
	for _, v := range values {
		if d := cnpj.Digits(v); d != "" {
			out = append(out, d)
		}
	}
	return out
}
