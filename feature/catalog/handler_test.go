package catalog_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"company-registry/feature/catalog"
	"company-registry/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogRoutes(t *testing.T) {
	app := fiber.New()
	feature := catalog.NewFeature(setupCatalogDB(t), zap.NewNop())
	require.NoError(t, feature.Load(app))

	get := func(path string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := get("/municipios?uf=rs&busca=porto")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var municipios []models.Municipality
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&municipios))
	require.Len(t, municipios, 1)
	assert.Equal(t, "Porto Alegre", municipios[0].Descricao)

	resp = get("/cnaes?busca=hiper")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cnaes []models.Option
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cnaes))
	require.Len(t, cnaes, 1)

	resp = get("/situacoes-cadastrais")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get("/categorias-mercado")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tree models.CategoryTree
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tree))
	assert.Contains(t, tree, "Comércio")
}
