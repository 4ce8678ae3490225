package geocoding_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"company-registry/feature/geocoding"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleCacheLookup_EmptyBody(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)
	h := geocoding.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)

	req := httptest.NewRequest("POST", "/geocodificacao/cache/buscar", strings.NewReader("[]"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "{}", string(body))
}

func TestHandleQuotaEndpoints(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)
	h := geocoding.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)

	// Record one successful call.
	req := httptest.NewRequest("POST", "/geocodificacao/api/registrar", strings.NewReader(`{"sucesso": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Status reflects it.
	req = httptest.NewRequest("GET", "/geocodificacao/api/status", nil)
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var status map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.EqualValues(t, 1, status["total_requisicoes"])
	assert.EqualValues(t, 1, status["requisicoes_sucesso"])
	assert.Equal(t, "DISPONIVEL", status["status_limite"])

	// Check still allows further calls.
	req = httptest.NewRequest("GET", "/geocodificacao/api/verificar", nil)
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var check map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.Equal(t, true, check["pode_usar"])
}

func TestHandleCacheSaveAndLookup(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)
	h := geocoding.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)

	save := `[{"cnpj": "12345678000199", "endereco": "Rua X, 10", "lat": -23.5, "lon": -46.6}]`
	req := httptest.NewRequest("POST", "/geocodificacao/cache/salvar", strings.NewReader(save))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var saveResp map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saveResp))
	assert.Equal(t, 1, saveResp["salvos"])

	lookup := `[{"cnpj": "12345678000199", "endereco": "Rua X, 10"}]`
	req = httptest.NewRequest("POST", "/geocodificacao/cache/buscar", strings.NewReader(lookup))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var hits map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hits))
	require.Contains(t, hits, "12345678000199")
	assert.Equal(t, true, hits["12345678000199"]["cacheado"])
}
