// Package geocoding implements the geocoding support endpoints.
//
// The external geocoding provider is billed per request and capped at a
// monthly quota, so the feature never calls it directly. Instead it offers
// the orchestration layer (frontend) three services:
//
//  1. Coordinate cache: a cache-aside store keyed by (cnpj, full address).
//     Callers look coordinates up before paying for a provider call and
//     write validated results back afterward.
//  2. Quota governor: monthly usage accounting for the provider, with
//     status reporting, an availability check and atomic usage recording.
//  3. Lot lookup: bulk coordinate retrieval from the pre-geocoded
//     establishment table, chunked to keep IN() lists bounded.
//
// # Components
//
//   - Service: owns the database access for all three services.
//   - Handler: exposes the HTTP endpoints.
//   - Feature: registers the feature with the application loader.
//
// # HTTP Endpoints
//
//   - POST /geocodificacao/cache/buscar    : cache lookup
//   - POST /geocodificacao/cache/salvar    : cache write-back
//   - POST /geocodificacao/consultar_lote  : bulk coordinate lookup
//   - GET  /geocodificacao/api/status      : quota status
//   - GET  /geocodificacao/api/verificar   : quota availability check
//   - POST /geocodificacao/api/registrar   : record one provider call
package geocoding
