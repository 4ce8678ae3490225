package geocoding

import (
	"context"
	"strings"

	"company-registry/core/cnpj"
	"company-registry/core/utils"
	"company-registry/feature/geocoding/models"

	"go.uber.org/zap"
)

// LookupCache returns validated coordinates for each (cnpj, endereco) pair
// found in the cache. A hit requires an exact match on both the canonical
// identifier and the full address, with status VALIDADO; when duplicate
// rows exist the most recently validated one wins. Pairs that fail
// normalization are skipped; misses are simply absent from the result.
func (s *Service) LookupCache(ctx context.Context, items []models.CacheLookupItem) (map[string]models.CacheHit, error) {
	results := make(map[string]models.CacheHit)

	for _, item := range items {
		key, ok := cnpj.NormalizeStrict(item.Cnpj)
		if !ok {
			continue
		}
		endereco := strings.TrimSpace(item.Endereco)
		if endereco == "" {
			continue
		}

		var entry models.CacheEntry
		err := s.db.WithContext(ctx).
			Where("cnpj = ? AND endereco_completo = ? AND status_validacao = ?",
				key, endereco, models.StatusValidated).
			Order("data_validacao DESC").
			Limit(1).
			Find(&entry).Error
		if err != nil {
			return nil, err
		}
		if entry.Cnpj == "" {
			continue
		}

		results[key] = models.CacheHit{
			Lat:           entry.Latitude,
			Lon:           entry.Longitude,
			Cacheado:      true,
			DataValidacao: entry.DataValidacao,
		}
	}

	s.logger.Info("Geocoding cache lookup served", zap.Int("hits", len(results)), zap.Int("requested", len(items)))
	return results, nil
}

// SaveCache upserts candidate geocode results into the cache, keyed by
// (cnpj, endereco_completo). Status is derived per item: VALIDADO when both
// coordinates parse to non-zero values, NAO_ENCONTRADO otherwise. On
// conflict, coordinates and status are replaced and the update timestamp
// refreshed; the validation timestamp stays from the first insert. Items
// missing identifier or address are skipped and do not count as saved.
func (s *Service) SaveCache(ctx context.Context, items []models.SaveItem) (int, error) {
	saved := 0
	now := s.now()

	for _, item := range items {
		key, ok := cnpj.NormalizeStrict(item.Cnpj)
		if !ok {
			continue
		}
		endereco := strings.TrimSpace(item.Endereco)
		if endereco == "" {
			continue
		}

		lat := utils.ToFloat(item.Lat)
		lon := utils.ToFloat(item.Lon)
		status := models.StatusNotFound
		// A zero coordinate means the geocoder found nothing.
		if lat != nil && *lat != 0 && lon != nil && *lon != 0 {
			status = models.StatusValidated
		}

		sql := `INSERT INTO cache_geocodificacao
			(cnpj, endereco_completo, logradouro, numero, bairro, cidade, uf, cep,
			 latitude, longitude, status_validacao, data_validacao, fonte)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
			  latitude = VALUES(latitude),
			  longitude = VALUES(longitude),
			  status_validacao = VALUES(status_validacao),
			  data_atualizacao = VALUES(data_validacao)`
		if s.db.Dialector.Name() == "sqlite" {
			sql = `INSERT INTO cache_geocodificacao
				(cnpj, endereco_completo, logradouro, numero, bairro, cidade, uf, cep,
				 latitude, longitude, status_validacao, data_validacao, fonte)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(cnpj, endereco_completo) DO UPDATE SET
				  latitude = excluded.latitude,
				  longitude = excluded.longitude,
				  status_validacao = excluded.status_validacao,
				  data_atualizacao = excluded.data_validacao`
		}

		err := s.db.WithContext(ctx).Exec(sql,
			key, endereco,
			item.Logradouro, item.Numero, item.Bairro, item.Cidade, item.Uf, item.Cep,
			lat, lon, status, now, models.SourceGoogleAPI,
		).Error
		if err != nil {
			return saved, err
		}
		saved++
	}

	s.logger.Info("Geocoding cache saved", zap.Int("saved", saved), zap.Int("received", len(items)))
	return saved, nil
}
