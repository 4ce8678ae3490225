package geocoding

import (
	"context"

	"company-registry/core/batch"
	"company-registry/core/cnpj"
	"company-registry/feature/geocoding/models"

	"go.uber.org/zap"
)

// lotChunkSize bounds the IN() list per query against the establishment table.
const lotChunkSize = 1000

// LookupCoordinates returns pre-geocoded coordinates for the given raw
// CNPJs from the establishment table. Inputs failing strict normalization
// are skipped; lookups run chunk by chunk, sequentially.
func (s *Service) LookupCoordinates(ctx context.Context, rawCnpjs []string) (map[string]models.Coordinates, error) {
	seen := make(map[string]struct{}, len(rawCnpjs))
	keys := make([]string, 0, len(rawCnpjs))
	for _, raw := range rawCnpjs {
		key, ok := cnpj.NormalizeStrict(raw)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	results := make(map[string]models.Coordinates)
	if len(keys) == 0 {
		return results, nil
	}

	type geoRow struct {
		GeoCnpj      string   `gorm:"column:geo_cnpj"`
		GeoLatitude  *float64 `gorm:"column:geo_latitude"`
		GeoLongitude *float64 `gorm:"column:geo_longitude"`
	}

	for _, chunk := range batch.Chunk(keys, lotChunkSize) {
		var rows []geoRow
		err := s.db.WithContext(ctx).
			Table("estabelecimentos_geo").
			Select("geo_cnpj, geo_latitude, geo_longitude").
			Where("geo_cnpj IN ?", chunk).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			results[row.GeoCnpj] = models.Coordinates{Lat: row.GeoLatitude, Lon: row.GeoLongitude}
		}
	}

	s.logger.Info("Lot coordinate lookup served",
		zap.Int("requested", len(keys)),
		zap.Int("found", len(results)))
	return results, nil
}
