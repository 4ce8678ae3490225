package geocoding_test

import (
	"context"
	"testing"

	"company-registry/feature/geocoding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLookupCoordinates(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)
	ctx := context.Background()

	require.NoError(t, db.Exec(
		`INSERT INTO estabelecimentos_geo (geo_cnpj, geo_latitude, geo_longitude) VALUES
			('12345678000199', -23.5, -46.6),
			('98765432000188', -30.0, -51.2)`).Error)

	results, err := svc.LookupCoordinates(ctx, []string{
		"12.345.678/0001-99", // formatted, normalizes to a stored key
		"98765432000188",
		"00000000000000", // not stored
		"123",            // invalid, skipped
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.InDelta(t, -23.5, *results["12345678000199"].Lat, 1e-9)
	assert.InDelta(t, -51.2, *results["98765432000188"].Lon, 1e-9)
}

func TestLookupCoordinates_EmptyAndInvalid(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)

	results, err := svc.LookupCoordinates(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.LookupCoordinates(context.Background(), []string{"abc", "12"})
	assert.NoError(t, err)
	assert.Empty(t, results)
}
