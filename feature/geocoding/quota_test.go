package geocoding_test

import (
	"context"
	"sync"
	"testing"

	"company-registry/feature/geocoding"
	"company-registry/feature/geocoding/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuotaStatus_BootstrapsMonth(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)

	status, err := svc.QuotaStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalRequisicoes)
	assert.Equal(t, 1000, status.LimiteMensal)
	assert.Equal(t, 1000, status.RequisicoesDisponiveis)
	assert.Equal(t, models.LimitAvailable, status.StatusLimite)
	assert.Nil(t, status.DataPrimeiroUso)

	// A second status call must not create a second month row.
	_, err = svc.QuotaStatus(context.Background())
	require.NoError(t, err)

	var count int64
	assert.NoError(t, db.Table("controle_api_geocoding").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestQuotaRecord_CountsUsage(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordUsage(ctx, true))
	}
	require.NoError(t, svc.RecordUsage(ctx, false))

	status, err := svc.QuotaStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, status.TotalRequisicoes)
	assert.Equal(t, 5, status.RequisicoesSucesso)
	assert.Equal(t, 1, status.RequisicoesErro)
	assert.Equal(t, 994, status.RequisicoesDisponiveis)
	assert.NotNil(t, status.DataPrimeiroUso)
	assert.NotNil(t, status.DataUltimoUso)
}

func TestQuotaStatus_LimitStates(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 10)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, svc.RecordUsage(ctx, true))
	}
	status, err := svc.QuotaStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LimitAvailable, status.StatusLimite)

	// 9/10 crosses the 90% warning threshold.
	require.NoError(t, svc.RecordUsage(ctx, true))
	status, err = svc.QuotaStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LimitWarning, status.StatusLimite)
	assert.InDelta(t, 90.0, status.PercentualUso, 1e-9)

	require.NoError(t, svc.RecordUsage(ctx, true))
	status, err = svc.QuotaStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LimitReached, status.StatusLimite)
	assert.Equal(t, 0, status.RequisicoesDisponiveis)
}

func TestQuotaCheck(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 2)
	ctx := context.Background()

	check, err := svc.QuotaCheck(ctx)
	require.NoError(t, err)
	assert.True(t, check.PodeUsar)
	assert.Equal(t, 2, check.RequisicoesDisponiveis)

	require.NoError(t, svc.RecordUsage(ctx, true))
	require.NoError(t, svc.RecordUsage(ctx, false))

	check, err = svc.QuotaCheck(ctx)
	require.NoError(t, err)
	assert.False(t, check.PodeUsar)
	assert.Equal(t, 0, check.RequisicoesDisponiveis)
	assert.Equal(t, 2, check.TotalUsado)
}

func TestQuotaRecord_Concurrent(t *testing.T) {
	db := setupGeoDB(t)
	svc := geocoding.NewService(db, zap.NewNop(), 1000)
	ctx := context.Background()

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(success bool) {
			defer wg.Done()
			errs <- svc.RecordUsage(ctx, success)
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// No lost updates: the single-statement increment must account for
	// every concurrent call exactly once.
	status, err := svc.QuotaStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, status.TotalRequisicoes)
	assert.Equal(t, workers, status.RequisicoesSucesso+status.RequisicoesErro)
}
