package debt_test

import (
	"context"
	"testing"

	"company-registry/core/database"
	"company-registry/feature/debt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDebtDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE divida_ativa (
		dva_cnpj TEXT,
		dva_nome_devedor TEXT,
		dva_situacao_inscricao TEXT,
		dva_valor_consolidado REAL
	)`).Error)
	return db
}

func seedDebt(t *testing.T, db *gorm.DB, cnpj, nome, situacao string, valor float64) {
	t.Helper()
	require.NoError(t, db.Exec(
		`INSERT INTO divida_ativa (dva_cnpj, dva_nome_devedor, dva_situacao_inscricao, dva_valor_consolidado) VALUES (?, ?, ?, ?)`,
		cnpj, nome, situacao, valor,
	).Error)
}

func TestVerify(t *testing.T) {
	db := setupDebtDB(t)
	seedDebt(t, db, "11222333000181", "ACME LTDA", "ATIVA", 1500.50)
	seedDebt(t, db, "11222333000181", "ACME LTDA", "PARCELADA", 300)
	seedDebt(t, db, "99888777000166", "BETA SA", "ATIVA", 42)

	svc := debt.NewService(db, zap.NewNop())
	result := svc.Verify(context.Background(), []any{
		"11.222.333/0001-81",
		"99888777000166",
		"55444333000122", // no enrollment
	})

	require.Len(t, result, 2)

	acme := result["11222333000181"]
	assert.Equal(t, "ACME LTDA", acme.Nome)
	assert.Contains(t, acme.Situacao, "ATIVA")
	assert.Contains(t, acme.Situacao, "PARCELADA")
	assert.Contains(t, acme.Situacao, " / ")
	assert.InDelta(t, 1800.50, acme.Valor, 0.001)

	beta := result["99888777000166"]
	assert.Equal(t, "BETA SA", beta.Nome)
	assert.Equal(t, "ATIVA", beta.Situacao)
	assert.InDelta(t, 42, beta.Valor, 0.001)
}

func TestVerify_CollapsesDuplicateStatuses(t *testing.T) {
	db := setupDebtDB(t)
	seedDebt(t, db, "11222333000181", "ACME LTDA", "ATIVA", 10)
	seedDebt(t, db, "11222333000181", "ACME LTDA", "ATIVA", 20)

	svc := debt.NewService(db, zap.NewNop())
	result := svc.Verify(context.Background(), []any{"11222333000181"})

	require.Len(t, result, 1)
	assert.Equal(t, "ATIVA", result["11222333000181"].Situacao)
	assert.InDelta(t, 30, result["11222333000181"].Valor, 0.001)
}

func TestVerify_DropsInvalidIdentifiers(t *testing.T) {
	db := setupDebtDB(t)
	svc := debt.NewService(db, zap.NewNop())

	result := svc.Verify(context.Background(), []any{"123", "abc", nil, ""})
	assert.Empty(t, result)
}

func TestVerify_EmptyInput(t *testing.T) {
	db := setupDebtDB(t)
	svc := debt.NewService(db, zap.NewNop())

	assert.Empty(t, svc.Verify(context.Background(), nil))
}
