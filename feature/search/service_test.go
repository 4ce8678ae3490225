package search_test

import (
	"context"
	"errors"
	"testing"

	"company-registry/core/database"
	"company-registry/core/httperr"
	"company-registry/feature/search"
	"company-registry/feature/search/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSearchDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE v_empresas_ativas_rs (
			cnpj_completo TEXT, razao_social TEXT, nome_fantasia TEXT,
			logradouro TEXT, numero TEXT, complemento TEXT, bairro TEXT,
			cep TEXT, municipio_codigo TEXT, municipio_nome TEXT, uf TEXT,
			ddd_1 TEXT, telefone_1 TEXT, ddd_2 TEXT, telefone_2 TEXT,
			email TEXT, cnae_fiscal_principal TEXT, situacao_inscricao TEXT,
			motivo_situacao_cadastral TEXT, porte_empresa TEXT,
			capital_social REAL, latitude REAL, longitude REAL
		)`,
		`CREATE TABLE v_empresas_inativas_rs (
			cnpj_completo TEXT, razao_social TEXT, nome_fantasia TEXT,
			logradouro TEXT, numero TEXT, complemento TEXT, bairro TEXT,
			cep TEXT, municipio_codigo TEXT, municipio_nome TEXT, uf TEXT,
			ddd_1 TEXT, telefone_1 TEXT, ddd_2 TEXT, telefone_2 TEXT,
			email TEXT, cnae_fiscal_principal TEXT, situacao_inscricao TEXT,
			motivo_situacao_cadastral TEXT, porte_empresa TEXT,
			capital_social REAL, latitude REAL, longitude REAL
		)`,
		`CREATE TABLE tab_cnae_categorias (cod_divisao TEXT, ind_grande_setor TEXT, nom_segmento_mercado TEXT)`,
		`CREATE TABLE d_motivos_situacao_cadastral (mot_codigo TEXT, mot_descricao TEXT)`,
		`CREATE TABLE d_situacoes_cadastrais (sit_codigo TEXT, sit_descricao TEXT)`,
		`CREATE TABLE municipios (mun_codigo TEXT, mun_nome TEXT, mun_uf TEXT, mun_regiao_nome TEXT, mun_regiao_sigla TEXT)`,
		`CREATE TABLE dim_ibge_municipios (ibge_id TEXT, mesorregiao_nome TEXT, mesorregiao_id TEXT, microrregiao_nome TEXT, microrregiao_id TEXT)`,
		`CREATE TABLE divida_ativa (dva_cnpj TEXT, dva_nome_devedor TEXT, dva_situacao_inscricao TEXT, dva_valor_consolidado REAL)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, view, cnpj, razao, bairro, municipio, cnae, situacao, porte string) {
	t.Helper()
	require.NoError(t, db.Exec(
		`INSERT INTO `+view+` (cnpj_completo, razao_social, nome_fantasia, bairro, municipio_codigo, municipio_nome, uf, cnae_fiscal_principal, situacao_inscricao, porte_empresa, email)
		 VALUES (?, ?, ?, ?, ?, 'PORTO ALEGRE', 'RS', ?, ?, ?, 'contato@example.com')`,
		cnpj, razao, razao, bairro, municipio, cnae, situacao, porte,
	).Error)
}

func TestSearch(t *testing.T) {
	db := setupSearchDB(t)
	seedCompany(t, db, "v_empresas_ativas_rs", "11222333000181", "ACME LTDA", "CENTRO", "4314902", "47.11-3/01", "02", "03")
	require.NoError(t, db.Exec(`INSERT INTO tab_cnae_categorias VALUES ('47', 'Comércio', 'Varejo')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO d_situacoes_cadastrais VALUES ('02', 'ATIVA')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO municipios VALUES ('4314902', 'Porto Alegre', 'RS', 'Sul', 'S')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO divida_ativa VALUES ('11.222.333/0001-81', 'ACME LTDA', 'ATIVA', 500)`).Error)

	svc := search.NewService(db, zap.NewNop())
	rows, err := svc.Search(context.Background(), models.Query{Uf: "RS"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ACME LTDA", row["razao_social"])
	assert.Equal(t, "contato@example.com", row["correio_eletronico"])
	assert.Equal(t, "ATIVA", row["situacao_cadastral_descricao"])
	assert.Equal(t, "Comércio", row["ind_grande_setor"])
	assert.Equal(t, "Varejo", row["nom_segmento_mercado"])
	assert.Equal(t, "Sul", row["regiao_nome"])
	assert.EqualValues(t, 1, row["tem_divida_ativa"])
	assert.EqualValues(t, 500, row["valor_divida_ativa_total"])
}

func TestSearch_TermFilter(t *testing.T) {
	db := setupSearchDB(t)
	seedCompany(t, db, "v_empresas_ativas_rs", "11222333000181", "ACME LTDA", "CENTRO", "4314902", "4711301", "02", "03")
	seedCompany(t, db, "v_empresas_ativas_rs", "99888777000166", "BETA SA", "MOINHOS", "4314902", "4711301", "02", "05")

	svc := search.NewService(db, zap.NewNop())

	rows, err := svc.Search(context.Background(), models.Query{Uf: "RS", Termo: "acme"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ACME LTDA", rows[0]["razao_social"])

	rows, err = svc.Search(context.Background(), models.Query{Uf: "RS", Termo: "MOINHOS"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BETA SA", rows[0]["razao_social"])
}

func TestSearch_CnaeFilterIgnoresPunctuation(t *testing.T) {
	db := setupSearchDB(t)
	// Stored with punctuation, filtered bare.
	seedCompany(t, db, "v_empresas_ativas_rs", "11222333000181", "ACME LTDA", "CENTRO", "4314902", "47.11-3/01", "02", "03")
	seedCompany(t, db, "v_empresas_ativas_rs", "99888777000166", "BETA SA", "CENTRO", "4314902", "62.01-5/00", "02", "03")

	svc := search.NewService(db, zap.NewNop())
	rows, err := svc.Search(context.Background(), models.Query{Uf: "RS", Cnaes: []string{"4711301"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ACME LTDA", rows[0]["razao_social"])
}

func TestSearch_InactivePartition(t *testing.T) {
	db := setupSearchDB(t)
	seedCompany(t, db, "v_empresas_inativas_rs", "11222333000181", "ACME LTDA", "CENTRO", "4314902", "4711301", "08", "03")

	svc := search.NewService(db, zap.NewNop())
	rows, err := svc.Search(context.Background(), models.Query{Uf: "RS", Situacoes: []string{"08"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "08", rows[0]["situacao_cadastral"])
}

func TestSearch_OrderedAndCombined(t *testing.T) {
	db := setupSearchDB(t)
	seedCompany(t, db, "v_empresas_ativas_rs", "99888777000166", "ZULU SA", "CENTRO", "4314902", "4711301", "02", "03")
	seedCompany(t, db, "v_empresas_ativas_rs", "11222333000181", "ACME LTDA", "CENTRO", "4314902", "4711301", "02", "03")
	seedCompany(t, db, "v_empresas_ativas_rs", "55444333000122", "MID ME", "CENTRO", "4305108", "4711301", "02", "05")

	svc := search.NewService(db, zap.NewNop())
	rows, err := svc.Search(context.Background(), models.Query{Uf: "RS"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ACME LTDA", rows[0]["razao_social"])
	assert.Equal(t, "ZULU SA", rows[2]["razao_social"])

	rows, err = svc.Search(context.Background(), models.Query{
		Uf: "RS", Municipios: []string{"4314902"}, Portes: []string{"03"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestSearch_NoView(t *testing.T) {
	db := setupSearchDB(t)
	svc := search.NewService(db, zap.NewNop())

	_, err := svc.Search(context.Background(), models.Query{Uf: "SP"})
	require.Error(t, err)

	var he *httperr.Error
	require.True(t, errors.As(err, &he))
	assert.Equal(t, httperr.KindNotFound, he.Kind)
}
