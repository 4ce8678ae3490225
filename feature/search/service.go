package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"company-registry/core/database"
	"company-registry/core/httperr"
	"company-registry/feature/search/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// searchRowLimit caps a single search so one broad query cannot pin
	// the pool.
	searchRowLimit = 2000
	// searchTimeout is the wall-clock ceiling per search query.
	searchTimeout = 30 * time.Second
)

// digitsExpr strips CNPJ and CNAE punctuation inside SQL so formatted and
// bare identifiers compare equal.
func digitsExpr(col string) string {
	return "REPLACE(REPLACE(REPLACE(" + col + ", '.', ''), '/', ''), '-', '')"
}

var searchColumns = strings.Join([]string{
	"v.cnpj_completo",
	"v.razao_social",
	"v.nome_fantasia",
	"v.logradouro",
	"v.numero",
	"v.complemento",
	"v.bairro",
	"v.cep",
	"v.municipio_codigo",
	"v.municipio_nome",
	"v.uf",
	"v.ddd_1",
	"v.telefone_1",
	"v.ddd_2",
	"v.telefone_2",
	"v.email AS correio_eletronico",
	"v.cnae_fiscal_principal",
	"v.situacao_inscricao AS situacao_cadastral",
	"v.motivo_situacao_cadastral",
	"mc.mot_descricao AS motivo_situacao_cadastral_descricao",
	"sc.sit_descricao AS situacao_cadastral_descricao",
	"cat.ind_grande_setor",
	"cat.nom_segmento_mercado",
	"v.porte_empresa",
	"v.capital_social",
	"v.latitude AS lat",
	"v.longitude AS lon",
	"COALESCE(m.mun_regiao_nome, '') AS regiao_nome",
	"COALESCE(m.mun_regiao_sigla, '') AS regiao_sigla",
	"COALESCE(dim.mesorregiao_nome, '') AS mesorregiao_nome",
	"COALESCE(dim.mesorregiao_id, '') AS mesorregiao_id",
	"COALESCE(dim.microrregiao_nome, '') AS microrregiao_nome",
	"COALESCE(dim.microrregiao_id, '') AS microrregiao_id",
	"COALESCE(tb_div.tem_divida, 0) AS tem_divida_ativa",
	"COALESCE(tb_div.valor_total, 0) AS valor_divida_ativa_total",
}, ", ")

// Service runs company searches over the per-region registry views.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new search service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// viewFor picks the physical view for the query. Searching defaults to
// the active partition; only a status filter naming no regular status
// switches to the inactive one.
func viewFor(uf string, situacoes []string) string {
	partition := "inativas"
	if len(situacoes) == 0 {
		partition = "ativas"
	}
	for _, s := range situacoes {
		s = strings.TrimSpace(s)
		if s == "02" || s == "2" {
			partition = "ativas"
			break
		}
	}
	return "v_empresas_" + partition + "_" + strings.ToLower(uf)
}

// Search runs the filtered company query. The Uf on the query must be
// normalized already; the whole query is bounded by searchTimeout and
// searchRowLimit.
func (s *Service) Search(ctx context.Context, q models.Query) ([]models.Result, error) {
	view := viewFor(q.Uf, q.Situacoes)

	exists, err := database.TableExists(s.db, view)
	if err != nil {
		return nil, httperr.Dependency("Erro ao verificar views disponíveis", err)
	}
	if !exists {
		return nil, httperr.NotFound(
			fmt.Sprintf("View não encontrada para %s.", q.Uf),
			fmt.Sprintf("Esperado: %s", view),
		)
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	tx := s.db.WithContext(ctx).
		Table(view+" v").
		Select(searchColumns).
		Joins("LEFT JOIN tab_cnae_categorias cat ON cat.cod_divisao = SUBSTR(" + digitsExpr("v.cnae_fiscal_principal") + ", 1, 2)").
		Joins("LEFT JOIN d_motivos_situacao_cadastral mc ON mc.mot_codigo = v.motivo_situacao_cadastral").
		Joins("LEFT JOIN d_situacoes_cadastrais sc ON sc.sit_codigo = v.situacao_inscricao").
		Joins("LEFT JOIN municipios m ON m.mun_codigo = v.municipio_codigo").
		Joins("LEFT JOIN dim_ibge_municipios dim ON dim.ibge_id = v.municipio_codigo").
		Joins("LEFT JOIN (SELECT dva_cnpj, 1 AS tem_divida, SUM(dva_valor_consolidado) AS valor_total FROM divida_ativa GROUP BY dva_cnpj) tb_div ON " +
			digitsExpr("tb_div.dva_cnpj") + " = " + digitsExpr("v.cnpj_completo")).
		Where("v.uf = ?", q.Uf)

	tx = applyFilters(tx, q)

	start := time.Now()
	var rows []models.Result
	err = tx.Order("v.razao_social").Limit(searchRowLimit).Find(&rows).Error
	if err != nil {
		return nil, httperr.Dependency("Erro ao buscar dados", err)
	}

	s.logger.Info("Search executed",
		zap.String("view", view),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)))

	return rows, nil
}

// applyFilters narrows the query with every filter the caller supplied.
func applyFilters(tx *gorm.DB, q models.Query) *gorm.DB {
	if q.Setor != "" {
		tx = tx.Where("cat.ind_grande_setor = ?", q.Setor)
	}
	if q.Segmento != "" {
		tx = tx.Where("cat.nom_segmento_mercado = ?", q.Segmento)
	}
	if q.Termo != "" {
		termo := "%" + q.Termo + "%"
		tx = tx.Where(
			"(v.razao_social LIKE ? OR v.nome_fantasia LIKE ? OR v.cnpj_completo LIKE ? OR v.bairro LIKE ?)",
			termo, termo, termo, termo)
	}
	if len(q.Municipios) > 0 {
		tx = tx.Where("v.municipio_codigo IN ?", q.Municipios)
	}
	if len(q.Cnaes) > 0 {
		clauses := make([]string, len(q.Cnaes))
		args := make([]any, len(q.Cnaes))
		for i, c := range q.Cnaes {
			clauses[i] = digitsExpr("v.cnae_fiscal_principal") + " = ?"
			args[i] = c
		}
		tx = tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	if len(q.Situacoes) > 0 {
		tx = tx.Where("v.situacao_inscricao IN ?", q.Situacoes)
	}
	if len(q.Portes) > 0 {
		tx = tx.Where("v.porte_empresa IN ?", q.Portes)
	}
	return tx
}
