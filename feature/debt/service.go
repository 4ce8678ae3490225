package debt

import (
	"context"

	"company-registry/core/batch"
	"company-registry/core/cnpj"
	"company-registry/core/utils"
	"company-registry/feature/debt/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// debtChunkSize is the identifier batch size per aggregation query.
const debtChunkSize = 500

// Service aggregates debt enrollments from the divida_ativa table.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new debt verification service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Verify collapses the debt enrollments of each identifier into one
// summary. Identifiers failing strict normalization are dropped, lookups
// run in chunks and a failed chunk is skipped rather than failing the
// whole batch. Companies with no enrollment are simply absent from the
// result.
func (s *Service) Verify(ctx context.Context, itens []any) map[string]models.Summary {
	keys := normalizeKeys(itens)
	result := make(map[string]models.Summary, len(keys))
	if len(keys) == 0 {
		return result
	}

	s.logger.Info("Verifying debt enrollments", zap.Int("identifiers", len(keys)))

	for _, chunk := range batch.Chunk(keys, debtChunkSize) {
		var rows []models.Row
		err := s.db.WithContext(ctx).
			Table("divida_ativa").
			Select(s.selectClause()).
			Where("dva_cnpj IN ?", chunk).
			Group("dva_cnpj").
			Find(&rows).Error
		if err != nil {
			s.logger.Warn("Debt chunk failed, skipping",
				zap.Int("size", len(chunk)), zap.Error(err))
			continue
		}

		for _, row := range rows {
			result[row.Cnpj] = models.Summary{
				Nome:     row.Nome,
				Situacao: row.Situacao,
				Valor:    row.Valor,
			}
		}
	}

	return result
}

func (s *Service) selectClause() string {
	unified := `GROUP_CONCAT(DISTINCT dva_situacao_inscricao SEPARATOR ' / ')`
	if s.db.Dialector.Name() == "sqlite" {
		// sqlite rejects DISTINCT with a custom separator, so rewrite
		// the default comma one after the fact.
		unified = `replace(group_concat(DISTINCT dva_situacao_inscricao), ',', ' / ')`
	}
	return "dva_cnpj AS cnpj, " +
		"MAX(dva_nome_devedor) AS nome_devedor, " +
		unified + " AS situacao_unificada, " +
		"SUM(dva_valor_consolidado) AS valor_total"
}

// normalizeKeys strict-normalizes and deduplicates the raw identifiers.
func normalizeKeys(itens []any) []string {
	seen := make(map[string]struct{}, len(itens))
	keys := make([]string, 0, len(itens))
	for _, item := range itens {
		key, ok := cnpj.NormalizeStrict(utils.ToString(item))
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
