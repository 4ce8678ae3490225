package reconciliation

import (
	"context"
	"fmt"

	"company-registry/core/batch"
	"company-registry/core/cnpj"
	"company-registry/core/httperr"
	"company-registry/core/utils"
	"company-registry/feature/reconciliation/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// reconcileChunkSize bounds the IN() list per registry view query.
const reconcileChunkSize = 400

// Registry fields overlaid on matched caller rows.
const (
	orgaoReceitaFederal = "RECEITA FEDERAL"
	receitaIrregular    = "SITUAÇÃO CADASTRAL IRREGULAR"
)

// Service handles reconciliation operations.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	resolver *Resolver
	archive  *Archive
}

// NewService creates a new reconciliation service. archive may be nil, in
// which case reports are not persisted.
func NewService(db *gorm.DB, logger *zap.Logger, archive *Archive) *Service {
	return &Service{
		db:       db,
		logger:   logger,
		resolver: NewResolver(db, logger),
		archive:  archive,
	}
}

// Reconcile runs the full reconciliation pipeline for one request.
func (s *Service) Reconcile(ctx context.Context, req models.Request) (*models.Report, error) {
	uf := utils.NormalizeUF(req.Uf)
	if uf == "" {
		return nil, httperr.Validation("Selecione uma UF válida.")
	}
	if len(req.Itens) == 0 {
		return nil, httperr.Validation("Informe ao menos um CNPJ.")
	}

	keys, entries := dedupeEntries(req.Itens, uf)
	if len(keys) == 0 {
		return nil, httperr.Validation("Nenhum CNPJ válido identificado.")
	}

	tabela, err := s.resolver.Resolve(PartitionFor(req.Situacoes), uf)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciling identifiers",
		zap.Int("identifiers", len(keys)),
		zap.String("view", tabela))

	matches, err := s.lookupBatches(ctx, tabela, keys)
	if err != nil {
		return nil, err
	}

	report := mergeResults(keys, entries, matches, uf, tabela)
	s.logger.Info("Reconciliation complete", zap.String("summary", describe(report)))

	if s.archive != nil {
		// Best effort: a failed archive write never fails the request.
		if err := s.archive.Store(ctx, uf, report); err != nil {
			s.logger.Warn("Failed to archive reconciliation report", zap.Error(err))
		}
	}

	return report, nil
}

// dedupeEntries canonicalizes every row's identifier and deduplicates by
// canonical key. Rows failing normalization are dropped. On key collision
// the last row wins while keeping the first occurrence's position.
func dedupeEntries(items []models.Entry, uf string) ([]string, map[string]models.Entry) {
	keys := make([]string, 0, len(items))
	entries := make(map[string]models.Entry, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}
		key, ok := cnpj.NormalizeLenient(utils.ToString(item["cnpj"]))
		if !ok {
			continue
		}

		entry := make(models.Entry, len(item)+1)
		for k, v := range item {
			entry[k] = v
		}
		entry["cnpj"] = key
		if utils.ToString(entry["uf"]) == "" {
			entry["uf"] = uf
		}

		if _, seen := entries[key]; !seen {
			keys = append(keys, key)
		}
		entries[key] = entry
	}

	return keys, entries
}

// lookupBatches queries the resolved view chunk by chunk. Any chunk
// failure aborts the whole request, naming the failing view.
func (s *Service) lookupBatches(ctx context.Context, tabela string, keys []string) (map[string]models.RegistryRow, error) {
	matches := make(map[string]models.RegistryRow)

	for _, chunk := range batch.Chunk(keys, reconcileChunkSize) {
		var rows []models.RegistryRow
		err := s.db.WithContext(ctx).
			Table(tabela).
			Select("cnpj_completo AS cnpj, razao_social, situacao_cadastral, motivo_situacao_cadastral, municipio_codigo").
			Where("cnpj_completo IN ?", chunk).
			Find(&rows).Error
		if err != nil {
			return nil, httperr.Dependencyf("Erro ao consultar dados.",
				"Falha na tabela %s: %v", tabela, err)
		}

		for _, row := range rows {
			// Stored identifiers may carry formatting or lost zeros.
			key, ok := cnpj.NormalizeLenient(row.Cnpj)
			if !ok {
				continue
			}
			matches[key] = row
		}
	}

	return matches, nil
}

// mergeResults overlays registry fields onto the caller rows. Registry
// fields win on overlap; unmatched rows pass through unchanged with no
// found flag.
func mergeResults(keys []string, entries map[string]models.Entry, matches map[string]models.RegistryRow, uf, tabela string) *models.Report {
	itens := make([]models.Entry, 0, len(keys))
	encontrados := 0

	for _, key := range keys {
		entry := entries[key]
		row, found := matches[key]
		if !found {
			itens = append(itens, entry)
			continue
		}

		encontrados++
		merged := make(models.Entry, len(entry)+10)
		for k, v := range entry {
			merged[k] = v
		}
		merged["cnpj"] = key
		merged["razao_social"] = row.RazaoSocial
		merged["orgao"] = orgaoReceitaFederal
		merged["tipo_situacao_inscricao"] = row.MotivoSituacaoCadastral
		merged["situacao_inscricao"] = row.SituacaoCadastral
		merged["receita_principal"] = receitaIrregular
		merged["valor_consolidado"] = 0
		merged["municipio_codigo"] = row.MunicipioCodigo
		merged["municipio_nome"] = ""
		merged["uf"] = uf
		merged["status_encontrado"] = true
		itens = append(itens, merged)
	}

	return &models.Report{
		Quantidade:     len(keys),
		Encontrados:    encontrados,
		NaoEncontrados: len(keys) - encontrados,
		TabelaUsada:    tabela,
		Itens:          itens,
	}
}

// describe summarizes a report for logging.
func describe(r *models.Report) string {
	return fmt.Sprintf("%d/%d found in %s", r.Encontrados, r.Quantidade, r.TabelaUsada)
}
