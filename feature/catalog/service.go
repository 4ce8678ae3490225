package catalog

import (
	"context"
	"time"

	"company-registry/core/httperr"
	"company-registry/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// catalogTTL bounds how stale a served lookup list can be.
const catalogTTL = 10 * time.Minute

// Service loads the combo lookup lists behind a TTL cache.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	cache  *cacheStore
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, cache: newCacheStore(catalogTTL)}
}

// Municipalities lists municipality options, optionally narrowed by
// region and a name or code search term.
func (s *Service) Municipalities(ctx context.Context, uf, busca string) ([]models.Municipality, error) {
	key := "municipios|" + uf + "|" + busca
	value, err := s.cache.getOrLoad(key, func() (any, error) {
		tx := s.db.WithContext(ctx).
			Table("municipios").
			Select("TRIM(mun_codigo) AS codigo, TRIM(mun_nome) AS descricao, TRIM(mun_uf) AS uf")
		if uf != "" {
			tx = tx.Where("UPPER(mun_uf) = ?", uf)
		}
		if busca != "" {
			termo := "%" + busca + "%"
			tx = tx.Where("(mun_nome LIKE ? OR CAST(mun_codigo AS CHAR) LIKE ?)", termo, termo)
		}

		var rows []models.Municipality
		if err := tx.Order("mun_nome").Find(&rows).Error; err != nil {
			return nil, httperr.Dependency("Erro ao listar municípios", err)
		}
		return compactMunicipalities(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Municipality), nil
}

// Cnaes lists CNAE options, optionally filtered by a code or description
// term. The list is capped because the full dictionary is too long for a
// combo.
func (s *Service) Cnaes(ctx context.Context, busca string) ([]models.Option, error) {
	key := "cnaes|" + busca
	value, err := s.cache.getOrLoad(key, func() (any, error) {
		tx := s.db.WithContext(ctx).
			Table("cnaes").
			Select("TRIM(cna_codigo) AS codigo, TRIM(cna_descricao) AS descricao")
		if busca != "" {
			termo := "%" + busca + "%"
			tx = tx.Where("(cna_codigo LIKE ? OR cna_descricao LIKE ?)", termo, termo)
		}

		var rows []models.Option
		if err := tx.Order("cna_codigo").Limit(200).Find(&rows).Error; err != nil {
			return nil, httperr.Dependency("Erro ao listar CNAEs", err)
		}
		return compactOptions(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Option), nil
}

// Situations lists every registration status ordered by code.
func (s *Service) Situations(ctx context.Context) ([]models.Option, error) {
	value, err := s.cache.getOrLoad("situacoes", func() (any, error) {
		var rows []models.Option
		err := s.db.WithContext(ctx).
			Table("d_situacoes_cadastrais").
			Select("TRIM(sit_codigo) AS codigo, TRIM(sit_descricao) AS descricao").
			Order("sit_codigo").
			Find(&rows).Error
		if err != nil {
			return nil, httperr.Dependency("Erro ao listar situações cadastrais", err)
		}
		return compactOptions(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Option), nil
}

// Categories builds the sector to segments tree for the cascading market
// filter.
func (s *Service) Categories(ctx context.Context) (models.CategoryTree, error) {
	value, err := s.cache.getOrLoad("categorias", func() (any, error) {
		var rows []struct {
			Setor    string `gorm:"column:setor"`
			Segmento string `gorm:"column:segmento"`
		}
		err := s.db.WithContext(ctx).
			Table("tab_cnae_categorias").
			Distinct("ind_grande_setor AS setor, nom_segmento_mercado AS segmento").
			Order("ind_grande_setor, nom_segmento_mercado").
			Find(&rows).Error
		if err != nil {
			return nil, httperr.Dependency("Erro ao listar categorias", err)
		}

		tree := make(models.CategoryTree)
		for _, row := range rows {
			if row.Setor == "" {
				continue
			}
			if _, ok := tree[row.Setor]; !ok {
				tree[row.Setor] = []string{}
			}
			if row.Segmento != "" {
				tree[row.Setor] = append(tree[row.Setor], row.Segmento)
			}
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(models.CategoryTree), nil
}

// compactOptions drops entries missing either field, mirroring what the
// combos can render.
func compactOptions(rows []models.Option) []models.Option {
	out := make([]models.Option, 0, len(rows))
	for _, row := range rows {
		if row.Codigo != "" && row.Descricao != "" {
			out = append(out, row)
		}
	}
	return out
}

func compactMunicipalities(rows []models.Municipality) []models.Municipality {
	out := make([]models.Municipality, 0, len(rows))
	for _, row := range rows {
		if row.Codigo != "" && row.Descricao != "" {
			out = append(out, row)
		}
	}
	return out
}
