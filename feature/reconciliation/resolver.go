package reconciliation

import (
	"fmt"
	"strings"

	"company-registry/core/database"
	"company-registry/core/httperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Partition selects which registry view family a lookup targets.
type Partition string

const (
	// PartitionActive targets companies with a regular registration.
	PartitionActive Partition = "ativas"
	// PartitionInactive targets companies with an irregular registration.
	PartitionInactive Partition = "inativas"
)

// viewPrefix returns the view name prefix for the partition.
func (p Partition) viewPrefix() string {
	return "v_empresas_" + string(p) + "_"
}

// PartitionFor derives the view partition from the situational-status
// filters: status 02 (regular) selects the active partition, anything
// else, including no filter, the inactive one. Imports analyze irregular
// registrations by default.
func PartitionFor(situacoes []string) Partition {
	for _, s := range situacoes {
		s = strings.TrimSpace(s)
		if s == "02" || s == "2" {
			return PartitionActive
		}
	}
	return PartitionInactive
}

// Resolver maps (partition, UF) to an existing physical view name.
// Resolution is two-step: the exact expected name first, then a fallback
// scan over same-partition views whose name ends in the requested UF under
// any casing. View names are built from validated inputs only, never from
// raw caller strings.
type Resolver struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewResolver creates a view resolver.
func NewResolver(db *gorm.DB, logger *zap.Logger) *Resolver {
	return &Resolver{db: db, logger: logger}
}

// Resolve returns the physical view name for (partition, uf). The uf must
// already be normalized via utils.NormalizeUF.
func (r *Resolver) Resolve(partition Partition, uf string) (string, error) {
	expected := partition.viewPrefix() + strings.ToLower(uf)

	exists, err := database.TableExists(r.db, expected)
	if err != nil {
		return "", httperr.Dependency("Erro ao verificar views disponíveis", err)
	}
	if exists {
		return expected, nil
	}

	candidates, err := database.ListTablesLike(r.db, partition.viewPrefix()+"%")
	if err != nil {
		return "", httperr.Dependency("Erro ao verificar views disponíveis", err)
	}

	suffix := "_" + strings.ToLower(uf)
	for _, name := range candidates {
		if strings.HasSuffix(strings.ToLower(name), suffix) {
			r.logger.Warn("Expected view absent, using fallback candidate",
				zap.String("expected", expected),
				zap.String("using", name))
			return name, nil
		}
	}

	return "", httperr.NotFound(
		fmt.Sprintf("A view de %s para %s não foi encontrada no banco.", partition, uf),
		fmt.Sprintf("Esperado: %s. Existentes: %s", expected, joinOrNone(candidates)),
	)
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "Nenhuma"
	}
	return strings.Join(names, ", ")
}
