package models

// Entry is one caller-supplied import row. The CNPJ lives under the
// "cnpj" key; every other column is carried through untouched and merged
// rows are returned with registry fields overlaid.
type Entry map[string]any

// Request is the reconciliation request body.
type Request struct {
	// Uf is the two-letter region code the import refers to.
	Uf string `json:"uf"`
	// Situacoes optionally narrows the registration statuses under
	// analysis; it selects the active or inactive view partition.
	Situacoes []string `json:"situacoes"`
	// Itens are the caller rows to reconcile.
	Itens []Entry `json:"itens"`
}

// Report is the reconciliation response.
type Report struct {
	// Quantidade is the deduplicated identifier count.
	Quantidade int `json:"quantidade"`
	// Encontrados counts identifiers matched in the registry view.
	Encontrados int `json:"encontrados"`
	// NaoEncontrados counts identifiers absent from the view.
	NaoEncontrados int `json:"nao_encontrados"`
	// TabelaUsada is the physical view name actually queried, which may
	// differ from the expected name when the fallback resolver kicked in.
	TabelaUsada string `json:"tabela_usada"`
	// Itens are the merged rows, one per deduplicated identifier, in
	// first-occurrence input order.
	Itens []Entry `json:"itens"`
}

// RegistryRow is the authoritative record selected from a registry view.
type RegistryRow struct {
	Cnpj                    string `gorm:"column:cnpj"`
	RazaoSocial             string `gorm:"column:razao_social"`
	SituacaoCadastral       string `gorm:"column:situacao_cadastral"`
	MotivoSituacaoCadastral string `gorm:"column:motivo_situacao_cadastral"`
	MunicipioCodigo         string `gorm:"column:municipio_codigo"`
}
