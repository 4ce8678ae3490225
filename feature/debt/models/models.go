package models

// Summary is the collapsed debt position of one company: every enrollment
// folded into one debtor name, one unified status string and a total.
type Summary struct {
	Nome     string  `json:"nome"`
	Situacao string  `json:"situacao"`
	Valor    float64 `json:"valor"`
}

// Row is the per-company aggregate selected from divida_ativa.
type Row struct {
	Cnpj     string  `gorm:"column:cnpj"`
	Nome     string  `gorm:"column:nome_devedor"`
	Situacao string  `gorm:"column:situacao_unificada"`
	Valor    float64 `gorm:"column:valor_total"`
}
