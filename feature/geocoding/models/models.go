package models

import "time"

// Validation statuses stored in cache_geocodificacao. A write-back always
// lands on exactly one of these; only Validated rows are cache hits.
const (
	StatusValidated = "VALIDADO"
	StatusNotFound  = "NAO_ENCONTRADO"
)

// Quota limit states reported by the governor.
const (
	LimitAvailable = "DISPONIVEL"
	LimitWarning   = "ALERTA"
	LimitReached   = "LIMITE_ATINGIDO"
)

// Source recorded for cache write-backs.
const SourceGoogleAPI = "GOOGLE_API"

// CacheEntry represents the 'cache_geocodificacao' table. Rows are keyed
// by (cnpj, endereco_completo); repeated saves update coordinates and
// status in place.
type CacheEntry struct {
	Cnpj             string     `gorm:"column:cnpj"`
	EnderecoCompleto string     `gorm:"column:endereco_completo"`
	Logradouro       string     `gorm:"column:logradouro"`
	Numero           string     `gorm:"column:numero"`
	Bairro           string     `gorm:"column:bairro"`
	Cidade           string     `gorm:"column:cidade"`
	Uf               string     `gorm:"column:uf"`
	Cep              string     `gorm:"column:cep"`
	Latitude         *float64   `gorm:"column:latitude"`
	Longitude        *float64   `gorm:"column:longitude"`
	StatusValidacao  string     `gorm:"column:status_validacao"`
	Fonte            string     `gorm:"column:fonte"`
	DataValidacao    time.Time  `gorm:"column:data_validacao"`
	DataAtualizacao  *time.Time `gorm:"column:data_atualizacao"`
}

// TableName overrides the table name for CacheEntry.
func (CacheEntry) TableName() string {
	return "cache_geocodificacao"
}

// QuotaCounter represents the 'controle_api_geocoding' table, one row per
// (ano, mes). Counters only ever grow; rows are created lazily on first
// touch in a month.
type QuotaCounter struct {
	Ano                int        `gorm:"column:ano"`
	Mes                int        `gorm:"column:mes"`
	TotalRequisicoes   int        `gorm:"column:total_requisicoes"`
	RequisicoesSucesso int        `gorm:"column:requisicoes_sucesso"`
	RequisicoesErro    int        `gorm:"column:requisicoes_erro"`
	LimiteMensal       int        `gorm:"column:limite_mensal"`
	DataPrimeiroUso    *time.Time `gorm:"column:data_primeiro_uso"`
	DataUltimoUso      *time.Time `gorm:"column:data_ultimo_uso"`
}

// TableName overrides the table name for QuotaCounter.
func (QuotaCounter) TableName() string {
	return "controle_api_geocoding"
}

// LimitState derives the governor state from the counter.
func (q QuotaCounter) LimitState() string {
	switch {
	case q.TotalRequisicoes >= q.LimiteMensal:
		return LimitReached
	case float64(q.TotalRequisicoes) >= float64(q.LimiteMensal)*0.9:
		return LimitWarning
	default:
		return LimitAvailable
	}
}

// CacheLookupItem is one (cnpj, endereco) pair of a cache lookup request.
// Extra fields sent by the frontend are ignored.
type CacheLookupItem struct {
	Cnpj     string `json:"cnpj"`
	Endereco string `json:"endereco"`
}

// CacheHit is one cache lookup result.
type CacheHit struct {
	Lat           *float64  `json:"lat"`
	Lon           *float64  `json:"lon"`
	Cacheado      bool      `json:"cacheado"`
	DataValidacao time.Time `json:"data_validacao"`
}

// SaveItem is one candidate geocode result to write back to the cache.
// Lat and Lon are loosely typed: the frontend sends numbers or formatted
// strings depending on the provider response path.
type SaveItem struct {
	Cnpj       string `json:"cnpj"`
	Endereco   string `json:"endereco"`
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	Uf         string `json:"uf"`
	Cep        string `json:"cep"`
	Lat        any    `json:"lat"`
	Lon        any    `json:"lon"`
}

// Coordinates is one bulk lot lookup result.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// QuotaStatus is the full quota status response.
type QuotaStatus struct {
	Ano                    int        `json:"ano"`
	Mes                    int        `json:"mes"`
	TotalRequisicoes       int        `json:"total_requisicoes"`
	RequisicoesSucesso     int        `json:"requisicoes_sucesso"`
	RequisicoesErro        int        `json:"requisicoes_erro"`
	LimiteMensal           int        `json:"limite_mensal"`
	RequisicoesDisponiveis int        `json:"requisicoes_disponiveis"`
	PercentualUso          float64    `json:"percentual_uso"`
	StatusLimite           string     `json:"status_limite"`
	DataPrimeiroUso        *time.Time `json:"data_primeiro_uso"`
	DataUltimoUso          *time.Time `json:"data_ultimo_uso"`
}

// QuotaCheck is the availability check response.
type QuotaCheck struct {
	PodeUsar               bool   `json:"pode_usar"`
	RequisicoesDisponiveis int    `json:"requisicoes_disponiveis"`
	TotalUsado             int    `json:"total_usado"`
	LimiteMensal           int    `json:"limite_mensal"`
	Mensagem               string `json:"mensagem"`
}
