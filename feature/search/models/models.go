package models

// Query carries the parsed search filters. Uf is mandatory; every other
// filter narrows the result when present.
type Query struct {
	Uf         string
	Termo      string
	Setor      string
	Segmento   string
	Municipios []string
	Cnaes      []string
	Situacoes  []string
	Portes     []string
}

// Result is one company row. Column aliases from the view and its joins
// are preserved as map keys so the payload mirrors what the front end
// renders. An alias rather than a named type so gorm scans into it
// directly.
type Result = map[string]any
