package models

// Option is one combo entry with a code and a display label.
type Option struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

// Municipality is one municipality combo entry.
type Municipality struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
	Uf        string `json:"uf"`
}

// CategoryTree maps each market sector to its segments.
type CategoryTree map[string][]string
