package cnpj

import "strings"

// Length is the canonical CNPJ key length.
const Length = 14

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeLenient normalizes raw into a 14-digit key for the import path.
// Results of 1-13 digits are zero-padded on the left; results longer than
// 14 keep the first 14 digits. Empty results are rejected.
func NormalizeLenient(raw string) (string, bool) {
	digits := Digits(raw)
	if digits == "" {
		return "", false
	}
	if len(digits) > Length {
		digits = digits[:Length]
	}
	if len(digits) < Length {
		digits = strings.Repeat("0", Length-len(digits)) + digits
	}
	return digits, true
}

// NormalizeStrict normalizes raw into a 14-digit key for the geocoding and
// debt paths. Only an exact 14-digit result is accepted; no padding or
// truncation is applied.
func NormalizeStrict(raw string) (string, bool) {
	digits := Digits(raw)
	if len(digits) != Length {
		return "", false
	}
	return digits, true
}
