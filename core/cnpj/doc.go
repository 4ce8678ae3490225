// Package cnpj provides normalization of raw CNPJ strings into the
// canonical 14-digit registry key.
//
// Two policies exist on purpose and must not be unified:
//
//   - NormalizeLenient (import/reconciliation path): strips non-digits,
//     left-pads 1-13 digit results to 14 with zeros and keeps the first
//     14 digits of longer results.
//   - NormalizeStrict (geocoding and debt paths): strips non-digits and
//     accepts only an exact 14-digit result; everything else is rejected.
//
// The asymmetry mirrors how each endpoint treats malformed input: bulk
// imports tolerate spreadsheet damage (lost leading zeros, glued columns),
// while cache and aggregation keys must match stored rows exactly.
//
// # Usage
//
//	key, ok := cnpj.NormalizeLenient("12.345.678/0001-99")
//	// key == "12345678000199", ok == true
package cnpj
