package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFloat converts various types to *float64. String inputs tolerate
// Brazilian number formatting ("1.234,56"): thousands separators are
// stripped and the decimal comma becomes a dot. Unparseable or empty
// values yield nil.
func ToFloat(val any) *float64 {
	switch v := val.(type) {
	case nil:
		return nil
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		return parseFlexFloat(v)
	case []byte:
		return parseFlexFloat(string(v))
	default:
		return parseFlexFloat(fmt.Sprintf("%v", v))
	}
}

func parseFlexFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ToString converts various types to string. Nil and absent map values
// yield the empty string, never the literal "<nil>".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
