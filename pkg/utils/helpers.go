package utils

import (
	"path/filepath"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// CleanHeader strips a leading UTF-8 BOM from a CSV header cell. Column
// names are otherwise matched exactly.
func CleanHeader(h string) string {
	return strings.TrimPrefix(h, utf8BOM)
}

// ParseFloat parses a decimal numeric CSV cell, tolerating surrounding
// whitespace. Hex float literals are rejected.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

// DisplayName returns the base name of an uploaded file, or fallback when empty
func DisplayName(filename, fallback string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == "/" || name == "" {
		return fallback
	}
	return name
}
