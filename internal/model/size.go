package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseSize parses a shoe size such as "10" or "9.5".
// Only decimal notation is accepted. Surrounding whitespace is ignored. The result is finite and positive.
func ParseSize(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &ValidationError{Field: FieldSize, Message: "is required"}
	}
	size, err := strconv.ParseFloat(text, 64)
	if err != nil || !isDecimal(text) {
		return 0, &ValidationError{Field: FieldSize, Message: strconv.Quote(text) + " is not a number"}
	}
	if err := ValidateSize(size); err != nil {
		return 0, err
	}
	return size, nil
}

// isDecimal reports whether text is written in plain decimal notation,
// optionally with an exponent. Hex floats and digit separators are not.
func isDecimal(text string) bool {
	return !strings.ContainsFunc(text, func(r rune) bool {
		return (r < '0' || r > '9') && !strings.ContainsRune("+-.eE", r)
	})
}

// ValidateSize checks that size is finite and greater than zero.
func ValidateSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return &ValidationError{Field: FieldSize, Message: "must be a finite number"}
	}
	if size <= 0 {
		return &ValidationError{Field: FieldSize, Message: "must be greater than 0"}
	}
	return nil
}

// FormatSize formats whole sizes without a fractional part (10, not 10.0)
// and other sizes in their shortest decimal form (9.5).
// ParseSize(FormatSize(x)) == x for every finite x.
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
