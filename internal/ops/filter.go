package ops

import (
	"strings"

	"github.com/jacksmith/kicks/internal/model"
)

// Filter specifies search criteria. Empty fields place no constraint.
type Filter struct {
	Brand string   // case-insensitive substring
	Model string   // case-insensitive substring
	Color string   // case-insensitive substring
	Size  *float64 // exact match; nil = any size
}

// SizeFilter returns a pointer for Filter.Size.
func SizeFilter(size float64) *float64 {
	return &size
}

// IsEmpty reports whether f matches every record.
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Brand) == "" &&
		strings.TrimSpace(f.Model) == "" &&
		strings.TrimSpace(f.Color) == "" &&
		f.Size == nil
}

// Match reports whether s satisfies every constraint in f.
func (f Filter) Match(s model.Shoe) bool {
	if !containsFold(s.Brand, f.Brand) {
		return false
	}
	if !containsFold(s.Model, f.Model) {
		return false
	}
	if !containsFold(s.Color, f.Color) {
		return false
	}
	if f.Size != nil && s.Size != *f.Size {
		return false
	}
	return true
}

// containsFold reports whether query, trimmed, is a case-insensitive
// substring of value. An empty query matches anything.
func containsFold(value, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}
