// Package model defines the core data structures for kicks.
package model

import (
	"fmt"
	"strings"
)

// Field names, in on-disk column order.
const (
	FieldBrand = "brand"
	FieldModel = "model"
	FieldSize  = "size"
	FieldColor = "color"
)

// Fields lists the record columns in on-disk order.
var Fields = []string{FieldBrand, FieldModel, FieldSize, FieldColor}

// Shoe is one footwear inventory entry.
// Two shoes are the same entry when all four fields are equal, so Shoe is
// compared with == and has no other identity.
type Shoe struct {
	Brand string  `yaml:"brand"`
	Model string  `yaml:"model"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

// ValidationError indicates a record field failed validation.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewShoe builds a Shoe from user-entered text, trimming every field.
// Returns a *ValidationError naming the first field that is empty or,
// for size, not a positive number.
func NewShoe(brand, model, size, color string) (Shoe, error) {
	s := Shoe{
		Brand: strings.TrimSpace(brand),
		Model: strings.TrimSpace(model),
		Color: strings.TrimSpace(color),
	}
	if err := requireText(FieldBrand, s.Brand); err != nil {
		return Shoe{}, err
	}
	if err := requireText(FieldModel, s.Model); err != nil {
		return Shoe{}, err
	}
	parsed, err := ParseSize(size)
	if err != nil {
		return Shoe{}, err
	}
	s.Size = parsed
	if err := requireText(FieldColor, s.Color); err != nil {
		return Shoe{}, err
	}
	return s, nil
}

// Validate checks that all text fields are non-empty after trimming and
// that size is a finite positive number.
func (s Shoe) Validate() error {
	if err := requireText(FieldBrand, s.Brand); err != nil {
		return err
	}
	if err := requireText(FieldModel, s.Model); err != nil {
		return err
	}
	if err := ValidateSize(s.Size); err != nil {
		return err
	}
	return requireText(FieldColor, s.Color)
}

// Normalize returns s with surrounding whitespace trimmed from the text
// fields.
func (s Shoe) Normalize() Shoe {
	s.Brand = strings.TrimSpace(s.Brand)
	s.Model = strings.TrimSpace(s.Model)
	s.Color = strings.TrimSpace(s.Color)
	return s
}

// Row returns the record as on-disk column values.
func (s Shoe) Row() []string {
	return []string{s.Brand, s.Model, FormatSize(s.Size), s.Color}
}

// String returns the display text used in list views, e.g.
// "Brand: Nike | Model: Air | Size: 9.5 | Color: Black".
func (s Shoe) String() string {
	return fmt.Sprintf("Brand: %s | Model: %s | Size: %s | Color: %s",
		s.Brand, s.Model, FormatSize(s.Size), s.Color)
}

// ParseDisplay parses the text produced by Shoe.String back into a Shoe.
func ParseDisplay(text string) (Shoe, error) {
	parts := strings.Split(text, "|")
	if len(parts) != len(Fields) {
		return Shoe{}, fmt.Errorf("could not parse shoe from %q", text)
	}
	values := make([]string, len(parts))
	for i, part := range parts {
		_, value, ok := strings.Cut(part, ":")
		if !ok {
			return Shoe{}, fmt.Errorf("could not parse shoe from %q", text)
		}
		values[i] = value
	}
	s, err := NewShoe(values[0], values[1], values[2], values[3])
	if err != nil {
		return Shoe{}, fmt.Errorf("could not parse shoe from %q: %w", text, err)
	}
	return s, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
