package ops

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/storage"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatCSV, FormatYAML, FormatXLSX}

// xlsxSheet is the worksheet name used for spreadsheet exports.
const xlsxSheet = "Inventory"

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// as an alias for yaml.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected csv, yaml or xlsx)", name)
}

// Export writes shoes to w in the given format.
func Export(w io.Writer, shoes []model.Shoe, format Format) error {
	switch format {
	case FormatCSV:
		return storage.Write(w, shoes)
	case FormatYAML:
		return exportYAML(w, shoes)
	case FormatXLSX:
		return exportXLSX(w, shoes)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type yamlInventory struct {
	Shoes []model.Shoe `yaml:"shoes"`
}

func exportYAML(w io.Writer, shoes []model.Shoe) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlInventory{Shoes: shoes}); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func exportXLSX(w io.Writer, shoes []model.Shoe) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Brand", "Model", "Size", "Color"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, s := range shoes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Brand, s.Model, s.Size, s.Color}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(xlsxSheet, "A", "D", 18); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
