package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/ops"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory",
	Long: `Export the inventory as csv, yaml or xlsx.

Without --output the export is written to stdout. With --output and no
--format, the format is taken from the file extension.

Examples:
  kicks export --format yaml
  kicks export -o shoes.xlsx`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "csv, yaml or xlsx (default csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range ops.Formats {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(exportCmd)
}

func resolveExportFormat(format, output string) (ops.Format, error) {
	if format == "" && output != "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
			format = ext
		}
	}
	if format == "" {
		return ops.FormatCSV, nil
	}
	return ops.ParseFormat(format)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := resolveExportFormat(exportFormat, exportOutput)
	if err != nil {
		return err
	}
	if format == ops.FormatXLSX && exportOutput == "" && cli.IsTerminal(os.Stdout) {
		return fmt.Errorf("refusing to write a spreadsheet to the terminal; use --output")
	}

	m, err := openInventory()
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return ops.Export(os.Stdout, m.ListAll(), format)
	}
	if err := exportFile(exportOutput, m.ListAll(), format); err != nil {
		return err
	}
	fmt.Printf("Exported %s to %s\n", pluralShoes(m.Len()), exportOutput)
	return nil
}

// exportFile writes shoes to path. On failure the partial file is removed.
func exportFile(path string, shoes []model.Shoe, format ops.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := ops.Export(f, shoes, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
