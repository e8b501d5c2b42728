// Package main is the entry point for the kicks CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kicks",
	Short: "kicks - a footwear inventory tracker",
	Long: `kicks keeps a small inventory of shoes in a CSV file.

Each shoe has a brand, model, size and color. Sizes may be fractional
(9.5). The file is rewritten on every change and can be edited by hand:
the first line must be "brand,model,size,color".

The inventory file defaults to inventory.csv in the current directory and
can be set with inventory_file in .kicksconfig.yaml or with --file.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootFile    string
	rootVerbose bool
	rootNoColor bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "inventory file (overrides inventory_file in .kicksconfig.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "log inventory changes to stderr")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("kicks version {{.Version}}\n")
}
