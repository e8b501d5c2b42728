package main

import (
	"fmt"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every shoe",
	Long: `Remove every shoe from the inventory, leaving only the header row.

This cannot be undone, so --yes is required.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "confirm clearing the inventory")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return &cli.ConfirmationError{
			Action: "clear the inventory",
			Hint:   "Use --yes to confirm.",
		}
	}

	m, err := openInventory()
	if err != nil {
		return err
	}

	n := m.Len()
	if err := m.ClearInventory(); err != nil {
		return err
	}

	fmt.Printf("Inventory cleared (%s removed).\n", pluralShoes(n))
	return nil
}
