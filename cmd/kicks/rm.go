package main

import (
	"fmt"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <number> | rm <brand> <model> <size> <color>",
	Aliases: []string{"remove"},
	Short:   "Remove a shoe",
	Long: `Remove one shoe from the inventory.

The shoe is given by its number in "kicks list", by all four fields, or
by its display text as printed by add and rm. When identical shoes exist
only the first one is removed.

Examples:
  kicks rm 3
  kicks rm Nike "Air Max 90" 10 Black`,
	Args:              func(cmd *cobra.Command, args []string) error { return shoeArgs(args) },
	RunE:              runRm,
	ValidArgsFunction: completeShoeFields,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	m, err := openInventory()
	if err != nil {
		return err
	}

	shoe, err := resolveShoe(m.ListAll(), args)
	if err != nil {
		return err
	}

	removed, err := m.RemoveShoe(shoe)
	if err != nil {
		return err
	}
	if !removed {
		return &cli.NotFoundError{Shoe: shoe}
	}

	fmt.Printf("Removed %s\n", cli.Red(shoe.String()))
	return nil
}
