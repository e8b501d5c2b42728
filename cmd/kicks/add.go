package main

import (
	"fmt"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <brand> <model> <size> <color>",
	Short: "Add a shoe",
	Long: `Add a shoe to the end of the inventory.

All four fields are required. Size must be a positive number and may be
fractional. Identical shoes may be added more than once.

Examples:
  kicks add Nike "Air Max 90" 10 Black
  kicks add "New Balance" 990v6 9.5 Grey`,
	Args:              cobra.ExactArgs(len(model.Fields)),
	RunE:              runAdd,
	ValidArgsFunction: completeShoeFields,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	shoe, err := model.NewShoe(args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}

	m, err := openInventory()
	if err != nil {
		return err
	}

	if err := m.AddShoe(shoe); err != nil {
		return err
	}

	fmt.Printf("Added %s\n", cli.Green(shoe.String()))
	return nil
}
