package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all shoes",
	Long: `List every shoe in insertion order.

The number in the first column can be passed to "kicks rm".`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := openInventory()
	if err != nil {
		return err
	}

	shoes := m.ListAll()
	if len(shoes) == 0 {
		fmt.Println("Inventory is empty.")
		return nil
	}

	cli.RenderShoes(os.Stdout, shoes)
	fmt.Println(cli.Gray(pluralShoes(len(shoes))))
	return nil
}
