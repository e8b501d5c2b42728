package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/model"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search shoes",
	Long: `Search shoes by any combination of fields.

--brand, --model and --color match case-insensitive substrings.
--size matches the size exactly. Omitted flags match everything, so
"kicks find" with no flags lists the whole inventory.

Results keep inventory order and are numbered by their position in
"kicks list", so a number shown here can be passed to "kicks rm".

Examples:
  kicks find --brand ni
  kicks find --brand ni --size 10
  kicks find --color white`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

var (
	findBrand string
	findModel string
	findColor string
	findSize  string
)

func init() {
	findCmd.Flags().StringVarP(&findBrand, "brand", "b", "", "brand contains")
	findCmd.Flags().StringVarP(&findModel, "model", "m", "", "model contains")
	findCmd.Flags().StringVarP(&findColor, "color", "c", "", "color contains")
	findCmd.Flags().StringVarP(&findSize, "size", "s", "", "size equals")

	findCmd.RegisterFlagCompletionFunc("brand", completeFieldValues(0))
	findCmd.RegisterFlagCompletionFunc("model", completeFieldValues(1))
	findCmd.RegisterFlagCompletionFunc("size", completeFieldValues(2))
	findCmd.RegisterFlagCompletionFunc("color", completeFieldValues(3))
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	filter, err := parseFilter(findBrand, findModel, findColor, findSize)
	if err != nil {
		return err
	}

	if filter.IsEmpty() {
		return runList(cmd, args)
	}

	m, err := openInventory()
	if err != nil {
		return err
	}

	all := m.ListAll()
	positions := m.SearchPositions(filter)
	if len(positions) == 0 {
		fmt.Println("No shoes match.")
		return nil
	}

	results := make([]model.Shoe, len(positions))
	numbers := make([]int, len(positions))
	for i, p := range positions {
		results[i] = all[p]
		numbers[i] = p + 1
	}

	cli.RenderShoesNumbered(os.Stdout, results, numbers)
	fmt.Println(cli.Gray(fmt.Sprintf("%s of %d", pluralShoes(len(results)), len(all))))
	return nil
}
