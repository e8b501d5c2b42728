package main

import (
	"fmt"

	"github.com/jacksmith/kicks/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the inventory file",
	Long: `Create the inventory file holding only the header row.

Parent directories are created as needed. An existing file is left
untouched, so running init twice is harmless.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := inventoryPath()
	if err != nil {
		return err
	}

	s, err := storage.Init(path)
	if err != nil {
		return err
	}

	shoes, err := s.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Inventory file %s ready (%s)\n", s.Path(), pluralShoes(len(shoes)))
	return nil
}
