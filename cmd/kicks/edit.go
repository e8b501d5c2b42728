package main

import (
	"bytes"
	"fmt"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/storage"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the inventory in $EDITOR",
	Long: `Open the inventory as CSV in $VISUAL or $EDITOR.

When the editor exits the content is checked row by row. If any row is
invalid nothing is saved and the error names the offending line.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	m, err := openInventory()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := storage.Write(&buf, m.ListAll()); err != nil {
		return err
	}
	original := buf.Bytes()

	edited, err := cli.EditInEditor(original, ".csv")
	if err != nil {
		return err
	}
	if bytes.Equal(edited, original) {
		fmt.Println("No changes.")
		return nil
	}

	shoes, err := storage.Parse(bytes.NewReader(edited))
	if err != nil {
		return fmt.Errorf("edit not saved: %w", err)
	}
	if err := m.Replace(shoes); err != nil {
		return err
	}

	fmt.Printf("Inventory saved (%s).\n", pluralShoes(len(shoes)))
	return nil
}
