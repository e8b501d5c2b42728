package main

import (
	"os"
	"slices"
	"strings"

	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for kicks.

To load completions:

Bash:
  $ source <(kicks completion bash)

Zsh:
  $ kicks completion zsh > "${fpath[1]}/_kicks"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ kicks completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeShoeFields completes each positional field (brand, model, size,
// color) from the values already in the inventory.
func completeShoeFields(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= len(model.Fields) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return fieldValues(len(args), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeFieldValues returns a flag completion function for one field.
func completeFieldValues(field int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return fieldValues(field, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// fieldValues returns the distinct values of one column that start with
// toComplete, case-insensitively, in inventory order. The inventory is read
// without creating it.
func fieldValues(field int, toComplete string) []string {
	path, err := inventoryPath()
	if err != nil {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	shoes, err := storage.Parse(f)
	if err != nil {
		return nil
	}

	var values []string
	prefix := strings.ToLower(toComplete)
	for _, s := range shoes {
		v := s.Row()[field]
		if strings.HasPrefix(strings.ToLower(v), prefix) && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	return values
}
