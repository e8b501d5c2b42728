package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/ops"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage the inventory interactively",
	Long: `Read inventory commands from stdin, one per line, against a single
loaded inventory. Commands may be abbreviated to any unique prefix.

  add <brand> <model> <size> <color>
  rm <number> | rm <brand> <model> <size> <color>
  list
  find [brand=..] [model=..] [color=..] [size=..]
  clear
  help
  quit

A number given to rm refers to the last list or find output. After a
change, numbers refer to the whole inventory until the next list or find.

Quote fields containing spaces: add "New Balance" 990v6 11.5 Grey`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var shellCommands = []string{"add", "rm", "list", "find", "clear", "help", "quit", "exit"}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	m, err := openInventory()
	if err != nil {
		return err
	}
	s := newShellSession(m, os.Stdin, os.Stdout, cli.IsTerminal(os.Stdin))
	return s.run()
}

type shellSession struct {
	m      *ops.Manager
	in     *bufio.Scanner
	out    io.Writer
	prompt bool

	// shown is the output of the last list or find; nil after a change.
	shown []model.Shoe
}

func newShellSession(m *ops.Manager, in io.Reader, out io.Writer, prompt bool) *shellSession {
	return &shellSession{
		m:      m,
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: prompt,
	}
}

// run executes commands until quit or end of input. Command errors are
// printed and do not end the session. An unloaded manager is loaded first.
func (s *shellSession) run() error {
	if !s.m.Loaded() {
		if err := s.m.Load(); err != nil {
			return err
		}
	}

	for {
		line, ok := s.readLine("kicks> ")
		if !ok {
			return s.in.Err()
		}

		words, err := cli.SplitArgs(line)
		if err != nil {
			fmt.Fprintln(s.out, cli.FormatError(err))
			continue
		}
		if len(words) == 0 {
			continue
		}

		name, err := cli.MatchCommand(words[0], shellCommands)
		if err != nil {
			fmt.Fprintln(s.out, cli.FormatError(err))
			continue
		}
		if name == "quit" || name == "exit" {
			return nil
		}

		if err := s.exec(name, words[1:]); err != nil {
			fmt.Fprintln(s.out, cli.FormatError(err))
		}
	}
}

func (s *shellSession) readLine(prompt string) (string, bool) {
	if s.prompt {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *shellSession) exec(name string, args []string) error {
	switch name {
	case "add":
		if len(args) != len(model.Fields) {
			return fmt.Errorf("usage: add <brand> <model> <size> <color>")
		}
		shoe, err := model.NewShoe(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		if err := s.m.AddShoe(shoe); err != nil {
			return err
		}
		s.shown = nil
		fmt.Fprintf(s.out, "Added %s\n", cli.Green(shoe.String()))

	case "rm":
		if err := shoeArgs(args); err != nil {
			return err
		}
		shoe, err := resolveShoe(s.numbered(), args)
		if err != nil {
			return err
		}
		removed, err := s.m.RemoveShoe(shoe)
		if err != nil {
			return err
		}
		if !removed {
			return &cli.NotFoundError{Shoe: shoe}
		}
		s.shown = nil
		fmt.Fprintf(s.out, "Removed %s\n", cli.Red(shoe.String()))

	case "list":
		s.render(s.m.ListAll(), "Inventory is empty.")

	case "find":
		filter, err := parseShellFilter(args)
		if err != nil {
			return err
		}
		s.render(s.m.Search(filter), "No shoes match.")

	case "clear":
		answer, ok := s.readLine("Clear ALL inventory? This cannot be undone. [y/N] ")
		if !ok || !isYes(answer) {
			fmt.Fprintln(s.out, cli.Yellow("Not cleared."))
			return nil
		}
		if err := s.m.ClearInventory(); err != nil {
			return err
		}
		s.shown = nil
		fmt.Fprintln(s.out, "Inventory cleared.")

	case "help":
		fmt.Fprintln(s.out, "commands: "+strings.Join(shellCommands, ", "))
	}
	return nil
}

// numbered returns the shoes that rm numbers refer to.
func (s *shellSession) numbered() []model.Shoe {
	if s.shown == nil {
		return s.m.ListAll()
	}
	return s.shown
}

func (s *shellSession) render(shoes []model.Shoe, empty string) {
	s.shown = shoes
	if len(shoes) == 0 {
		fmt.Fprintln(s.out, empty)
		return
	}
	cli.RenderShoes(s.out, shoes)
}

// parseShellFilter parses key=value search terms. Keys may be abbreviated,
// e.g. "b=ni s=10".
func parseShellFilter(args []string) (ops.Filter, error) {
	values := map[string]string{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return ops.Filter{}, fmt.Errorf("expected field=value, got %q", arg)
		}
		field, err := cli.MatchCommand(key, model.Fields)
		if err != nil {
			return ops.Filter{}, fmt.Errorf("unknown field %q", key)
		}
		values[field] = value
	}
	return parseFilter(values[model.FieldBrand], values[model.FieldModel], values[model.FieldColor], strings.TrimSpace(values[model.FieldSize]))
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
