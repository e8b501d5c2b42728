package main

import (
	"fmt"
	"strconv"

	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/ops"
)

// shoeArgs accepts either a list position ("3") or the four fields
// (brand, model, size, color).
func shoeArgs(args []string) error {
	if len(args) != 1 && len(args) != len(model.Fields) {
		return fmt.Errorf("expected a list number or <brand> <model> <size> <color>, got %d argument(s)", len(args))
	}
	return nil
}

// resolveShoe turns shoeArgs into a record. A single argument is either a
// 1-based position in shown, the shoes last displayed to the user, or a
// shoe's display text.
func resolveShoe(shown []model.Shoe, args []string) (model.Shoe, error) {
	if len(args) == len(model.Fields) {
		return model.NewShoe(args[0], args[1], args[2], args[3])
	}
	if len(args) != 1 {
		return model.Shoe{}, shoeArgs(args)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		if shoe, derr := model.ParseDisplay(args[0]); derr == nil {
			return shoe, nil
		}
		return model.Shoe{}, fmt.Errorf("invalid list number %q", args[0])
	}
	if n < 1 || n > len(shown) {
		return model.Shoe{}, fmt.Errorf("no shoe number %d (%s listed)", n, pluralShoes(len(shown)))
	}
	return shown[n-1], nil
}

// parseFilter builds a search filter from user-entered text. An empty size
// places no constraint on size.
func parseFilter(brand, modelName, color, size string) (ops.Filter, error) {
	f := ops.Filter{Brand: brand, Model: modelName, Color: color}
	if size != "" {
		parsed, err := model.ParseSize(size)
		if err != nil {
			return ops.Filter{}, err
		}
		f.Size = ops.SizeFilter(parsed)
	}
	return f, nil
}

func pluralShoes(n int) string {
	if n == 1 {
		return "1 shoe"
	}
	return fmt.Sprintf("%d shoes", n)
}
