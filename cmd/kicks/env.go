package main

import (
	"os"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/ops"
	"github.com/jacksmith/kicks/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is replaced by setup when --verbose is given.
var logger = zap.NewNop()

// setup runs before every command: it applies the color mode and builds
// the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}

	if rootNoColor {
		cli.SetColorEnabled(false)
	} else if err := cli.ApplyColorMode(cfg.Color, os.Stdout); err != nil {
		return err
	}

	if rootVerbose {
		l, err := newVerboseLogger()
		if err != nil {
			return err
		}
		logger = l
	}
	return nil
}

func newVerboseLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}

// inventoryPath returns the --file flag if set, otherwise the configured
// inventory file.
func inventoryPath() (string, error) {
	if rootFile != "" {
		return rootFile, nil
	}
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return "", err
	}
	return cfg.InventoryPath("."), nil
}

// openInventory returns a loaded manager for the inventory file.
func openInventory() (*ops.Manager, error) {
	path, err := inventoryPath()
	if err != nil {
		return nil, err
	}
	return ops.Open(storage.New(path), ops.WithLogger(logger.With(zap.String("file", path))))
}
