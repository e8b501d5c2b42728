package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/kicks/internal/cli"
	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/ops"
	"github.com/jacksmith/kicks/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleInventory = "brand,model,size,color\n" +
	"Nike,Air,10,Black\n" +
	"Nike,Air,10.5,White\n" +
	"Adidas,Samba,9.5,White\n"

// setupTestInventory changes to a temp directory holding inventory.csv
// with the given content and resets all command flags.
func setupTestInventory(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(origDir) })

	if content != "" {
		err := os.WriteFile(filepath.Join(tmpDir, storage.DefaultInventoryFile), []byte(content), 0644)
		require.NoError(t, err)
	}

	rootFile = ""
	clearYes = false
	findBrand, findModel, findColor, findSize = "", "", "", ""
	exportFormat, exportOutput = "", ""
	cli.SetColorEnabled(false)

	return tmpDir
}

// captureStdout runs fn with os.Stdout redirected and returns what it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func readInventory(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(storage.DefaultInventoryFile)
	require.NoError(t, err)
	return string(data)
}

func TestInitCommand(t *testing.T) {
	t.Run("creates header-only file", func(t *testing.T) {
		setupTestInventory(t, "")

		output, err := captureStdout(t, func() error { return runInit(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "ready (0 shoes)")
		assert.Equal(t, "brand,model,size,color\n", readInventory(t))
	})

	t.Run("keeps existing data", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		output, err := captureStdout(t, func() error { return runInit(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "3 shoes")
		assert.Equal(t, sampleInventory, readInventory(t))
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("appends a shoe", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		output, err := captureStdout(t, func() error {
			return runAdd(nil, []string{"New Balance", "990v6", "11.0", "Grey"})
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Added Brand: New Balance | Model: 990v6 | Size: 11 | Color: Grey")
		assert.Equal(t, sampleInventory+"New Balance,990v6,11,Grey\n", readInventory(t))
	})

	t.Run("creates the file when missing", func(t *testing.T) {
		setupTestInventory(t, "")

		_, err := captureStdout(t, func() error {
			return runAdd(nil, []string{"Nike", "Air", "10", "Black"})
		})
		require.NoError(t, err)
		assert.Equal(t, "brand,model,size,color\nNike,Air,10,Black\n", readInventory(t))
	})

	t.Run("invalid size is rejected", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		_, err := captureStdout(t, func() error {
			return runAdd(nil, []string{"Nike", "Air", "-1", "Black"})
		})
		var verr *model.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, model.FieldSize, verr.Field)
		assert.Equal(t, sampleInventory, readInventory(t))
	})
}

func TestRmCommand(t *testing.T) {
	t.Run("by fields", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		output, err := captureStdout(t, func() error {
			return runRm(nil, []string{"Nike", "Air", "10.5", "White"})
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Removed")
		assert.Equal(t, "brand,model,size,color\nNike,Air,10,Black\nAdidas,Samba,9.5,White\n", readInventory(t))
	})

	t.Run("by list number", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		_, err := captureStdout(t, func() error { return runRm(nil, []string{"3"}) })
		require.NoError(t, err)
		assert.Equal(t, "brand,model,size,color\nNike,Air,10,Black\nNike,Air,10.5,White\n", readInventory(t))
	})

	t.Run("first duplicate only", func(t *testing.T) {
		setupTestInventory(t, "brand,model,size,color\nNike,Air,10,Black\nPuma,Suede,8,Red\nNike,Air,10,Black\n")

		_, err := captureStdout(t, func() error {
			return runRm(nil, []string{"Nike", "Air", "10", "Black"})
		})
		require.NoError(t, err)
		assert.Equal(t, "brand,model,size,color\nPuma,Suede,8,Red\nNike,Air,10,Black\n", readInventory(t))
	})

	t.Run("missing shoe is not found", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		_, err := captureStdout(t, func() error {
			return runRm(nil, []string{"Puma", "Suede", "8", "Red"})
		})
		var nf *cli.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, sampleInventory, readInventory(t))
	})

	t.Run("by display text", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		_, err := captureStdout(t, func() error {
			return runRm(nil, []string{"Brand: Adidas | Model: Samba | Size: 9.5 | Color: White"})
		})
		require.NoError(t, err)
		assert.Equal(t, "brand,model,size,color\nNike,Air,10,Black\nNike,Air,10.5,White\n", readInventory(t))
	})

	t.Run("out of range number", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		_, err := captureStdout(t, func() error { return runRm(nil, []string{"9"}) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no shoe number 9")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		assert.Error(t, rmCmd.Args(rmCmd, []string{"Nike", "Air"}))
		assert.NoError(t, rmCmd.Args(rmCmd, []string{"2"}))
		assert.NoError(t, rmCmd.Args(rmCmd, []string{"Nike", "Air", "10", "Black"}))
	})
}

func TestClearCommand(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		_, err := captureStdout(t, func() error { return runClear(nil, nil) })
		var cerr *cli.ConfirmationError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, sampleInventory, readInventory(t))
	})

	t.Run("clears with --yes", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)
		clearYes = true

		output, err := captureStdout(t, func() error { return runClear(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "3 shoes removed")
		assert.Equal(t, "brand,model,size,color\n", readInventory(t))
	})
}

func TestListCommand(t *testing.T) {
	t.Run("lists in order", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		output, err := captureStdout(t, func() error { return runList(nil, nil) })
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(output), "\n")
		require.Len(t, lines, 5)
		assert.Contains(t, lines[0], "BRAND")
		assert.Contains(t, lines[1], "10 ")
		assert.Contains(t, lines[2], "10.5")
		assert.Contains(t, lines[3], "Samba")
		assert.Equal(t, "3 shoes", lines[4])
	})

	t.Run("empty inventory", func(t *testing.T) {
		setupTestInventory(t, "brand,model,size,color\n")

		output, err := captureStdout(t, func() error { return runList(nil, nil) })
		require.NoError(t, err)
		assert.Equal(t, "Inventory is empty.\n", output)
	})

	t.Run("malformed inventory fails", func(t *testing.T) {
		setupTestInventory(t, "brand,model,size,color\nNike,Air,10,\n")

		_, err := captureStdout(t, func() error { return runList(nil, nil) })
		var merr *storage.MalformedRecordError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, 2, merr.Line)
	})
}

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name     string
		flags    func()
		contains []string
		excludes []string
	}{
		{
			name:     "no flags lists everything",
			flags:    func() {},
			contains: []string{"Black", "10.5", "Samba", "3 shoes"},
			excludes: []string{" of "},
		},
		{
			name:     "results are numbered by inventory position",
			flags:    func() { findBrand = "adidas" },
			contains: []string{"3  Adidas", "1 shoe of 3"},
			excludes: []string{"1  Adidas"},
		},
		{
			name:     "brand and size",
			flags:    func() { findBrand = "ni"; findSize = "10" },
			contains: []string{"Black", "1 shoe of 3"},
			excludes: []string{"10.5", "Samba"},
		},
		{
			name:     "color is case-insensitive",
			flags:    func() { findColor = "WHITE" },
			contains: []string{"10.5", "Samba"},
			excludes: []string{"Black"},
		},
		{
			name:     "no match",
			flags:    func() { findModel = "jordan" },
			contains: []string{"No shoes match."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestInventory(t, sampleInventory)
			tt.flags()

			output, err := captureStdout(t, func() error { return runFind(nil, nil) })
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s, "expected output to contain %q", s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s, "expected output to not contain %q", s)
			}
		})
	}

	t.Run("invalid size", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)
		findSize = "huge"

		_, err := captureStdout(t, func() error { return runFind(nil, nil) })
		var verr *model.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("csv to stdout by default", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)

		output, err := captureStdout(t, func() error { return runExport(nil, nil) })
		require.NoError(t, err)
		assert.Equal(t, sampleInventory, output)
	})

	t.Run("format from output extension", func(t *testing.T) {
		dir := setupTestInventory(t, sampleInventory)
		exportOutput = filepath.Join(dir, "shoes.yml")

		output, err := captureStdout(t, func() error { return runExport(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Exported 3 shoes")

		data, err := os.ReadFile(exportOutput)
		require.NoError(t, err)
		var doc struct {
			Shoes []model.Shoe `yaml:"shoes"`
		}
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Len(t, doc.Shoes, 3)
		assert.Equal(t, 9.5, doc.Shoes[2].Size)
	})

	t.Run("unknown format", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)
		exportFormat = "pdf"

		_, err := captureStdout(t, func() error { return runExport(nil, nil) })
		assert.Error(t, err)
	})

	t.Run("failed export leaves no file", func(t *testing.T) {
		dir := setupTestInventory(t, sampleInventory)
		path := filepath.Join(dir, "shoes.pdf")

		err := exportFile(path, []model.Shoe{{Brand: "Nike", Model: "Air", Size: 10, Color: "Black"}}, ops.Format("pdf"))
		require.Error(t, err)
		assert.NoFileExists(t, path)
	})

	t.Run("export file overwrites previous content", func(t *testing.T) {
		dir := setupTestInventory(t, sampleInventory)
		path := filepath.Join(dir, "shoes.csv")
		require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n"+sampleInventory), 0644))

		require.NoError(t, exportFile(path, []model.Shoe{{Brand: "Nike", Model: "Air", Size: 10, Color: "Black"}}, ops.FormatCSV))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "brand,model,size,color\nNike,Air,10,Black\n", string(data))
	})

	t.Run("resolve format", func(t *testing.T) {
		f, err := resolveExportFormat("", "")
		require.NoError(t, err)
		assert.Equal(t, ops.FormatCSV, f)

		f, err = resolveExportFormat("", "out/report.XLSX")
		require.NoError(t, err)
		assert.Equal(t, ops.FormatXLSX, f)

		f, err = resolveExportFormat("yaml", "report.csv")
		require.NoError(t, err)
		assert.Equal(t, ops.FormatYAML, f)
	})
}

func writeEditorScript(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "content.csv")
	require.NoError(t, os.WriteFile(src, []byte(content), 0644))
	script := filepath.Join(dir, "editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ncp '"+src+"' \"$1\"\n"), 0755))
	return script
}

func TestEditCommand(t *testing.T) {
	t.Run("saves edited inventory", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)
		t.Setenv("VISUAL", writeEditorScript(t, "brand,model,size,color\nPuma,Suede,8.0,Red\n"))

		output, err := captureStdout(t, func() error { return runEdit(nil, nil) })
		require.NoError(t, err)
		assert.Contains(t, output, "Inventory saved (1 shoe)")
		assert.Equal(t, "brand,model,size,color\nPuma,Suede,8,Red\n", readInventory(t))
	})

	t.Run("invalid edit is not saved", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)
		t.Setenv("VISUAL", writeEditorScript(t, "brand,model,size,color\nPuma,Suede,8,Red\nPuma,,9,Blue\n"))

		_, err := captureStdout(t, func() error { return runEdit(nil, nil) })
		var merr *storage.MalformedRecordError
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, 3, merr.Line)
		assert.Equal(t, sampleInventory, readInventory(t))
	})

	t.Run("unchanged content", func(t *testing.T) {
		setupTestInventory(t, sampleInventory)
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "true")

		output, err := captureStdout(t, func() error { return runEdit(nil, nil) })
		require.NoError(t, err)
		assert.Equal(t, "No changes.\n", output)
	})
}

func TestShellSession(t *testing.T) {
	setupTestInventory(t, sampleInventory)
	m, err := openInventory()
	require.NoError(t, err)

	script := strings.Join([]string{
		`add "New Balance" 990v6 11.5 Grey`,
		`f b=ni s=10`,
		`rm 1`,
		`rm Puma Suede 8 Red`,
		`bogus`,
		`add Nike Air`,
		`clear`,
		`no`,
		`li`,
		`q`,
		`add never reached 1 x`,
	}, "\n")

	var out bytes.Buffer
	s := newShellSession(m, strings.NewReader(script), &out, false)
	require.NoError(t, s.run())

	output := out.String()
	assert.Contains(t, output, "Added Brand: New Balance | Model: 990v6 | Size: 11.5 | Color: Grey")
	assert.Contains(t, output, "Removed Brand: Nike | Model: Air | Size: 10 | Color: Black")
	assert.Contains(t, output, "error: shoe not found")
	assert.Contains(t, output, `error: unknown command "bogus"`)
	assert.Contains(t, output, "error: usage: add")
	assert.Contains(t, output, "Not cleared.")
	assert.NotContains(t, output, "never")

	expected := "brand,model,size,color\n" +
		"Nike,Air,10.5,White\n" +
		"Adidas,Samba,9.5,White\n" +
		"New Balance,990v6,11.5,Grey\n"
	assert.Equal(t, expected, readInventory(t))
}

func TestShellRemoveByNumberUsesLastOutput(t *testing.T) {
	const inventory = "brand,model,size,color\n" +
		"Adidas,Samba,9.5,White\n" +
		"Nike,Air,10,Black\n" +
		"Nike,Air,10.5,White\n"

	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "after find",
			script: "find b=nike\nrm 1\n",
			want:   "brand,model,size,color\nAdidas,Samba,9.5,White\nNike,Air,10.5,White\n",
		},
		{
			name:   "after list",
			script: "list\nrm 1\n",
			want:   "brand,model,size,color\nNike,Air,10,Black\nNike,Air,10.5,White\n",
		},
		{
			name:   "after a change numbers refer to the whole inventory",
			script: "find c=white\nrm 2\nrm 1\n",
			want:   "brand,model,size,color\nNike,Air,10,Black\n",
		},
		{
			name:   "before any output",
			script: "rm 2\n",
			want:   "brand,model,size,color\nAdidas,Samba,9.5,White\nNike,Air,10.5,White\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestInventory(t, inventory)
			m, err := openInventory()
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, newShellSession(m, strings.NewReader(tt.script), &out, false).run())
			assert.NotContains(t, out.String(), "error:")
			assert.Equal(t, tt.want, readInventory(t))
		})
	}

	t.Run("number beyond an empty find", func(t *testing.T) {
		setupTestInventory(t, inventory)
		m, err := openInventory()
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, newShellSession(m, strings.NewReader("find b=puma\nrm 1\n"), &out, false).run())
		assert.Contains(t, out.String(), "No shoes match.")
		assert.Contains(t, out.String(), "error: no shoe number 1 (0 shoes listed)")
		assert.Equal(t, inventory, readInventory(t))
	})
}

func TestShellLoadsUnloadedManager(t *testing.T) {
	setupTestInventory(t, sampleInventory)
	m := ops.NewManager(storage.New(storage.DefaultInventoryFile))
	require.False(t, m.Loaded())

	var out bytes.Buffer
	require.NoError(t, newShellSession(m, strings.NewReader("rm 3\n"), &out, false).run())
	assert.True(t, m.Loaded())
	assert.Contains(t, out.String(), "Removed Brand: Adidas")
	assert.Equal(t, 2, m.Len())
}

func TestShellClearConfirmed(t *testing.T) {
	setupTestInventory(t, sampleInventory)
	m, err := openInventory()
	require.NoError(t, err)

	var out bytes.Buffer
	s := newShellSession(m, strings.NewReader("clear\ny\n"), &out, false)
	require.NoError(t, s.run())

	assert.Contains(t, out.String(), "Inventory cleared.")
	assert.Equal(t, "brand,model,size,color\n", readInventory(t))
}

func TestParseShellFilter(t *testing.T) {
	f, err := parseShellFilter([]string{"brand=nike", "co=black", "size=10"})
	require.NoError(t, err)
	assert.Equal(t, "nike", f.Brand)
	assert.Equal(t, "black", f.Color)
	require.NotNil(t, f.Size)
	assert.Equal(t, 10.0, *f.Size)

	_, err = parseShellFilter([]string{"nike"})
	assert.Error(t, err)

	_, err = parseShellFilter([]string{"price=10"})
	assert.Error(t, err)
}

func TestInventoryLocation(t *testing.T) {
	t.Run("--file overrides config", func(t *testing.T) {
		dir := setupTestInventory(t, "")
		rootFile = filepath.Join(dir, "elsewhere", "shoes.csv")

		_, err := captureStdout(t, func() error {
			return runAdd(nil, []string{"Nike", "Air", "10", "Black"})
		})
		require.NoError(t, err)

		data, err := os.ReadFile(rootFile)
		require.NoError(t, err)
		assert.Equal(t, "brand,model,size,color\nNike,Air,10,Black\n", string(data))
		assert.NoFileExists(t, filepath.Join(dir, storage.DefaultInventoryFile))
	})

	t.Run("config inventory_file", func(t *testing.T) {
		dir := setupTestInventory(t, "")
		require.NoError(t, os.WriteFile(storage.ConfigPath("."), []byte("inventory_file: data/shoes.csv\n"), 0644))

		_, err := captureStdout(t, func() error {
			return runAdd(nil, []string{"Nike", "Air", "10", "Black"})
		})
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "data", "shoes.csv"))
	})
}
