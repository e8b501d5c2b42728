// Package storage provides file system operations for the inventory file.
package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/jacksmith/kicks/internal/model"
)

// Storage provides access to one inventory file.
type Storage struct {
	path string
}

// New returns a Storage for the inventory file at path.
// The file is not touched until the first Load or Save.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Init returns a Storage for path, creating the file with only the header
// row if it does not exist yet.
func Init(path string) (*Storage, error) {
	if err := EnsureExists(path); err != nil {
		return nil, err
	}
	return New(path), nil
}

// Path returns the path to the inventory file.
func (s *Storage) Path() string {
	return s.path
}

// Load reads every record from the inventory file.
func (s *Storage) Load() ([]model.Shoe, error) {
	return Load(s.path)
}

// Save replaces the inventory file with the given records.
func (s *Storage) Save(shoes []model.Shoe) error {
	return Save(s.path, shoes)
}

// EnsureExists creates the inventory file, and any missing parent
// directories, holding only the header row. An existing file is left alone.
func EnsureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return &IOError{Op: "access", Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &IOError{Op: "create", Path: dir, Err: err}
		}
	}
	if err := writeFileAtomic(path, []byte(Header+"\n"), 0644); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	return nil
}

// Load reads every record from the inventory file at path, creating the
// file first if needed. The whole load fails on the first bad row.
func Load(path string) ([]model.Shoe, error) {
	if err := EnsureExists(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	shoes, err := Parse(f)
	if err != nil {
		var serr *SchemaError
		if errors.As(err, &serr) {
			serr.Path = path
			return nil, serr
		}
		var merr *MalformedRecordError
		if errors.As(err, &merr) {
			return nil, merr
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return shoes, nil
}

// Save replaces the inventory file at path with the header row followed by
// one row per record, in order. The new content is written to a temporary
// file and renamed into place, so a failed save never truncates the file.
func Save(path string, shoes []model.Shoe) error {
	if err := EnsureExists(path); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Write(&buf, shoes); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
