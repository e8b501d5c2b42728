package storage

import (
	"fmt"
	"strings"
)

// IOError indicates the inventory file could not be created, opened, read
// or written.
type IOError struct {
	Op   string // "create", "open", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// SchemaError indicates the inventory file is present but its header row is
// missing or does not name the required columns.
type SchemaError struct {
	Path    string   // may be empty when parsing a stream
	Header  []string // the header that was read, if any
	Message string
}

func (e *SchemaError) Error() string {
	msg := e.Message
	if len(e.Header) > 0 {
		msg += fmt.Sprintf(" (header: %s)", strings.Join(e.Header, ","))
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

// MalformedRecordError indicates a data row failed validation during load.
// Line is the 1-based line number in the file, counting the header.
type MalformedRecordError struct {
	Line   int
	Raw    []string // the raw row, if it could be read
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Raw == nil {
		return fmt.Sprintf("invalid data on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid data on line %d: %s: %q", e.Line, e.Reason, strings.Join(e.Raw, ","))
}
