package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/kicks/internal/model"
	"github.com/jacksmith/kicks/internal/ops"
	"github.com/jacksmith/kicks/internal/storage"
)

// NotFoundError indicates a shoe to remove is not in the inventory.
type NotFoundError struct {
	Shoe model.Shoe
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("shoe not found: %s", e.Shoe)
}

// ConfirmationError indicates a destructive command was run without
// confirmation.
type ConfirmationError struct {
	Action string // what would have happened
	Hint   string // how to confirm
}

func (e *ConfirmationError) Error() string {
	msg := fmt.Sprintf("refusing to %s without confirmation", e.Action)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output and adds a
// hint for inventory file problems the user can fix by hand.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()

	var merr *storage.MalformedRecordError
	var serr *storage.SchemaError
	switch {
	case errors.As(err, &merr):
		msg += fmt.Sprintf("\nfix line %d of the inventory file, or run `kicks edit`", merr.Line)
	case errors.As(err, &serr):
		msg += "\nthe first line of the inventory file must be: " + storage.Header
	case errors.Is(err, ops.ErrNotLoaded):
		msg += "\nthe inventory must be loaded before it can be changed"
	}
	return msg
}
