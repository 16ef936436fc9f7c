package register

import (
	"errors"
	"fmt"

	"github.com/dshills/outreg/internal/completeness"
)

var (
	// ErrNotFound is returned when no record has the requested id or reference.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateReference is returned when another record already uses the
	// reference number.
	ErrDuplicateReference = errors.New("duplicate reference number")
	// ErrInvalidReference is returned for a reference number that is not
	// "<yyyy>-<nnn>".
	ErrInvalidReference = errors.New("invalid reference number")
	// ErrInvalidRecord is returned when a record fails structural validation.
	ErrInvalidRecord = errors.New("invalid record")
)

// IncompleteError is returned by a SaveComplete that found missing fields.
type IncompleteError struct {
	Result completeness.Result
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("record is incomplete: %d required field(s) missing", len(e.Result.IncompletePaths))
}
