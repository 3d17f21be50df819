package models

import (
	"errors"
	"fmt"
	"strings"
)

// Custom errors
var (
	ErrInvalidOdds      = errors.New("invalid odds")
	ErrModelUnavailable = errors.New("no model artifact available")
	ErrNotFound         = errors.New("record not found")
)

// InsufficientDataError indicates the training set is too small for the
// requested fold count. Fatal to the training invocation.
type InsufficientDataError struct {
	Records int
	Folds   int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient training data: %d records for %d folds, need at least %d", e.Records, e.Folds, e.Folds+1)
}

// SchemaMismatchError indicates a persisted artifact's feature schema does
// not match the schema the caller expects. Fatal, prevents inference.
type SchemaMismatchError struct {
	Expected []string
	Actual   []string
}

func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("feature schema mismatch: expected [%s], got [%s]",
		strings.Join(e.Expected, ","), strings.Join(e.Actual, ","))
}
