package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCell is returned when a data row lacks a column that a field is read from.
	ErrMissingCell = errors.New("missing cell")
	// ErrEmptyID is returned when the identifier cell normalizes to nothing.
	ErrEmptyID = errors.New("empty course id")
)

// RowError describes a data row that could not be turned into a record.
type RowError struct {
	Row int // zero-based index among the document's <tr> elements
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
