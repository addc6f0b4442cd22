package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBank means the caller named a bank with no dialect.
	ErrUnsupportedBank = errors.New("unsupported bank")

	// ErrUnsupportedFormat means the file extension is neither CSV nor
	// a text-extraction source.
	ErrUnsupportedFormat = errors.New("unsupported file format, only PDF and CSV are supported")

	// ErrMissingColumns means a tabular statement lacks one of the
	// canonical columns after dialect renaming.
	ErrMissingColumns = errors.New("statement is missing required columns")
)

// RecordError identifies a single row or line that failed dialect
// parsing. Preceding well-formed records are preserved; the error is
// attached to the parse result instead of aborting the statement.
type RecordError struct {
	Line   int
	Reason string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed record at line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
