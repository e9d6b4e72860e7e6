package levels

import (
	"errors"
	"fmt"
)

var (
	ErrFieldCount   = errors.New("wrong field count")
	ErrGridShape    = errors.New("grid shape mismatch")
	ErrCellValue    = errors.New("cell value out of range")
	ErrMissingLocks = errors.New("missing LOCKS sentinel")
)

// ParseError reports the file and 1-based line a read stopped at.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("levels: %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("levels: %s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
