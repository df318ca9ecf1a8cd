package logparse

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every error returned by the parsers in this package.
	ErrParse = errors.New("logparse: parse error")

	// ErrShortText indicates that the text has fewer lines than the report
	// summary needs.
	ErrShortText = errors.New("logparse: too few lines")

	// ErrNoMatch indicates that a summary line did not have the expected format.
	ErrNoMatch = errors.New("logparse: line does not match")

	// ErrBadNumber indicates that a captured field is not a valid number.
	ErrBadNumber = errors.New("logparse: bad number")

	// ErrZeroCycles indicates a burn report that counted no cycles, which leaves
	// the energy per cycle undefined.
	ErrZeroCycles = errors.New("logparse: zero cycle count")
)

// ParseError describes a summary line that could not be parsed.
// Line is the offset from the end of the text (1 = last line).
type ParseError struct {
	Line    int
	Pattern string
	Text    string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line -%d (%s): %v: %q", e.Line, e.Pattern, e.Err, e.Text)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
