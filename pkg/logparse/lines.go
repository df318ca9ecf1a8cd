package logparse

import "strings"

// Lines is a report split on "\n". A trailing newline produces an empty last
// element, so the summary of a well-formed report sits at offsets 2 and 3.
type Lines []string

// SplitLines splits text the same way the benchmark tools terminate their output.
func SplitLines(text string) Lines {
	return strings.Split(text, "\n")
}

// FromEnd returns the n-th line counted from the end (1 = last line).
func (l Lines) FromEnd(n int) (string, error) {
	if n < 1 || n > len(l) {
		return "", &ParseError{Line: n, Pattern: "line", Err: ErrShortText}
	}
	return l[len(l)-n], nil
}

// LineFromEnd is a shorthand for SplitLines(text).FromEnd(n).
func LineFromEnd(text string, n int) (string, error) {
	return SplitLines(text).FromEnd(n)
}
