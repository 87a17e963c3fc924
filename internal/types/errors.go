package types

import "fmt"

// FormatError is returned when a timestamp string does not match the
// required shape or a numeric component is out of range.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Input, e.Reason)
}

// ParseError is returned when a line-level structural expectation is
// violated while parsing a single entity directly.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// UnsupportedDialectError is returned when no parser is registered for the
// requested dialect.
type UnsupportedDialectError struct {
	Dialect Dialect
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported dialect: %s", e.Dialect)
}

// Warning represents a non-fatal issue encountered during document parsing.
//
// Document-level parsing never fails on a malformed line; the line is
// dropped and a Warning records what was skipped. Examples include:
//   - A physical line with no time tag and no metadata tag
//   - A time tag whose numeric components are out of range
//
// Warnings are collected on the Document during parsing.
type Warning struct {
	// Stage where the warning occurred: "metadata" or "lyric".
	Stage string

	// Line is the 1-based physical line number in the input.
	Line int

	// Warning message.
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
