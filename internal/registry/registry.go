// Package registry manages dialect-specific parsers for LRC documents.
package registry

import (
	"github.com/go-lrc/lrc/internal/types"
)

// Parser is the interface both dialect parsers implement.
type Parser interface {
	// Parse converts raw LRC text into a document. Malformed lines are
	// dropped and recorded as warnings on the document, never returned
	// as errors.
	Parse(text string) (*types.Document, error)
}

// parsers maps dialects to their parsers.
var parsers = make(map[types.Dialect]Parser)

// Register registers a parser for a dialect.
// This is called by dialect packages during initialization (init functions).
func Register(dialect types.Dialect, parser Parser) {
	parsers[dialect] = parser
}

// Get returns the parser for a given dialect.
// Returns nil if no parser is registered for the dialect.
func Get(dialect types.Dialect) Parser {
	return parsers[dialect]
}
