package lrc

import (
	"fmt"

	"github.com/go-lrc/lrc/internal/registry"

	// Register both dialect parsers. Importing lrc alone is enough to
	// parse either dialect.
	_ "github.com/go-lrc/lrc/internal/enhanced"
	_ "github.com/go-lrc/lrc/internal/standard"
)

// Parse converts raw LRC text into a document using the given dialect's
// grammar.
//
// Document parsing is fail-soft: malformed physical lines are dropped and
// recorded as warnings on the document, and the parse itself succeeds.
// The error is non-nil only when no parser is registered for the dialect,
// or when WithStrictParsing is set and a line was dropped.
//
// The dialect is fixed by this call; a standard-looking line inside text
// parsed as enhanced is read with the enhanced grammar, never the other
// way around.
//
// Example:
//
//	doc, err := lrc.Parse(text, lrc.DialectEnhanced)
//	if err != nil {
//		return err
//	}
//	for _, w := range doc.Warnings() {
//		log.Println(w)
//	}
func Parse(text string, dialect Dialect, opts ...Option) (*Document, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return parse(text, dialect, options)
}

// ParseStandard parses text as standard LRC: one timestamp per line.
func ParseStandard(text string, opts ...Option) (*Document, error) {
	return Parse(text, DialectStandard, opts...)
}

// ParseEnhanced parses text as enhanced LRC: word-timed lines.
func ParseEnhanced(text string, opts ...Option) (*Document, error) {
	return Parse(text, DialectEnhanced, opts...)
}

// parse dispatches to the registered dialect parser and applies the
// warning-handling options.
func parse(text string, dialect Dialect, options *parseOptions) (*Document, error) {
	parser := registry.Get(dialect)
	if parser == nil {
		return nil, &UnsupportedDialectError{Dialect: dialect}
	}

	doc, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dialect, err)
	}

	if options.strictParsing {
		if warnings := doc.Warnings(); len(warnings) > 0 {
			return nil, fmt.Errorf("strict parsing failed: %s", warnings[0])
		}
	}
	if options.ignoreWarnings {
		doc.ClearWarnings()
	}

	return doc, nil
}
