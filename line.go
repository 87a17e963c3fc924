package lrc

import (
	"github.com/go-lrc/lrc/internal/types"
)

// Line is an alias to types.Line.
// Re-exporting from internal/types to keep one public API surface.
//
// Line is a closed set: LyricLine, EnhancedLine, and CombinedLine are the
// only implementations.
type Line = types.Line

// LyricLine is an alias to types.LyricLine.
// Re-exporting from internal/types to keep one public API surface.
type LyricLine = types.LyricLine

// WordTag is an alias to types.WordTag.
// Re-exporting from internal/types to keep one public API surface.
type WordTag = types.WordTag

// EnhancedLine is an alias to types.EnhancedLine.
// Re-exporting from internal/types to keep one public API surface.
type EnhancedLine = types.EnhancedLine

// CombinedLine is an alias to types.CombinedLine.
// Re-exporting from internal/types to keep one public API surface.
type CombinedLine = types.CombinedLine

// Cue is an alias to types.Cue.
// Re-exporting from internal/types to keep one public API surface.
type Cue = types.Cue

// ParseLyricLine parses a standard line of the form "[mm:ss.xx]text".
// Unlike document parsing this fails fast: a missing leading tag returns
// *ParseError, an out-of-range timestamp returns *FormatError.
func ParseLyricLine(s string) (LyricLine, error) {
	return types.ParseLyricLine(s)
}

// ParseEnhancedLine parses a word-timed line of interleaved
// "[mm:ss.xx]fragment" segments. Leading empty-fragment tags before the
// first fragment become the line's start times. Fails fast: a string with
// no tags at all returns *ParseError.
func ParseEnhancedLine(s string) (EnhancedLine, error) {
	return types.ParseEnhancedLine(s)
}

// NewCombinedLine groups an origin line with its translations into one
// slot. Standard-line translations are restamped to the origin's start
// time.
func NewCombinedLine(origin Line, translations ...Line) CombinedLine {
	return types.NewCombinedLine(origin, translations...)
}
