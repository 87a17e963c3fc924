package lrc

import (
	"github.com/go-lrc/lrc/internal/types"
)

// Dialect is an alias to types.Dialect.
// Re-exporting from internal/types to keep one public API surface.
type Dialect = types.Dialect

const (
	// DialectStandard is classic LRC: one timestamp per lyric line,
	// centisecond precision.
	DialectStandard = types.DialectStandard

	// DialectEnhanced is word-timed LRC: per-word timestamps inside a
	// line, millisecond precision.
	DialectEnhanced = types.DialectEnhanced
)

// ParseDialect maps a dialect name ("standard" or "enhanced") to its
// Dialect value. Useful for CLI flags and config files.
func ParseDialect(s string) (Dialect, error) {
	return types.ParseDialect(s)
}
