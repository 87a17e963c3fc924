package lrc

import (
	"github.com/go-lrc/lrc/internal/types"
)

// FormatError is an alias to types.FormatError.
// Re-exporting from internal/types to keep one public API surface.
type FormatError = types.FormatError

// ParseError is an alias to types.ParseError.
// Re-exporting from internal/types to keep one public API surface.
type ParseError = types.ParseError

// UnsupportedDialectError is an alias to types.UnsupportedDialectError.
// Re-exporting from internal/types to keep one public API surface.
type UnsupportedDialectError = types.UnsupportedDialectError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to keep one public API surface.
type Warning = types.Warning
