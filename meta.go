package lrc

import (
	"github.com/go-lrc/lrc/internal/types"
)

// Meta is an alias to types.Meta.
// Re-exporting from internal/types to keep one public API surface.
type Meta = types.Meta

// MetaTag is an alias to types.MetaTag.
// Re-exporting from internal/types to keep one public API surface.
type MetaTag = types.MetaTag
