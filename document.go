package lrc

import (
	"github.com/go-lrc/lrc/internal/types"
)

// Document is an alias to types.Document.
// Re-exporting from internal/types to keep one public API surface.
type Document = types.Document

// NewDocument creates an empty document for the given dialect, for
// callers building lyrics programmatically:
//
//	doc := lrc.NewDocument(lrc.DialectStandard)
//	doc.Meta().Title = "Song"
//	doc.AddLine(lrc.LyricLine{Time: t, Text: "hello"})
//	fmt.Print(doc.ToLRC())
func NewDocument(dialect Dialect) *Document {
	return types.NewDocument(dialect)
}
