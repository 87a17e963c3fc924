// Package enhanced parses word-timed LRC documents.
package enhanced

import (
	"strings"

	"github.com/go-lrc/lrc/internal/registry"
	"github.com/go-lrc/lrc/internal/scan"
	"github.com/go-lrc/lrc/internal/types"
)

func init() {
	registry.Register(types.DialectEnhanced, &Parser{})
}

// Parser parses enhanced-dialect LRC text.
type Parser struct{}

// Parse converts raw LRC text into an enhanced document.
//
// The line loop matches the standard parser's: blank lines are skipped,
// metadata header lines feed the document's Meta, and lines opening with
// a time tag are tokenized into word-tag sequences. The entry point fixes
// the dialect; a standard-looking line inside an enhanced file simply
// parses as a single word-tag. Malformed lines are dropped with a
// warning, never an error.
func (p *Parser) Parse(text string) (*types.Document, error) {
	doc := types.NewDocument(types.DialectEnhanced)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if key, value, ok := scan.MetaTag(line); ok {
			doc.Meta().Set(key, value)
			continue
		}

		if !scan.HasTimeTag(line) {
			doc.AddWarning(classify(line, i+1))
			continue
		}

		parsed, err := types.ParseEnhancedLine(line)
		if err != nil {
			doc.AddWarning(types.Warning{Stage: "lyric", Line: i + 1, Message: err.Error()})
			continue
		}
		doc.AddLine(parsed)
	}

	return doc, nil
}

func classify(line string, lineno int) types.Warning {
	if strings.HasPrefix(line, "[") {
		return types.Warning{Stage: "metadata", Line: lineno, Message: "malformed header tag"}
	}
	return types.Warning{Stage: "lyric", Line: lineno, Message: "no time tag"}
}
