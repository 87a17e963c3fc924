// Package standard parses classic LRC documents: one timestamp per line.
package standard

import (
	"strings"

	"github.com/go-lrc/lrc/internal/registry"
	"github.com/go-lrc/lrc/internal/scan"
	"github.com/go-lrc/lrc/internal/types"
)

func init() {
	registry.Register(types.DialectStandard, &Parser{})
}

// Parser parses standard-dialect LRC text.
type Parser struct{}

// Parse converts raw LRC text into a standard document.
//
// The grammar is applied line by line: blank lines are skipped, metadata
// header lines feed the document's Meta, and lines opening with a time
// tag become lyric lines. A malformed line never aborts the document; it
// is dropped and recorded as a warning.
func (p *Parser) Parse(text string) (*types.Document, error) {
	doc := types.NewDocument(types.DialectStandard)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Metadata keys are letter-initial, so this can never swallow a
		// time-tagged line. Checked first, like players do.
		if key, value, ok := scan.MetaTag(line); ok {
			doc.Meta().Set(key, value)
			continue
		}

		if !scan.HasTimeTag(line) {
			doc.AddWarning(classify(line, i+1))
			continue
		}

		parsed, err := types.ParseLyricLine(line)
		if err != nil {
			doc.AddWarning(types.Warning{Stage: "lyric", Line: i + 1, Message: err.Error()})
			continue
		}
		doc.AddLine(parsed)
	}

	return doc, nil
}

// classify builds the warning for a line that is neither metadata nor
// time-tagged. Bracket-initial lines were meant as headers; everything
// else is stray text.
func classify(line string, lineno int) types.Warning {
	if strings.HasPrefix(line, "[") {
		return types.Warning{Stage: "metadata", Line: lineno, Message: "malformed header tag"}
	}
	return types.Warning{Stage: "lyric", Line: lineno, Message: "no time tag"}
}
