package types

import (
	"encoding/json"
	"slices"
	"strings"
)

// CombinedLine groups lines that share one conceptual slot, typically an
// original lyric and its translations emitted at the same timestamp.
//
// Members are fixed at construction; ordering delegates to the first
// member's start time.
type CombinedLine struct {
	lines []Line
}

// NewCombinedLine builds a combined line from an origin and its
// translations.
//
// Standard-line translations are restamped to the origin's start time so
// every member of the slot fires together; enhanced translations keep
// their own word timing. The origin is stored unchanged.
func NewCombinedLine(origin Line, translations ...Line) CombinedLine {
	lines := make([]Line, 0, 1+len(translations))
	lines = append(lines, origin)

	start := origin.StartTime()
	for _, tr := range translations {
		switch v := tr.(type) {
		case LyricLine:
			v.Time = start
			lines = append(lines, v)
		case *LyricLine:
			restamped := *v
			restamped.Time = start
			lines = append(lines, restamped)
		default:
			lines = append(lines, tr)
		}
	}
	return CombinedLine{lines: lines}
}

// Lines returns a copy of the member lines, origin first.
func (l CombinedLine) Lines() []Line {
	return slices.Clone(l.lines)
}

// StartTime returns the first member's start time.
func (l CombinedLine) StartTime() Time {
	if len(l.lines) == 0 {
		return Time{}
	}
	return l.lines[0].StartTime()
}

// String renders each member at its own canonical precision.
func (l CombinedLine) String() string {
	if len(l.lines) == 0 {
		return ""
	}
	if lineText(l.lines[0]) == "" {
		return "[" + l.StartTime().String() + "]"
	}
	parts := make([]string, 0, len(l.lines))
	parts = append(parts, l.lines[0].String())
	for _, member := range l.lines[1:] {
		if lineText(member) != "" {
			parts = append(parts, member.String())
		}
	}
	return strings.Join(parts, "\n")
}

// lrcString renders the origin followed by each translation with text,
// one member per physical line. An origin with empty text is a gap
// marker: only its time tag is emitted and translations are suppressed.
func (l CombinedLine) lrcString(fracDigits int) string {
	if len(l.lines) == 0 {
		return ""
	}
	if lineText(l.lines[0]) == "" {
		return "[" + l.StartTime().Format(fracDigits) + "]"
	}
	parts := make([]string, 0, len(l.lines))
	parts = append(parts, l.lines[0].lrcString(fracDigits))
	for _, member := range l.lines[1:] {
		if lineText(member) != "" {
			parts = append(parts, member.lrcString(fracDigits))
		}
	}
	return strings.Join(parts, "\n")
}

// MarshalJSON encodes the member lines under a "kind" discriminator.
func (l CombinedLine) MarshalJSON() ([]byte, error) {
	lines := l.lines
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Time  Time   `json:"time"`
		Lines []Line `json:"lines"`
	}{"combined", l.StartTime(), lines})
}

// lineText extracts the renderable text of any line variant.
func lineText(l Line) string {
	switch v := l.(type) {
	case LyricLine:
		return v.Text
	case *LyricLine:
		return v.Text
	case EnhancedLine:
		return v.Text()
	case *EnhancedLine:
		return v.Text()
	case CombinedLine:
		if len(v.lines) == 0 {
			return ""
		}
		return lineText(v.lines[0])
	case *CombinedLine:
		if len(v.lines) == 0 {
			return ""
		}
		return lineText(v.lines[0])
	default:
		return ""
	}
}
