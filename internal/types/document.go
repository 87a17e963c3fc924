// Package types provides the core data model for LRC lyric documents.
//
// This package defines the Time, Line, Meta, and Document types shared by
// both dialect parsers and re-exported by the root package.
package types

import (
	"encoding/json"
	"slices"
	"strings"
)

// Document is one parsed lyric file: header metadata plus an ordered
// sequence of lines, tagged with the dialect it was parsed (or built) as.
//
// Line order is insertion order, not time order; serialization preserves
// it. Callers wanting time-sorted output call Sort explicitly.
//
// A Document accumulates Warnings instead of failing when the parser
// drops malformed input:
//
//	doc, _ := lrc.ParseStandard(text)
//	for _, w := range doc.Warnings() {
//		log.Println(w)
//	}
type Document struct {
	dialect  Dialect
	meta     Meta
	lines    []Line
	warnings []Warning
}

// NewDocument creates an empty document for the given dialect.
func NewDocument(dialect Dialect) *Document {
	return &Document{dialect: dialect}
}

// Dialect returns the grammar this document was parsed or built as.
func (d *Document) Dialect() Dialect {
	return d.dialect
}

// Meta returns the document's header metadata for reading and mutation.
func (d *Document) Meta() *Meta {
	return &d.meta
}

// AddLine appends lines in order.
func (d *Document) AddLine(lines ...Line) {
	d.lines = append(d.lines, lines...)
}

// Lines returns a deep copy of the line sequence in document order.
// Mutating the result, including the tag slices inside enhanced lines,
// never changes the document.
func (d *Document) Lines() []Line {
	if d.lines == nil {
		return nil
	}
	lines := make([]Line, len(d.lines))
	for i, line := range d.lines {
		lines[i] = cloneLine(line)
	}
	return lines
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// AddWarning records a non-fatal parsing issue.
func (d *Document) AddWarning(w Warning) {
	d.warnings = append(d.warnings, w)
}

// Warnings returns a copy of the warnings accumulated while parsing.
func (d *Document) Warnings() []Warning {
	return slices.Clone(d.warnings)
}

// ClearWarnings discards accumulated warnings.
func (d *Document) ClearWarnings() {
	d.warnings = nil
}

// ToLRC serializes the document: metadata header lines first, then each
// line in document order, every line terminated by a newline. Timestamps
// are rendered at the dialect's precision, so on canonical input ToLRC is
// the identity transform of the text the document was parsed from.
func (d *Document) ToLRC() string {
	var b strings.Builder
	for _, line := range d.meta.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	precision := d.dialect.TimePrecision()
	for _, line := range d.lines {
		b.WriteString(line.lrcString(precision))
		b.WriteByte('\n')
	}
	return b.String()
}

// Sort orders lines by start time. The sort is stable: lines sharing a
// start time keep their insertion order.
func (d *Document) Sort() {
	slices.SortStableFunc(d.lines, func(a, b Line) int {
		return a.StartTime().Compare(b.StartTime())
	})
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := &Document{
		dialect:  d.dialect,
		meta:     *d.meta.Clone(),
		warnings: slices.Clone(d.warnings),
	}
	if d.lines != nil {
		clone.lines = make([]Line, len(d.lines))
		for i, line := range d.lines {
			clone.lines[i] = cloneLine(line)
		}
	}
	return clone
}

// ToStandard downgrades the document to the standard dialect.
//
// Enhanced lines collapse to their derived text: one standard line per
// leading timestamp, or a single line at the first word-tag's time when
// the line has no leading timestamps. Combined lines convert memberwise.
// Standard documents come back as a plain clone. Warnings are not carried
// over; the result is a new document.
func (d *Document) ToStandard() *Document {
	out := NewDocument(DialectStandard)
	out.meta = *d.meta.Clone()
	for _, line := range d.lines {
		out.lines = append(out.lines, downgradeLine(line)...)
	}
	return out
}

// Cues flattens the document into a time-sorted playback list. Standard
// lines yield one cue each, empty-text gap markers included; enhanced
// lines yield one cue per start timestamp carrying the derived text;
// combined lines yield one cue per member with text. The sort is stable,
// so cues sharing a timestamp keep document order.
func (d *Document) Cues() []Cue {
	var cues []Cue
	for _, line := range d.lines {
		cues = append(cues, lineCues(line)...)
	}
	slices.SortStableFunc(cues, func(a, b Cue) int {
		return a.Time.Compare(b.Time)
	})
	return cues
}

// MarshalJSON encodes the document with its dialect, metadata, and
// self-describing line list.
func (d *Document) MarshalJSON() ([]byte, error) {
	lines := d.lines
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(struct {
		Dialect Dialect `json:"dialect"`
		Meta    *Meta   `json:"meta"`
		Lines   []Line  `json:"lines"`
	}{d.dialect, &d.meta, lines})
}

// cloneLine deep-copies a line variant, including the slices enhanced and
// combined lines carry.
func cloneLine(l Line) Line {
	switch v := l.(type) {
	case EnhancedLine:
		return EnhancedLine{
			StartTimes: slices.Clone(v.StartTimes),
			Tags:       slices.Clone(v.Tags),
		}
	case *EnhancedLine:
		return EnhancedLine{
			StartTimes: slices.Clone(v.StartTimes),
			Tags:       slices.Clone(v.Tags),
		}
	case CombinedLine:
		members := make([]Line, len(v.lines))
		for i, member := range v.lines {
			members[i] = cloneLine(member)
		}
		return CombinedLine{lines: members}
	case *CombinedLine:
		members := make([]Line, len(v.lines))
		for i, member := range v.lines {
			members[i] = cloneLine(member)
		}
		return CombinedLine{lines: members}
	case *LyricLine:
		return *v
	default:
		return l
	}
}

// downgradeLine converts one line of any variant to standard lines.
func downgradeLine(l Line) []Line {
	switch v := l.(type) {
	case LyricLine:
		return []Line{v}
	case *LyricLine:
		return []Line{*v}
	case EnhancedLine:
		return downgradeEnhanced(v)
	case *EnhancedLine:
		return downgradeEnhanced(*v)
	case CombinedLine:
		var out []Line
		for _, member := range v.lines {
			out = append(out, downgradeLine(member)...)
		}
		return out
	case *CombinedLine:
		var out []Line
		for _, member := range v.lines {
			out = append(out, downgradeLine(member)...)
		}
		return out
	default:
		return nil
	}
}

func downgradeEnhanced(l EnhancedLine) []Line {
	if len(l.StartTimes) == 0 {
		if len(l.Tags) == 0 {
			return nil
		}
		return []Line{LyricLine{Time: l.StartTime(), Text: l.Text()}}
	}
	text := l.Text()
	out := make([]Line, len(l.StartTimes))
	for i, t := range l.StartTimes {
		out[i] = LyricLine{Time: t, Text: text}
	}
	return out
}

// lineCues flattens one line into playback cues.
func lineCues(l Line) []Cue {
	switch v := l.(type) {
	case LyricLine:
		return []Cue{{Time: v.Time, Text: v.Text}}
	case *LyricLine:
		return []Cue{{Time: v.Time, Text: v.Text}}
	case EnhancedLine:
		return enhancedCues(v)
	case *EnhancedLine:
		return enhancedCues(*v)
	case CombinedLine:
		return combinedCues(v)
	case *CombinedLine:
		return combinedCues(*v)
	default:
		return nil
	}
}

func enhancedCues(l EnhancedLine) []Cue {
	if len(l.StartTimes) == 0 {
		if len(l.Tags) == 0 {
			return nil
		}
		return []Cue{{Time: l.StartTime(), Text: l.Text()}}
	}
	text := l.Text()
	cues := make([]Cue, len(l.StartTimes))
	for i, t := range l.StartTimes {
		cues[i] = Cue{Time: t, Text: text}
	}
	return cues
}

func combinedCues(l CombinedLine) []Cue {
	if len(l.lines) == 0 {
		return nil
	}
	// An empty origin is a gap marker: one empty cue, translations
	// suppressed, mirroring serialization.
	if lineText(l.lines[0]) == "" {
		return []Cue{{Time: l.StartTime()}}
	}
	var cues []Cue
	cues = append(cues, lineCues(l.lines[0])...)
	for _, member := range l.lines[1:] {
		if lineText(member) != "" {
			cues = append(cues, lineCues(member)...)
		}
	}
	return cues
}
