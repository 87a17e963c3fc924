package types

import (
	"encoding/json"
	"strings"

	"github.com/go-lrc/lrc/internal/scan"
)

// EnhancedLine is a word-timed LRC line.
//
// StartTimes holds the optional leading duplicate timestamps that mark a
// repeated lyric segment (a chorus sung at several points). Tags holds the
// (timestamp, fragment) word-tags whose fragments concatenate to the line
// text. By convention the last tag carries an empty fragment and marks the
// line's end time.
//
// Word-tag times are not validated as non-decreasing: real-world files
// contain out-of-order tags and the parser preserves them as written.
type EnhancedLine struct {
	StartTimes []Time
	Tags       []WordTag
}

// ParseEnhancedLine parses a word-timed line of interleaved
// "[mm:ss.xx]fragment" segments.
//
// Each tag owns the raw text between itself and the next tag (or the end
// of the string), so stray brackets inside a fragment survive. The maximal
// run of empty-fragment tags strictly before the first non-empty fragment
// is lifted into StartTimes; when every fragment is empty no lifting
// happens and all tags stay word-tags, which keeps re-serialization
// byte-identical either way. Text before the first tag is discarded.
//
// Returns *ParseError when the string contains no time tags at all and
// *FormatError when a tag's numeric components are out of range.
func ParseEnhancedLine(s string) (EnhancedLine, error) {
	raw := scan.Tags(s)
	if len(raw) == 0 {
		return EnhancedLine{}, &ParseError{Input: s, Reason: "no time tags"}
	}

	tags := make([]WordTag, 0, len(raw))
	for _, tag := range raw {
		t, err := ParseTime(tag.Value)
		if err != nil {
			return EnhancedLine{}, err
		}
		tags = append(tags, WordTag{Time: t, Text: tag.Text})
	}

	firstText := -1
	for i, tag := range tags {
		if tag.Text != "" {
			firstText = i
			break
		}
	}

	var line EnhancedLine
	if firstText > 0 {
		line.StartTimes = make([]Time, firstText)
		for i, tag := range tags[:firstText] {
			line.StartTimes[i] = tag.Time
		}
		tags = tags[firstText:]
	}
	line.Tags = tags
	return line, nil
}

// Text returns the full line text: every fragment concatenated in tag
// order, without separators.
func (l EnhancedLine) Text() string {
	var b strings.Builder
	for _, tag := range l.Tags {
		b.WriteString(tag.Text)
	}
	return b.String()
}

// StartTime returns the line's nominal start: the first leading timestamp
// when present, otherwise the first word-tag's time.
func (l EnhancedLine) StartTime() Time {
	if len(l.StartTimes) > 0 {
		return l.StartTimes[0]
	}
	if len(l.Tags) > 0 {
		return l.Tags[0].Time
	}
	return Time{}
}

// EndTime returns the last word-tag's time. For canonical enhanced lines
// the last tag carries an empty fragment, so this is the instant the line
// stops being sung.
func (l EnhancedLine) EndTime() Time {
	if len(l.Tags) > 0 {
		return l.Tags[len(l.Tags)-1].Time
	}
	if len(l.StartTimes) > 0 {
		return l.StartTimes[len(l.StartTimes)-1]
	}
	return Time{}
}

// String renders the line at enhanced LRC precision (milliseconds).
func (l EnhancedLine) String() string {
	return l.lrcString(3)
}

func (l EnhancedLine) lrcString(fracDigits int) string {
	var b strings.Builder
	for _, t := range l.StartTimes {
		b.WriteByte('[')
		b.WriteString(t.Format(fracDigits))
		b.WriteByte(']')
	}
	for _, tag := range l.Tags {
		b.WriteByte('[')
		b.WriteString(tag.Time.Format(fracDigits))
		b.WriteByte(']')
		b.WriteString(tag.Text)
	}
	return b.String()
}

// MarshalJSON encodes the line with its derived text alongside the raw
// tag structure.
func (l EnhancedLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string    `json:"kind"`
		StartTimes []Time    `json:"start_times,omitempty"`
		Tags       []WordTag `json:"tags"`
		Text       string    `json:"text"`
	}{"enhanced", l.StartTimes, l.Tags, l.Text()})
}
