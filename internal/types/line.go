package types

import (
	"encoding/json"

	"github.com/go-lrc/lrc/internal/scan"
)

// Line is the closed set of lyric line variants a document can hold:
// LyricLine, EnhancedLine, and CombinedLine.
//
// The interface is sealed by an unexported method, which doubles as the
// serialization hook: documents render every line at their dialect's
// fractional width through it.
type Line interface {
	// StartTime returns the line's nominal start, used for ordering.
	StartTime() Time

	// String renders the line at its variant's canonical precision.
	String() string

	// lrcString renders the line with the given fractional digit count.
	lrcString(fracDigits int) string
}

// LyricLine is a standard LRC line: one timestamp and the full line text.
//
// Text may be empty; an empty line marks an instrumental gap.
type LyricLine struct {
	Time Time
	Text string
}

// ParseLyricLine parses a standard line of the form "[mm:ss.xx]text".
//
// The time tag must open the string; everything after the closing bracket
// becomes Text verbatim, including any further bracketed tags. Returns
// *ParseError when the leading tag is missing and *FormatError when its
// numeric components are out of range.
func ParseLyricLine(s string) (LyricLine, error) {
	value, rest, ok := scan.Leading(s)
	if !ok {
		return LyricLine{}, &ParseError{Input: s, Reason: "no leading time tag"}
	}
	t, err := ParseTime(value)
	if err != nil {
		return LyricLine{}, err
	}
	return LyricLine{Time: t, Text: rest}, nil
}

// StartTime returns the line's timestamp.
func (l LyricLine) StartTime() Time {
	return l.Time
}

// String renders the line at standard LRC precision (centiseconds).
func (l LyricLine) String() string {
	return l.lrcString(2)
}

func (l LyricLine) lrcString(fracDigits int) string {
	return "[" + l.Time.Format(fracDigits) + "]" + l.Text
}

// MarshalJSON encodes the line with a "kind" discriminator so mixed line
// sequences stay self-describing.
func (l LyricLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Time Time   `json:"time"`
		Text string `json:"text"`
	}{"standard", l.Time, l.Text})
}

// WordTag is one (timestamp, text fragment) pair inside an enhanced line.
type WordTag struct {
	Time Time   `json:"time"`
	Text string `json:"text"`
}
