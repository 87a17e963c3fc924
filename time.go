package lrc

import (
	"github.com/go-lrc/lrc/internal/types"
)

// Time is an alias to types.Time.
// Re-exporting from internal/types to keep one public API surface.
type Time = types.Time

// NewTime builds a Time from decomposed components: minutes, seconds in
// [0,60), milliseconds in [0,1000). Returns *FormatError when a component
// is out of range.
func NewTime(minutes, seconds, millis int) (Time, error) {
	return types.NewTime(minutes, seconds, millis)
}

// TimeFromMilliseconds builds a Time from a total millisecond count.
// Returns *FormatError when ms is negative.
func TimeFromMilliseconds(ms int64) (Time, error) {
	return types.TimeFromMilliseconds(ms)
}

// ParseTime parses the bracket-free textual form "mm:ss.xx": one or more
// minute digits, one or two second digits, a one- to three-digit fraction
// right-padded to milliseconds. Returns *FormatError when the text does
// not match the shape or a component is out of range.
func ParseTime(s string) (Time, error) {
	return types.ParseTime(s)
}
