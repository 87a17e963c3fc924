package types

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Time is a lyric timestamp with millisecond resolution.
//
// Time is an immutable value type: construct it once, then compare or
// format it. The zero value is 00:00.000. Minutes have no upper bound
// beyond the int64 millisecond range; seconds and milliseconds are kept
// normalized (seconds below 60, milliseconds below 1000).
type Time struct {
	ms int64
}

// Shape of the bracket-free textual form. Seconds may be one or two
// digits; the fraction is one to three digits, right-padded to
// milliseconds ("84" means 840ms, not 84ms).
var timeRe = regexp.MustCompile(`^(\d+):(\d{1,2})\.(\d{1,3})$`)

// maxWholeMinutes bounds the minute field so that the total millisecond
// count cannot overflow int64.
const maxWholeMinutes = (math.MaxInt64 - 59999) / 60000

// NewTime builds a Time from decomposed components.
//
// Returns *FormatError when minutes is negative, seconds is outside
// [0,60), or millis is outside [0,1000).
func NewTime(minutes, seconds, millis int) (Time, error) {
	if minutes < 0 {
		return Time{}, &FormatError{
			Input:  fmt.Sprintf("%d:%d.%d", minutes, seconds, millis),
			Reason: "minutes must not be negative",
		}
	}
	if int64(minutes) > maxWholeMinutes {
		return Time{}, &FormatError{
			Input:  fmt.Sprintf("%d:%d.%d", minutes, seconds, millis),
			Reason: "minute field too large",
		}
	}
	if seconds < 0 || seconds > 59 {
		return Time{}, &FormatError{
			Input:  fmt.Sprintf("%d:%d.%d", minutes, seconds, millis),
			Reason: "seconds must be in [0,60)",
		}
	}
	if millis < 0 || millis > 999 {
		return Time{}, &FormatError{
			Input:  fmt.Sprintf("%d:%d.%d", minutes, seconds, millis),
			Reason: "milliseconds must be in [0,1000)",
		}
	}
	return Time{ms: int64(minutes)*60000 + int64(seconds)*1000 + int64(millis)}, nil
}

// TimeFromMilliseconds builds a Time from a total millisecond count.
//
// Returns *FormatError when ms is negative.
func TimeFromMilliseconds(ms int64) (Time, error) {
	if ms < 0 {
		return Time{}, &FormatError{
			Input:  strconv.FormatInt(ms, 10),
			Reason: "millisecond count must not be negative",
		}
	}
	return Time{ms: ms}, nil
}

// ParseTime parses the bracket-free textual form "mm:ss.xx".
//
// Accepted shapes: one or more minute digits, one or two second digits,
// and a one- to three-digit fraction. The fraction is right-padded to
// milliseconds, so "0:1.5" is 00:01.500. Returns *FormatError when the
// text does not match the shape or the seconds value is 60 or more.
func ParseTime(s string) (Time, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return Time{}, &FormatError{Input: s, Reason: "must match mm:ss.xx"}
	}

	minutes, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || minutes > maxWholeMinutes {
		return Time{}, &FormatError{Input: s, Reason: "minute field too large"}
	}

	seconds, _ := strconv.Atoi(m[2])
	if seconds > 59 {
		return Time{}, &FormatError{Input: s, Reason: "seconds must be in [0,60)"}
	}

	frac := m[3]
	for len(frac) < 3 {
		frac += "0"
	}
	millis, _ := strconv.Atoi(frac)

	return Time{ms: minutes*60000 + int64(seconds)*1000 + int64(millis)}, nil
}

// Milliseconds returns the total elapsed milliseconds.
func (t Time) Milliseconds() int64 {
	return t.ms
}

// Minutes returns the whole-minute component.
func (t Time) Minutes() int64 {
	return t.ms / 60000
}

// Seconds returns the second component, in [0,60).
func (t Time) Seconds() int {
	return int(t.ms % 60000 / 1000)
}

// Millis returns the millisecond component, in [0,1000).
func (t Time) Millis() int {
	return int(t.ms % 1000)
}

// Duration returns the timestamp as a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.ms) * time.Millisecond
}

// IsZero reports whether t is 00:00.000.
func (t Time) IsZero() bool {
	return t.ms == 0
}

// Compare orders two timestamps by millisecond count. It returns -1 when
// t is before other, 0 when equal, and +1 when t is after other.
func (t Time) Compare(other Time) int {
	return cmp.Compare(t.ms, other.ms)
}

// Before reports whether t is before other.
func (t Time) Before(other Time) bool {
	return t.ms < other.ms
}

// After reports whether t is after other.
func (t Time) After(other Time) bool {
	return t.ms > other.ms
}

// Equal reports whether t and other are the same instant.
func (t Time) Equal(other Time) bool {
	return t.ms == other.ms
}

// Format renders the timestamp as "mm:ss" plus a fraction of the given
// width: 2 emits centiseconds (standard LRC), any other value emits
// milliseconds. The 2-digit form truncates rather than rounds, so a
// fraction can never carry into the seconds field. Minutes are
// zero-padded to two digits and widen as needed.
func (t Time) Format(fracDigits int) string {
	if fracDigits == 2 {
		return fmt.Sprintf("%02d:%02d.%02d", t.Minutes(), t.Seconds(), t.Millis()/10)
	}
	return fmt.Sprintf("%02d:%02d.%03d", t.Minutes(), t.Seconds(), t.Millis())
}

// String renders the timestamp at full millisecond precision.
func (t Time) String() string {
	return t.Format(3)
}

// MarshalJSON encodes the timestamp as its canonical 3-digit string.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON decodes a quoted "mm:ss.xx" string.
func (t *Time) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return &FormatError{Input: string(data), Reason: "must be a quoted string"}
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
