package types

import "fmt"

// Dialect identifies which LRC grammar a document uses.
type Dialect int

const (
	// DialectStandard is classic LRC: one timestamp per lyric line.
	DialectStandard Dialect = iota
	// DialectEnhanced is word-timed LRC: per-word timestamps inside a
	// line, plus optional repeated leading timestamps.
	DialectEnhanced
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectStandard:
		return "standard"
	case DialectEnhanced:
		return "enhanced"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// TimePrecision returns the fractional digit count timestamps are written
// with in this dialect: centiseconds for standard files, milliseconds for
// enhanced files.
func (d Dialect) TimePrecision() int {
	if d == DialectEnhanced {
		return 3
	}
	return 2
}

// ParseDialect maps a dialect name to its Dialect value. Used by callers
// that take the dialect as CLI or config input.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "standard":
		return DialectStandard, nil
	case "enhanced":
		return DialectEnhanced, nil
	default:
		return DialectStandard, fmt.Errorf("unknown dialect %q", s)
	}
}

// MarshalJSON encodes the dialect as its name.
func (d Dialect) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
