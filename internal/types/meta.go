package types

import (
	"encoding/json"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// MetaTag is one unrecognized header tag, preserved verbatim so it
// survives a round-trip.
type MetaTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Meta holds a document's header tags.
//
// Recognized tags map to typed fields; anything else is kept verbatim in
// an unrecognized bucket, in first-seen order. Both live behind one
// case-insensitive mapping interface (Set, Get, All), and emission order
// is fixed so serialization stays deterministic.
type Meta struct {
	extra    []MetaTag
	Title    string // [ti:] song title
	Artist   string // [ar:] performing artist
	Album    string // [al:] album
	Lyricist string // [au:] author of the lyric text
	Author   string // [by:] creator of the LRC file
	Length   string // [length:] song length
	Offset   string // [offset:] global timestamp shift, milliseconds
	Editor   string // [re:] editor/player that produced the file
	Version  string // [ve:] editor version
}

// canonicalKeys fixes the emission order of recognized tags.
var canonicalKeys = []string{"ti", "ar", "al", "au", "by", "length", "offset", "re", "ve"}

// field maps a canonical key to its struct field. Returns nil for
// unrecognized keys.
func (m *Meta) field(key string) *string {
	switch strings.ToLower(key) {
	case "ti":
		return &m.Title
	case "ar":
		return &m.Artist
	case "al":
		return &m.Album
	case "au":
		return &m.Lyricist
	case "by":
		return &m.Author
	case "length":
		return &m.Length
	case "offset":
		return &m.Offset
	case "re":
		return &m.Editor
	case "ve":
		return &m.Version
	default:
		return nil
	}
}

// Set stores a header tag. Keys are case-insensitive: recognized keys
// land in their typed field, anything else is preserved verbatim (the
// key's casing as first seen) for round-trip fidelity. Setting an
// existing key replaces its value.
func (m *Meta) Set(key, value string) {
	if f := m.field(key); f != nil {
		*f = value
		return
	}
	for i := range m.extra {
		if strings.EqualFold(m.extra[i].Key, key) {
			m.extra[i].Value = value
			return
		}
	}
	m.extra = append(m.extra, MetaTag{Key: key, Value: value})
}

// Get retrieves a header tag by key, case-insensitively. A recognized key
// reports ok only when its field is non-empty.
func (m *Meta) Get(key string) (string, bool) {
	if f := m.field(key); f != nil {
		return *f, *f != ""
	}
	for _, tag := range m.extra {
		if strings.EqualFold(tag.Key, key) {
			return tag.Value, true
		}
	}
	return "", false
}

// Del removes a header tag by key, case-insensitively.
func (m *Meta) Del(key string) {
	if f := m.field(key); f != nil {
		*f = ""
		return
	}
	m.extra = slices.DeleteFunc(m.extra, func(tag MetaTag) bool {
		return strings.EqualFold(tag.Key, key)
	})
}

// All returns an iterator over every set tag in canonical emission order:
// recognized tags first (ti, ar, al, au, by, length, offset, re, ve),
// then unrecognized tags in first-seen order.
//
// Example:
//
//	for key, value := range doc.Meta().All() {
//		fmt.Printf("%s = %s\n", key, value)
//	}
func (m *Meta) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range canonicalKeys {
			if v := *m.field(key); v != "" {
				if !yield(key, v) {
					return
				}
			}
		}
		for _, tag := range m.extra {
			if !yield(tag.Key, tag.Value) {
				return
			}
		}
	}
}

// Lines renders every set tag as a "[key:value]" header line in canonical
// emission order.
func (m *Meta) Lines() []string {
	var lines []string
	for key, value := range m.All() {
		lines = append(lines, "["+key+":"+value+"]")
	}
	return lines
}

// Len returns the number of set tags.
func (m *Meta) Len() int {
	n := len(m.extra)
	for _, key := range canonicalKeys {
		if *m.field(key) != "" {
			n++
		}
	}
	return n
}

// OffsetMilliseconds parses the offset tag as a signed millisecond count
// ("+500", "-500", "500"). An unset offset yields zero. Returns
// *FormatError when the tag is set but not numeric.
func (m *Meta) OffsetMilliseconds() (int64, error) {
	if m.Offset == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(m.Offset), 10, 64)
	if err != nil {
		return 0, &FormatError{Input: m.Offset, Reason: "offset must be a signed millisecond count"}
	}
	return v, nil
}

// Clone creates a deep copy of the Meta.
func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	clone := *m
	clone.extra = slices.Clone(m.extra)
	return &clone
}

// Equal reports whether two Metas hold the same tags.
func (m *Meta) Equal(other *Meta) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Title != other.Title ||
		m.Artist != other.Artist ||
		m.Album != other.Album ||
		m.Lyricist != other.Lyricist ||
		m.Author != other.Author ||
		m.Length != other.Length ||
		m.Offset != other.Offset ||
		m.Editor != other.Editor ||
		m.Version != other.Version {
		return false
	}
	return slices.Equal(m.extra, other.extra)
}

// MarshalJSON encodes set tags under their canonical keys, with
// unrecognized tags in an "extra" list.
func (m *Meta) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title    string    `json:"ti,omitempty"`
		Artist   string    `json:"ar,omitempty"`
		Album    string    `json:"al,omitempty"`
		Lyricist string    `json:"au,omitempty"`
		Author   string    `json:"by,omitempty"`
		Length   string    `json:"length,omitempty"`
		Offset   string    `json:"offset,omitempty"`
		Editor   string    `json:"re,omitempty"`
		Version  string    `json:"ve,omitempty"`
		Extra    []MetaTag `json:"extra,omitempty"`
	}{m.Title, m.Artist, m.Album, m.Lyricist, m.Author, m.Length, m.Offset, m.Editor, m.Version, m.extra})
}
