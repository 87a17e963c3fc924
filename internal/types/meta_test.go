package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestMetaSetRecognizedKeys(t *testing.T) {
	var m Meta
	m.Set("ti", "Song")
	m.Set("AR", "Artist") // keys are case-insensitive
	m.Set("al", "Album")
	m.Set("au", "Lyricist")
	m.Set("by", "Transcriber")
	m.Set("length", "03:45")
	m.Set("offset", "+500")
	m.Set("re", "editor")
	m.Set("ve", "2.0")

	if m.Title != "Song" || m.Artist != "Artist" || m.Album != "Album" {
		t.Errorf("core fields = %q/%q/%q", m.Title, m.Artist, m.Album)
	}
	if m.Lyricist != "Lyricist" || m.Author != "Transcriber" {
		t.Errorf("au/by fields = %q/%q", m.Lyricist, m.Author)
	}
	if m.Length != "03:45" || m.Offset != "+500" || m.Editor != "editor" || m.Version != "2.0" {
		t.Errorf("tool fields = %q/%q/%q/%q", m.Length, m.Offset, m.Editor, m.Version)
	}
	if m.Len() != 9 {
		t.Errorf("Len() = %d, want 9", m.Len())
	}
}

func TestMetaUnrecognizedKeys(t *testing.T) {
	var m Meta
	m.Set("UnknownKey", "xyz")

	// Lookup is case-insensitive.
	got, ok := m.Get("unknownkey")
	if !ok || got != "xyz" {
		t.Errorf("Get(unknownkey) = (%q, %v), want (xyz, true)", got, ok)
	}

	// Updating keeps the key casing first seen.
	m.Set("unknownKEY", "abc")
	want := []string{"[UnknownKey:abc]"}
	if got := m.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestMetaGet(t *testing.T) {
	var m Meta
	m.Set("ti", "Song")

	if got, ok := m.Get("TI"); !ok || got != "Song" {
		t.Errorf("Get(TI) = (%q, %v), want (Song, true)", got, ok)
	}
	if _, ok := m.Get("ar"); ok {
		t.Error("Get(ar) reported ok for an unset field")
	}
	if _, ok := m.Get("nosuchkey"); ok {
		t.Error("Get(nosuchkey) reported ok")
	}
}

func TestMetaDel(t *testing.T) {
	var m Meta
	m.Set("ti", "Song")
	m.Set("custom", "x")

	m.Del("TI")
	if m.Title != "" {
		t.Errorf("Del(TI) left Title = %q", m.Title)
	}
	m.Del("CUSTOM")
	if _, ok := m.Get("custom"); ok {
		t.Error("Del(CUSTOM) left the tag behind")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after deleting everything", m.Len())
	}
}

func TestMetaLinesOrder(t *testing.T) {
	// Emission order is fixed regardless of set order: recognized tags in
	// canonical order, then unrecognized tags as first seen.
	var m Meta
	m.Set("ve", "2.0")
	m.Set("zz", "last")
	m.Set("ti", "Song")
	m.Set("aa", "first")
	m.Set("ar", "Artist")

	want := []string{"[ti:Song]", "[ar:Artist]", "[ve:2.0]", "[zz:last]", "[aa:first]"}
	if got := m.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestMetaAllStopsEarly(t *testing.T) {
	var m Meta
	m.Set("ti", "Song")
	m.Set("ar", "Artist")

	var seen []string
	for key := range m.All() {
		seen = append(seen, key)
		break
	}
	if len(seen) != 1 || seen[0] != "ti" {
		t.Errorf("early break yielded %v", seen)
	}
}

func TestMetaOffsetMilliseconds(t *testing.T) {
	tests := []struct {
		name    string
		offset  string
		want    int64
		wantErr bool
	}{
		{"unset", "", 0, false},
		{"positive with sign", "+500", 500, false},
		{"negative", "-250", -250, false},
		{"bare number", "500", 500, false},
		{"padded", " 500 ", 500, false},
		{"garbage", "fast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Meta{Offset: tt.offset}
			got, err := m.OffsetMilliseconds()
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("error = %T (%v), want *FormatError", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("OffsetMilliseconds() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("OffsetMilliseconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMetaCloneAndEqual(t *testing.T) {
	var m Meta
	m.Set("ti", "Song")
	m.Set("custom", "x")

	clone := m.Clone()
	if !m.Equal(clone) {
		t.Fatal("clone is not Equal to the original")
	}

	clone.Set("custom", "changed")
	if got, _ := m.Get("custom"); got != "x" {
		t.Errorf("mutating the clone changed the original to %q", got)
	}
	if m.Equal(clone) {
		t.Error("Equal() = true after diverging")
	}
}
