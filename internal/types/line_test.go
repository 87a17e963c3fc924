package types

import (
	"errors"
	"testing"
)

func TestParseLyricLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMS   int64
		wantText string
	}{
		{"plain", "[00:01.00]hello", 1000, "hello"},
		{"empty text is a gap marker", "[00:01.00]", 1000, ""},
		{"text keeps spaces", "[00:01.00]  hello  ", 1000, "  hello  "},
		{"later tags stay in text", "[00:01.00]a[00:02.00]b", 1000, "a[00:02.00]b"},
		{"millisecond tag", "[00:19.845]line", 19845, "line"},
		{"bracketed junk in text", "[00:01.00]he[llo]", 1000, "he[llo]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLyricLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLyricLine(%q) failed: %v", tt.input, err)
			}
			if got.Time.Milliseconds() != tt.wantMS {
				t.Errorf("time = %dms, want %dms", got.Time.Milliseconds(), tt.wantMS)
			}
			if got.Text != tt.wantText {
				t.Errorf("text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestParseLyricLineErrors(t *testing.T) {
	var parseErr *ParseError
	var formatErr *FormatError

	_, err := ParseLyricLine("no time tag here")
	if !errors.As(err, &parseErr) {
		t.Errorf("missing tag error = %T, want *ParseError", err)
	}

	_, err = ParseLyricLine("junk[00:01.00]x")
	if !errors.As(err, &parseErr) {
		t.Errorf("non-leading tag error = %T, want *ParseError", err)
	}

	_, err = ParseLyricLine("[ti:Song]")
	if !errors.As(err, &parseErr) {
		t.Errorf("metadata tag error = %T, want *ParseError", err)
	}

	_, err = ParseLyricLine("[00:99.00]x")
	if !errors.As(err, &formatErr) {
		t.Errorf("out-of-range seconds error = %T, want *FormatError", err)
	}
}

func TestLyricLineString(t *testing.T) {
	line, err := ParseLyricLine("[00:19.845]hello")
	if err != nil {
		t.Fatalf("ParseLyricLine failed: %v", err)
	}

	// Canonical standard rendering truncates to centiseconds.
	if got := line.String(); got != "[00:19.84]hello" {
		t.Errorf("String() = %q, want %q", got, "[00:19.84]hello")
	}
	if got := line.lrcString(3); got != "[00:19.845]hello" {
		t.Errorf("lrcString(3) = %q, want %q", got, "[00:19.845]hello")
	}
	if !line.StartTime().Equal(line.Time) {
		t.Error("StartTime() should equal Time")
	}
}

func TestLyricLineRoundTrip(t *testing.T) {
	inputs := []string{
		"[00:01.00]hello",
		"[00:01.00]",
		"[12:34.56]multi word text",
	}
	for _, input := range inputs {
		line, err := ParseLyricLine(input)
		if err != nil {
			t.Fatalf("ParseLyricLine(%q) failed: %v", input, err)
		}
		if got := line.String(); got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}
