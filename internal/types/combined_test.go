package types

import "testing"

func mustParseLyricLine(t *testing.T, s string) LyricLine {
	t.Helper()
	line, err := ParseLyricLine(s)
	if err != nil {
		t.Fatalf("ParseLyricLine(%q) failed: %v", s, err)
	}
	return line
}

func TestNewCombinedLineRestampsTranslations(t *testing.T) {
	origin := mustParseLyricLine(t, "[00:10.00]こんにちは")
	translation := mustParseLyricLine(t, "[00:55.00]hello")

	combined := NewCombinedLine(origin, translation)

	members := combined.Lines()
	if len(members) != 2 {
		t.Fatalf("Lines() has %d members, want 2", len(members))
	}
	restamped, ok := members[1].(LyricLine)
	if !ok {
		t.Fatalf("translation member is %T, want LyricLine", members[1])
	}
	if !restamped.Time.Equal(origin.Time) {
		t.Errorf("translation time = %v, want origin time %v", restamped.Time, origin.Time)
	}
	// The caller's line is untouched; restamping works on a copy.
	if translation.Time.Milliseconds() != 55000 {
		t.Errorf("caller's translation mutated to %v", translation.Time)
	}
	if !combined.StartTime().Equal(origin.Time) {
		t.Errorf("StartTime() = %v, want origin time %v", combined.StartTime(), origin.Time)
	}
}

func TestNewCombinedLineKeepsEnhancedTiming(t *testing.T) {
	origin := mustParseLyricLine(t, "[00:10.00]text")
	enhanced, err := ParseEnhancedLine("[00:55.000]he[00:56.000]llo[00:57.000]")
	if err != nil {
		t.Fatalf("ParseEnhancedLine failed: %v", err)
	}

	combined := NewCombinedLine(origin, enhanced)

	members := combined.Lines()
	kept, ok := members[1].(EnhancedLine)
	if !ok {
		t.Fatalf("translation member is %T, want EnhancedLine", members[1])
	}
	if kept.StartTime().Milliseconds() != 55000 {
		t.Errorf("enhanced translation restamped to %v", kept.StartTime())
	}
}

func TestCombinedLineRendering(t *testing.T) {
	origin := mustParseLyricLine(t, "[00:10.00]こんにちは")
	translation := mustParseLyricLine(t, "[00:10.00]hello")
	empty := mustParseLyricLine(t, "[00:10.00]")

	tests := []struct {
		name string
		line CombinedLine
		want string
	}{
		{
			name: "origin and translation on separate physical lines",
			line: NewCombinedLine(origin, translation),
			want: "[00:10.00]こんにちは\n[00:10.00]hello",
		},
		{
			name: "empty translations are skipped",
			line: NewCombinedLine(origin, empty),
			want: "[00:10.00]こんにちは",
		},
		{
			name: "empty origin renders only its time tag",
			line: NewCombinedLine(empty, translation),
			want: "[00:10.00]",
		},
		{
			name: "origin alone",
			line: NewCombinedLine(origin),
			want: "[00:10.00]こんにちは",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.lrcString(2); got != tt.want {
				t.Errorf("lrcString(2) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombinedLineLinesIsACopy(t *testing.T) {
	origin := mustParseLyricLine(t, "[00:10.00]a")
	combined := NewCombinedLine(origin, mustParseLyricLine(t, "[00:10.00]b"))

	members := combined.Lines()
	members[0] = mustParseLyricLine(t, "[00:50.00]x")

	if got := combined.Lines()[0].(LyricLine).Text; got != "a" {
		t.Errorf("mutating the returned slice changed the member to %q", got)
	}
}

func TestCombinedLineZeroValue(t *testing.T) {
	var combined CombinedLine
	if got := combined.lrcString(2); got != "" {
		t.Errorf("zero value lrcString = %q, want empty", got)
	}
	if !combined.StartTime().IsZero() {
		t.Error("zero value StartTime() should be zero")
	}
}
