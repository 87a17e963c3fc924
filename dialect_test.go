package lrc

import "testing"

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Dialect
		wantErr bool
	}{
		{"standard", "standard", DialectStandard, false},
		{"enhanced", "enhanced", DialectEnhanced, false},
		{"unknown", "karaoke", DialectStandard, true},
		{"empty", "", DialectStandard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDialect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDialect(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDialect_TimePrecision(t *testing.T) {
	if got := DialectStandard.TimePrecision(); got != 2 {
		t.Errorf("standard precision = %d, want 2", got)
	}
	if got := DialectEnhanced.TimePrecision(); got != 3 {
		t.Errorf("enhanced precision = %d, want 3", got)
	}
}

func TestDialect_String(t *testing.T) {
	if got := DialectStandard.String(); got != "standard" {
		t.Errorf("expected standard, got %q", got)
	}
	if got := DialectEnhanced.String(); got != "enhanced" {
		t.Errorf("expected enhanced, got %q", got)
	}
}
