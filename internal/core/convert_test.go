package core

import (
	"math"
	"testing"
)

// ----------------------------------------------------------------------------
// ToNumeric Tests
// ----------------------------------------------------------------------------

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		wantOK bool
		want   float64
	}{
		// Valid: JSON numbers
		{name: "json number", input: 9.2, wantOK: true, want: 9.2},
		{name: "json zero", input: 0.0, wantOK: true, want: 0},
		{name: "json negative", input: -1.5, wantOK: true, want: -1.5},

		// Valid: numeric strings
		{name: "integer string", input: "9", wantOK: true, want: 9},
		{name: "decimal string", input: "8.75", wantOK: true, want: 8.75},
		{name: "leading decimal point", input: ".5", wantOK: true, want: 0.5},
		{name: "trailing decimal point", input: "7.", wantOK: true, want: 7},
		{name: "scientific notation", input: "1.5e2", wantOK: true, want: 150},
		{name: "scientific notation uppercase", input: "1.5E-1", wantOK: true, want: 0.15},
		{name: "leading whitespace", input: "  6.1", wantOK: true, want: 6.1},
		{name: "trailing note", input: "8.7 (est.)", wantOK: true, want: 8.7},
		{name: "trailing unit", input: "6nM", wantOK: true, want: 6},

		// Invalid
		{name: "empty string", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
		{name: "letters", input: "n/a", wantOK: false},
		{name: "unit before number", input: "~8.1", wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "bool", input: true, wantOK: false},
		{name: "NaN", input: math.NaN(), wantOK: false},
		{name: "infinity", input: math.Inf(1), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNumeric(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ToNumeric(%v) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToNumeric(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToYear Tests
// ----------------------------------------------------------------------------

func TestToYear(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"string year", "2010", 2010},
		{"json number", 1992.0, 1992},
		{"fractional number truncates", 2001.9, 2001},
		{"year with suffix", "2010a", 2010},
		{"year with month", "2010-05", 2010},
		{"padded", " 1995 ", 1995},
		{"empty", "", 0},
		{"letters", "unknown", 0},
		{"negative", "-5", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToYear(tt.input); got != tt.want {
				t.Errorf("ToYear(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToBool Tests
// ----------------------------------------------------------------------------

func TestToBool(t *testing.T) {
	tests := []struct {
		input any
		want  bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Y", true},
		{"t", true},
		{"1", true},
		{1.0, true},
		{0.0, false},
		{"no", false},
		{"false", false},
		{"", false},
		{"maybe", false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := ToBool(tt.input); got != tt.want {
			t.Errorf("ToBool(%#v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ----------------------------------------------------------------------------
// ToText Tests
// ----------------------------------------------------------------------------

func TestToText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain", "Thrombin", "Thrombin"},
		{"trims whitespace", "  VEGF165 \t", "VEGF165"},
		{"whitespace only", "   ", ""},
		{"integer number", 12.0, "12"},
		{"decimal number", 0.5, "0.5"},
		{"bool", false, "false"},
		{"nil", nil, ""},
		{"object", map[string]any{"a": 1.0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToText(tt.input); got != tt.want {
				t.Errorf("ToText(%#v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"P", LevelP},
		{"p", LevelP},
		{" A ", LevelA},
		{"B", LevelB},
		{"C", LevelC},
		{"", LevelC},
		{"D", LevelC},
		{"PA", LevelC},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
