package prxz

import (
	"math"
	"testing"
)

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"arabic-indic", "١٢٣", "123"},
		{"extended arabic-indic", "۴۵", "45"},
		{"devanagari", "१०", "10"},
		{"thai", "๔๒", "42"},
		{"full width", "１２３", "123"},
		{"ascii untouched", "12.5", "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDigits(tt.input); got != tt.want {
				t.Fatalf("NormalizeDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"1,234.56", 1234.56},
		{"1 234,56", 1234.56},
		{"1 234,5", 1234.5},
		{"1 000", 1000},
		{"1.234,56", 1.23456},
		{"1,234,567", 1234.567},
		{"1.2.3", 1.23},
		{"-12.5e2", -1250},
		{"₽ 1 000", 1000},
		{"١٢٣", 123},
		{"12abc", 12},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.input); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, input := range []string{"", "abc", "--", "Infinity"} {
		if got := ParseNumber(input); !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q) = %v, want NaN", input, got)
		}
	}
}

func TestParseFloatPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123abc", 123},
		{"  7.5 kg", 7.5},
		{".5", 0.5},
		{"1.234e5", 123400},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		if got := parseFloatPrefix(tt.input); got != tt.want {
			t.Errorf("parseFloatPrefix(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, input := range []string{"abc123", "", "e5", "-", "Infinity", "-Infinity"} {
		if got := parseFloatPrefix(input); !math.IsNaN(got) {
			t.Errorf("parseFloatPrefix(%q) = %v, want NaN", input, got)
		}
	}
}
