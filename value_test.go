package prxz

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const nb = narrowNoBreakSpace

func TestFvalScalars(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		decimals Decimals
		localize bool
		want     string
	}{
		{"below thousand", 999, Fixed(2), true, "999,00"},
		{"thousand", 1000, Fixed(2), true, "1" + nb + "000,00"},
		{"zero", 0, Fixed(2), true, "0,00"},
		{"negative zero", math.Copysign(0, -1), Fixed(2), true, "0,00"},
		{"tiny switches to auto", 0.0001, Fixed(2), true, "0,0001"},
		{"float noise", 0.1 + 0.2, Fixed(2), true, "0,30"},
		{"max safe integer", float64(maxSafeInteger), Fixed(2), true, "9" + nb + "007" + nb + "199" + nb + "254" + nb + "740" + nb + "991,00"},
		{"negative grouped", -1234567.5, Fixed(1), true, "-1" + nb + "234" + nb + "567,5"},
		{"integer types", int64(25), Fixed(0), true, "25"},
		{"auto", 1234.5678, Auto, true, "1" + nb + "234,5678"},
		{"auto integer", 42.0, Auto, true, "42"},
		{"scientific", 3e16, Auto, true, "3.00e16"},
		{"plain", 1234.5, Fixed(2), false, "1234,50"},
		{"boolean", true, Fixed(2), true, "1,00"},
		{"dotted grouping string", "1.234,56", Fixed(2), true, "1,23"},
		{"numeric prefix", "123abc", Fixed(2), true, "123,00"},
		{"text", "abc123", Fixed(2), true, "abc123"},
		{"text trimmed", "  hello ", Fixed(2), true, "hello"},
		{"exponent string", "1.234e5", Fixed(2), true, "123" + nb + "400,00"},
		{"spaced string", "1 234,5", Fixed(2), true, "1" + nb + "234,50"},
		{"unparseable sign", "-", Fixed(2), true, "-"},
		{"empty string", "", Fixed(2), true, "-"},
		{"nil", nil, Fixed(2), true, "-"},
		{"empty list", []any{}, Fixed(2), true, "-"},
		{"nan", math.NaN(), Fixed(2), true, "NaN"},
		{"infinity", math.Inf(1), Fixed(2), true, "∞"},
		{"negative infinity", math.Inf(-1), Fixed(2), true, "-∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fval(tt.value, tt.decimals, tt.localize)
			if got.Kind != ValueText {
				t.Fatalf("Fval(%#v) kind = %v, want text", tt.value, got.Kind)
			}
			if got.Text != tt.want {
				t.Fatalf("Fval(%#v) = %q, want %q", tt.value, got.Text, tt.want)
			}
		})
	}
}

func TestFvalPlainOutputReadsBackRounded(t *testing.T) {
	values := []float64{
		0.001, 0.0149, -0.004, 0.5, 1, 1.234, -1.236, 12.3456,
		999.999, 1000, 1234.5678, -98765.4321, 123456789.987, 7.77e11,
	}

	for _, n := range values {
		t.Run(strconv.FormatFloat(n, 'g', -1, 64), func(t *testing.T) {
			text := Fval(n, Fixed(2), false).Text
			got, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
			if err != nil {
				t.Fatalf("Fval(%v) = %q does not parse: %v", n, text, err)
			}

			want := math.Round(n*100) / 100
			if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
				t.Fatalf("Fval(%v) = %q reads back as %v, want %v", n, text, got, want)
			}
		})
	}
}

func TestFvalObjectIsNull(t *testing.T) {
	got := Fval(map[string]any{}, Fixed(2), true)
	if !got.IsNull() {
		t.Fatalf("Fval(map) = %+v, want null", got)
	}
	if got.String() != "null" {
		t.Fatalf("String() = %q", got.String())
	}

	if got := Fval(struct{ A int }{1}, Fixed(2), true); !got.IsNull() {
		t.Fatalf("Fval(struct) = %+v, want null", got)
	}
}

func TestFvalList(t *testing.T) {
	got := Fval([]any{123, 456}, Fixed(2), true)
	want := ValueResult{
		Kind: ValueList,
		Items: []ListItem{
			{Text: "123,00", Number: 123, Numeric: true},
			{Text: "456,00", Number: 456, Numeric: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Fval list mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "[123,00, 456,00]" {
		t.Fatalf("String() = %q", got.String())
	}
}

func TestFvalListElements(t *testing.T) {
	got := Fval([]any{
		1234.5,
		[]any{nil, 5},
		map[string]any{"a": 1},
		[]any{},
		"abc",
		math.NaN(),
	}, Fixed(2), true)

	want := []ListItem{
		{Text: "1" + nb + "234,50", Number: 1234.5, Numeric: true},
		{Text: "5,00", Number: 5, Numeric: true},
		{Text: "[object]"},
		{Text: "-"},
		{Text: "abc"},
		{Text: "NaN"},
	}
	if diff := cmp.Diff(want, got.Items); diff != "" {
		t.Fatalf("Fval elements mismatch (-want +got):\n%s", diff)
	}
}

type panickingStringer struct{}

func (panickingStringer) String() string { panic("boom") }

func TestFvalRecoversFailingElement(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	formatter := NewFormatter(FormattingRules{}, zap.New(core))

	got := formatter.Value([]any{1, panickingStringer{}, 2}, Fixed(0), true)
	if got.String() != "[1, -, 2]" {
		t.Fatalf("Value = %q, want %q", got.String(), "[1, -, 2]")
	}

	entries := logs.FilterMessage("value element formatting failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["index"] != int64(1) {
		t.Fatalf("index field = %#v", fields["index"])
	}
	if fields["locale"] != "ru" {
		t.Fatalf("locale field = %#v", fields["locale"])
	}
}

func TestFvalUsesLocaleSeparators(t *testing.T) {
	formatter := NewFormatter(FormattingRules{
		Locale: "en",
		Number: NumberRules{DecimalSep: ".", GroupSep: ","},
	}, nil)

	if got := formatter.Value(1234567.891, Fixed(2), true).Text; got != "1,234,567.89" {
		t.Fatalf("Value = %q", got)
	}

	items := formatter.Value([]any{1234.5}, Fixed(1), true).Items
	if len(items) != 1 || !items[0].Numeric || items[0].Number != 1234.5 {
		t.Fatalf("list item = %+v", items)
	}
}
