package prxz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func litToken(s string) dateToken   { return dateToken{literal: s} }
func fieldToken(s string) dateToken { return dateToken{field: s} }

func TestTokenizeDateFormat(t *testing.T) {
	tests := []struct {
		format string
		want   []dateToken
	}{
		{"dd.mm.yyyy", []dateToken{fieldToken("dd"), litToken("."), fieldToken("mm"), litToken("."), fieldToken("yyyy")}},
		{"HH:MM:SS", []dateToken{fieldToken("HH"), litToken(":"), fieldToken("MM"), litToken(":"), fieldToken("SS")}},
		{"ddddd", []dateToken{fieldToken("dddd"), fieldToken("d")}},
		{"HHH", []dateToken{fieldToken("HH"), fieldToken("H")}},
		{"yyy", []dateToken{litToken("yyy")}},
		{"yyyyy", []dateToken{fieldToken("yyyy"), litToken("y")}},
		{"y", []dateToken{litToken("y")}},
		{"hh:MM tt", []dateToken{fieldToken("hh"), litToken(":"), fieldToken("MM"), litToken(" "), fieldToken("tt")}},
		{`\d\m dd`, []dateToken{litToken("dm "), fieldToken("dd")}},
		{`a\b`, []dateToken{litToken(`a\b`)}},
		{"{date} {time:s}", []dateToken{fieldToken("{date}"), litToken(" "), fieldToken("{time:s}")}},
		{"{time}{time}", []dateToken{fieldToken("{time}"), fieldToken("{time}")}},
		{"{x}", []dateToken{litToken("{x}")}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got := tokenizeDateFormat(tt.format)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(dateToken{})); diff != "" {
				t.Fatalf("tokenizeDateFormat(%q) mismatch (-want +got):\n%s", tt.format, diff)
			}
		})
	}
}

func TestDateFieldsValue(t *testing.T) {
	rules := formattingRulesData[defaultLocale]
	fields := dateFields{day: 7, month: 3, year: 905, hour: 12, minute: 5, second: 0}

	tests := map[string]string{
		"dd":   "07",
		"mm":   "03",
		"yy":   "05",
		"yyyy": "905",
		"hh":   "12",
		"h":    "12",
		"tt":   "PM",
		"t":    "p",
		"SS":   "00",
	}
	for token, want := range tests {
		if got := fields.value(token, rules); got != want {
			t.Errorf("value(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestPad2(t *testing.T) {
	for v, want := range map[int]string{0: "00", 9: "09", 10: "10", 123: "123"} {
		if got := pad2(v); got != want {
			t.Errorf("pad2(%d) = %q, want %q", v, got, want)
		}
	}
}
