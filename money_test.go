package prxz

import (
	"math"
	"testing"
)

func TestFmoney(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		currency string
		decimals int
		want     string
	}{
		{"dollars", 1234.56, "USD", 2, "1" + nb + "234,56 $"},
		{"yen without decimals", 1234.56, "JPY", 0, "1" + nb + "235 ¥"},
		{"rubles four decimals", 0.12345, "RUB", 4, "0,1235 ₽"},
		{"zero", 0, "RUB", 2, "0,00 ₽"},
		{"default currency", 10, "", 2, "10,00 ₽"},
		{"lower case code", 10, "eur", 2, "10,00 €"},
		{"unknown code", 10, "XYZ", 2, "10,00 XYZ"},
		{"padded lower case code", 10, " usd ", 2, "10,00 $"},
		{"negative", -1234.5, "RUB", 2, "-1" + nb + "234,50 ₽"},
		{"negative rounding to zero", -0.001, "RUB", 2, "-0,00 ₽"},
		{"tiny", 0.000001, "RUB", 2, "0,00 ₽"},
		{"numeric string", "1 000,5", "RUB", 2, "1" + nb + "000,50 ₽"},
		{"single element list", []any{5}, "RUB", 2, "5,00 ₽"},
		{"boolean", true, "RUB", 0, "1 ₽"},
		{"text", "abc", "RUB", 2, "abc"},
		{"list", []any{1, 2}, "RUB", 2, "1,2"},
		{"object", map[string]any{"a": 1}, "RUB", 2, "[object Object]"},
		{"infinity", math.Inf(1), "RUB", 2, "Infinity"},
		{"nan", math.NaN(), "RUB", 2, "NaN"},
		{"nil", nil, "RUB", 2, "-"},
		{"empty string", "", "RUB", 2, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fmoney(tt.value, tt.currency, tt.decimals); got != tt.want {
				t.Fatalf("Fmoney(%#v, %q, %d) = %q, want %q", tt.value, tt.currency, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestMoneyUsesRulesSymbols(t *testing.T) {
	formatter := NewFormatter(FormattingRules{
		CurrencySymbols: map[string]string{"KZT": "₸"},
	}, nil)

	if got := formatter.Money(1500, "KZT", 0); got != "1"+nb+"500 ₸" {
		t.Fatalf("Money KZT = %q", got)
	}
	if got := formatter.Money(1, "RUB", 0); got != "1 ₽" {
		t.Fatalf("Money RUB = %q", got)
	}
}

func TestMoneyMatchesNonISOCodesVerbatim(t *testing.T) {
	formatter := NewFormatter(FormattingRules{
		CurrencySymbols: map[string]string{"BTC": "₿"},
	}, nil)

	tests := []struct {
		code string
		want string
	}{
		{"BTC", "2 ₿"},
		{"btc", "2 btc"},
		{"jpy", "2 ¥"},
	}

	for _, tt := range tests {
		if got := formatter.Money(2, tt.code, 0); got != tt.want {
			t.Errorf("Money(2, %q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
