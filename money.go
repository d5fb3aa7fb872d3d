package prxz

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
)

// Money renders value as an amount of currency with grouped digits and the
// currency symbol after the amount. ISO 4217 codes are matched in any case;
// codes without a symbol are used as their own symbol. Values that are not
// numeric come back as their string form.
func (f *Formatter) Money(value any, currencyCode string, decimals int) string {
	in := Classify(value)
	if in.Kind == InputEmpty {
		return f.rules.Markers.Empty
	}

	n, ok := strictScalar(in)
	if !ok {
		return stringify(value)
	}
	if IsSpecialNumber(n) {
		return jsNumberString(n)
	}

	d := clampDecimals(decimals)
	amount := formatLocalized(math.Abs(n), DecimalRange{Min: d, Max: d}, true, f.symbols)

	sign := ""
	if n < 0 {
		sign = "-"
	}
	return sign + amount + " " + f.currencySymbol(currencyCode)
}

func (f *Formatter) currencySymbol(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultCurrency
	}

	// ISO 4217 codes match case-insensitively; other codes only verbatim
	key := code
	if unit, err := currency.ParseISO(code); err == nil {
		key = unit.String()
	}
	if symbol, ok := f.rules.CurrencySymbols[key]; ok && symbol != "" {
		return symbol
	}
	return code
}
