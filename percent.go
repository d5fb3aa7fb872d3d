package prxz

import "math"

// Percent renders value with decimals fraction digits and a % sign, using a
// dot as decimal separator.
//
// A root array contributes its first non-empty element, looking one level
// into nested arrays. Objects render as [object Object]%. Non-numeric strings
// are returned trimmed without the sign.
func (f *Formatter) Percent(value any, decimals int) string {
	in := Classify(value)

	switch in.Kind {
	case InputEmpty:
		return f.rules.Markers.Empty
	case InputArray:
		picked, ok := pickPercentElement(in.Items)
		if !ok {
			return f.rules.Markers.Empty
		}
		in = Classify(picked)
	}

	if in.Kind == InputObject {
		return stringify(in.Raw) + "%"
	}

	n, text, verbatim := lenientScalar(in)
	if verbatim {
		return text
	}

	switch {
	case math.IsNaN(n):
		if in.Kind == InputNumericString || in.Kind == InputNonNumericString {
			return f.rules.Markers.Empty
		}
		return "NaN%"
	case math.IsInf(n, 0):
		return jsNumberString(n) + "%"
	}

	return roundFixed(n, clampDecimals(decimals)) + "%"
}

// roundFixed scales, rounds half up and prints with exactly digits fraction digits.
func roundFixed(n float64, digits int) string {
	if digits == 0 {
		return jsToFixed(jsRound(n), 0)
	}
	factor := math.Pow(10, float64(digits))
	return jsToFixed(jsRound(n*factor)/factor, digits)
}

func pickPercentElement(items []any) (any, bool) {
	for _, item := range items {
		if IsEmptyValue(item) {
			continue
		}

		inner := Classify(item)
		if inner.Kind != InputArray {
			return item, true
		}

		for _, nested := range inner.Items {
			if IsEmptyValue(nested) {
				continue
			}
			if Classify(nested).Kind != InputArray {
				return nested, true
			}
			break
		}
	}
	return nil, false
}
