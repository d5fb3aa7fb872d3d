package prxz

import "math"

// Short abbreviates value with the largest magnitude suffix whose threshold
// its absolute value reaches (тыс, млн, млрд, трлн, квадр), printed with
// decimals fraction digits and a dot separator. Smaller values print plain.
func (f *Formatter) Short(value any, decimals int) string {
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
	abs := math.Abs(n)
	for _, unit := range f.shortUnits {
		if unit.Threshold > 0 && abs >= unit.Threshold {
			return jsToFixed(n/unit.Threshold, d) + " " + unit.Suffix
		}
	}
	return jsToFixed(n, d)
}
