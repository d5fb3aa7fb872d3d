package prxz

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const narrowNoBreakSpace = "\u202F"

// numberSymbols are the separators used when rendering a localized number.
type numberSymbols struct {
	decimal string
	group   string
}

var russianSymbols = numberSymbols{decimal: ",", group: narrowNoBreakSpace}

// DetermineDecimals resolves the fraction digit range for n. A fixed mode is
// returned as is; Auto inspects the magnitude and significant digits of n.
func DetermineDecimals(n float64, mode Decimals) DecimalRange {
	if !mode.IsAuto() {
		return DecimalRange{Min: mode.Places(), Max: mode.Places()}
	}

	if IsScientificNotationNeeded(n) {
		return DecimalRange{Scientific: true}
	}

	abs := math.Abs(n)
	if abs > 0 && abs < 0.001 {
		text := jsNumberString(abs)
		if mantissa, exp, ok := strings.Cut(text, "e-"); ok {
			firstNonZero := strings.IndexAny(strings.Replace(mantissa, ".", "", 1), "123456789")
			e, _ := strconv.Atoi(exp)
			digits := clampDecimals(e + firstNonZero - 1 + 2)
			return DecimalRange{Min: digits, Max: digits}
		}
		if _, fraction, ok := strings.Cut(text, "."); ok {
			digits := clampDecimals(len(fraction))
			return DecimalRange{Min: digits, Max: digits}
		}
	}

	if IsInteger(n) {
		return DecimalRange{}
	}

	_, fraction, _ := strings.Cut(jsNumberString(n), ".")
	significant := len(strings.TrimRight(fraction, "0"))
	switch {
	case significant <= 2:
		return DecimalRange{Min: significant, Max: significant}
	case significant <= 6:
		return DecimalRange{Min: 2, Max: significant}
	default:
		return DecimalRange{Min: 2, Max: 6}
	}
}

// FormatScientific renders n as a two-digit mantissa and a base-10 exponent,
// e.g. 1.50e-7.
func FormatScientific(n float64) string {
	if IsSpecialNumber(n) {
		return jsNumberString(n)
	}
	if n == 0 {
		return "0.00e0"
	}
	exp := math.Floor(math.Log10(math.Abs(n)))
	mantissa := n / math.Pow(10, exp)
	return jsToFixed(mantissa, 2) + "e" + strconv.Itoa(int(exp))
}

// FormatWithLocale renders n with Russian separators: a comma before the
// fraction and U+202F between digit groups when grouping is set.
func FormatWithLocale(n float64, r DecimalRange, grouping bool) string {
	return formatLocalized(n, r, grouping, russianSymbols)
}

func formatLocalized(n float64, r DecimalRange, grouping bool, sym numberSymbols) string {
	if IsSpecialNumber(n) {
		return jsNumberString(n)
	}

	maxDigits := clampDecimals(r.Max)
	minDigits := min(clampDecimals(r.Min), maxDigits)

	// rounding happens on the shortest decimal form of n, half away from zero
	fixed := decimal.NewFromFloat(math.Abs(n)).StringFixed(int32(maxDigits))
	integerPart, fraction, _ := strings.Cut(fixed, ".")
	fraction = strings.TrimRight(fraction, "0")
	if len(fraction) < minDigits {
		fraction += strings.Repeat("0", minDigits-len(fraction))
	}

	zero := strings.Trim(integerPart+fraction, "0") == ""

	if grouping {
		integerPart = groupDigits(integerPart, sym.group)
	}

	formatted := integerPart
	if fraction != "" {
		formatted += sym.decimal + fraction
	}

	// negative zero, and negatives rounding to zero, lose the sign
	if n < 0 && !zero {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatWithoutLocale renders n without grouping. Equal bounds use fixed-point
// output; otherwise n is rounded to r.Max digits and printed in shortest form.
func FormatWithoutLocale(n float64, r DecimalRange) string {
	return formatPlain(n, r, russianSymbols.decimal)
}

func formatPlain(n float64, r DecimalRange, decimalSep string) string {
	var formatted string
	if r.Min == r.Max {
		formatted = jsToFixed(n, clampDecimals(r.Min))
	} else {
		factor := math.Pow(10, float64(clampDecimals(r.Max)))
		formatted = jsNumberString(jsRound(n*factor) / factor)
	}

	if rest, ok := strings.CutPrefix(formatted, "-"); ok && strings.Trim(rest, "0.") == "" {
		formatted = rest
	}
	return strings.Replace(formatted, ".", decimalSep, 1)
}

func groupDigits(integerPart, sep string) string {
	if sep == "" || len(integerPart) <= 3 {
		return integerPart
	}

	var result strings.Builder
	for i, digit := range integerPart {
		if i > 0 && (len(integerPart)-i)%3 == 0 {
			result.WriteString(sep)
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// jsRound rounds half up towards positive infinity and keeps the sign of
// values that round to zero from below.
func jsRound(x float64) float64 {
	if IsSpecialNumber(x) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	if r == 0 && math.Signbit(x) {
		return math.Copysign(0, -1)
	}
	return r
}

// jsToFixed renders x with exactly digits fraction digits. Rounding works on
// the exact binary value of x and resolves ties away from zero.
func jsToFixed(x float64, digits int) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	if math.Abs(x) >= 1e21 {
		return jsNumberString(x)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled := new(big.Rat).SetFloat64(x)
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))

	quotient, remainder := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if remainder.Lsh(remainder, 1).Cmp(scaled.Denom()) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	text := quotient.String()
	if digits == 0 {
		return sign + text
	}
	if len(text) <= digits {
		text = strings.Repeat("0", digits-len(text)+1) + text
	}
	return sign + text[:len(text)-digits] + "." + text[len(text)-digits:]
}

// jsNumberString prints x the way ECMAScript Number#toString does: shortest
// round-trip digits, plain notation for decimal exponents in [-7, 21).
func jsNumberString(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k, n := len(digits), e+1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}
	expSign := "+"
	if n-1 < 0 {
		expSign = "-"
	}
	return sign + out + "e" + expSign + strconv.Itoa(absInt(n-1))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
