package prxz

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// zero code points of the decimal digit blocks folded to ASCII
var digitZeros = []rune{
	0x0660, // Arabic-Indic
	0x06F0, // Extended Arabic-Indic
	0x0966, // Devanagari
	0x09E6, // Bengali
	0x0A66, // Gurmukhi
	0x0AE6, // Gujarati
	0x0B66, // Oriya
	0x0BE6, // Tamil
	0x0C66, // Telugu
	0x0CE6, // Kannada
	0x0D66, // Malayalam
	0x0E50, // Thai
	0x0ED0, // Lao
	0x1040, // Myanmar
	0x17E0, // Khmer
}

var spaceFolder = strings.NewReplacer("\u00A0", " ", "\u2009", " ", "\u202F", " ", "\u205F", " ")

var floatPrefixPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// NormalizeDigits folds non-Latin decimal digits and full-width characters to ASCII.
func NormalizeDigits(s string) string {
	folded := strings.Map(func(r rune) rune {
		for _, zero := range digitZeros {
			if r >= zero && r <= zero+9 {
				return '0' + (r - zero)
			}
		}
		return r
	}, s)
	return width.Narrow.String(folded)
}

func cleanNumberString(s string) string {
	clean := spaceFolder.Replace(strings.TrimSpace(s))
	clean = NormalizeDigits(clean)

	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '+', r == '-', r == 'e', r == 'E':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseSeparators turns grouping commas and a decimal comma into plain dot notation.
func parseSeparators(s string) string {
	if strings.Contains(s, ".") {
		return strings.ReplaceAll(s, ",", "")
	}

	switch strings.Count(s, ",") {
	case 0:
		return s
	case 1:
		return strings.Replace(s, ",", ".", 1)
	default:
		last := strings.LastIndex(s, ",")
		return strings.ReplaceAll(s[:last], ",", "") + "." + s[last+1:]
	}
}

// ParseNumber converts a numeric-looking string in any common notation to a
// float64. It returns NaN when no number can be read.
func ParseNumber(s string) float64 {
	normalized := parseSeparators(cleanNumberString(s))

	if parts := strings.Split(normalized, "."); len(parts) > 1 {
		normalized = parts[0] + "." + strings.Join(parts[1:], "")
	}
	return parseFloatPrefix(normalized)
}

// parseFloatPrefix reads the longest leading decimal literal, ignoring the rest.
func parseFloatPrefix(s string) float64 {
	match := floatPrefixPattern.FindString(strings.TrimLeft(s, " \t\n\r"))
	if match == "" {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return n
}
