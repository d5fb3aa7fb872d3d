package prxz

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultDecimals   = 2
	DefaultCurrency   = "RUB"
	DefaultDateFormat = "dd.mm.yyyy"

	maxFractionDigits = 100
)

// Decimals selects how many fractional digits a value is rendered with:
// a fixed count or the auto-precision heuristic.
type Decimals struct {
	auto  bool
	fixed int
}

// Auto picks the decimal count per value from its magnitude and significant digits.
var Auto = Decimals{auto: true}

// Fixed returns a fixed decimal count clamped to [0, 100].
func Fixed(n int) Decimals {
	return Decimals{fixed: clampDecimals(n)}
}

func (d Decimals) IsAuto() bool { return d.auto }

// Places returns the fixed count; it is meaningless for Auto.
func (d Decimals) Places() int { return d.fixed }

func (d Decimals) String() string {
	if d.auto {
		return "auto"
	}
	return strconv.Itoa(d.fixed)
}

// ParseDecimals accepts "auto" or a non-negative integer.
func ParseDecimals(raw string) (Decimals, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "auto") {
		return Auto, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return Decimals{}, fmt.Errorf("%w: %q", ErrInvalidDecimals, raw)
	}
	return Fixed(n), nil
}

// DecimalRange is the outcome of DetermineDecimals.
type DecimalRange struct {
	Min        int
	Max        int
	Scientific bool
}

type ValueKind int

const (
	ValueText ValueKind = iota
	ValueList
	ValueNull
)

// ValueResult is what Fval returns: a rendered scalar, a list of rendered
// elements (non-empty root arrays) or null (root objects).
type ValueResult struct {
	Kind  ValueKind
	Text  string
	Items []ListItem
}

// ListItem is one rendered element of a root array. Number holds the rendered
// text coerced back into a number when Numeric is true.
type ListItem struct {
	Text    string
	Number  float64
	Numeric bool
}

func textResult(text string) ValueResult {
	return ValueResult{Kind: ValueText, Text: text}
}

func (r ValueResult) IsNull() bool { return r.Kind == ValueNull }

func (r ValueResult) String() string {
	switch r.Kind {
	case ValueNull:
		return "null"
	case ValueList:
		parts := make([]string, len(r.Items))
		for i, item := range r.Items {
			parts[i] = item.Text
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return r.Text
	}
}

func newListItem(text string, sym numberSymbols) ListItem {
	item := ListItem{Text: text}
	normalized := strings.ReplaceAll(text, sym.group, "")
	if sym.decimal != "." {
		normalized = strings.Replace(normalized, sym.decimal, ".", 1)
	}
	if !strictFloatPattern.MatchString(normalized) {
		return item
	}
	if n, err := strconv.ParseFloat(normalized, 64); err == nil && !IsSpecialNumber(n) {
		item.Number = n
		item.Numeric = true
	}
	return item
}

func clampDecimals(n int) int {
	switch {
	case n < 0:
		return 0
	case n > maxFractionDigits:
		return maxFractionDigits
	default:
		return n
	}
}
