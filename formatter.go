package prxz

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Formatter renders values and dates with one locale's rules. It holds no
// mutable state and is safe for concurrent use.
type Formatter struct {
	locale     string
	rules      FormattingRules
	symbols    numberSymbols
	shortUnits []ShortUnit
	offset     time.Duration
	logger     *zap.Logger
}

// NewFormatter builds a formatter over complete rules. A nil logger discards
// all output.
func NewFormatter(rules FormattingRules, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}

	rules = mergeRules(formattingRulesData[defaultLocale], rules)

	units := slices.Clone(rules.ShortUnits)
	slices.SortFunc(units, func(a, b ShortUnit) int {
		return cmp.Compare(b.Threshold, a.Threshold)
	})

	return &Formatter{
		locale:     rules.Locale,
		rules:      rules,
		symbols:    rules.numberSymbols(),
		shortUnits: units,
		offset:     rules.TimeOffset(),
		logger:     logger.With(zap.String("locale", rules.Locale)),
	}
}

// Locale reports the locale of the rules the formatter was built with.
func (f *Formatter) Locale() string { return f.locale }

// Rules returns a copy of the formatter's rules.
func (f *Formatter) Rules() FormattingRules { return cloneRules(f.rules) }

// TimeOffset is the offset added to every instant before rendering.
func (f *Formatter) TimeOffset() time.Duration { return f.offset }

func (f *Formatter) withOffset(offset time.Duration) *Formatter {
	clone := *f
	clone.offset = offset
	return &clone
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	return NewFormatter(formattingRulesData[defaultLocale], nil)
})

// Default returns the Russian formatter used by the package level functions.
func Default() *Formatter {
	return defaultFormatter()
}

// Fval formats a generic value. See Formatter.Value.
func Fval(value any, decimals Decimals, localize bool) ValueResult {
	return Default().Value(value, decimals, localize)
}

// Fperc formats a percentage. See Formatter.Percent.
func Fperc(value any, decimals int) string {
	return Default().Percent(value, decimals)
}

// Fmoney formats an amount of money. See Formatter.Money.
func Fmoney(value any, currency string, decimals int) string {
	return Default().Money(value, currency, decimals)
}

// Fshortval abbreviates a value with a magnitude suffix. See Formatter.Short.
func Fshortval(value any, decimals int) string {
	return Default().Short(value, decimals)
}

// Fdate renders a date through a token template. See Formatter.Date.
func Fdate(value any, format string) string {
	return Default().Date(value, format)
}
