package prxz

import (
	"math"

	"go.uber.org/zap"
)

const (
	nestedObjectMarker = "[object]"
	nanMarker          = "NaN"
	infinityMarker     = "∞"
)

type outcome int

const (
	outcomeValue outcome = iota
	outcomeEmpty
	outcomeObject
	outcomeNaN
	outcomeInfinite
)

// rendered is a formatted value together with how it came about, so callers
// never have to sniff marker strings.
type rendered struct {
	text    string
	outcome outcome
}

// Value formats value with the given decimals.
//
// Empty input renders the empty marker, a root object renders as null and a
// non-empty root array renders each element. Numeric strings in any common
// notation are parsed; other strings are returned trimmed. NaN and infinities
// render as NaN, ∞ and -∞. Values below 0.001 in magnitude always use
// auto precision, and digit grouping starts at 1000.
func (f *Formatter) Value(value any, decimals Decimals, localize bool) ValueResult {
	in := Classify(value)

	switch in.Kind {
	case InputEmpty:
		return textResult(f.rules.Markers.Empty)
	case InputObject:
		return ValueResult{Kind: ValueNull}
	case InputArray:
		items := make([]ListItem, len(in.Items))
		for i, item := range in.Items {
			items[i] = newListItem(f.valueElement(i, item, decimals, localize), f.symbols)
		}
		return ValueResult{Kind: ValueList, Items: items}
	}

	return textResult(f.renderScalar(in, decimals, localize).text)
}

// valueElement renders one element of a root array. A failing element is
// logged and rendered as the empty marker.
func (f *Formatter) valueElement(index int, item any, decimals Decimals, localize bool) (text string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Warn("value element formatting failed",
				zap.Int("index", index),
				zap.Any("recovered", r),
			)
			text = f.rules.Markers.Empty
		}
	}()

	return f.renderNested(Classify(item), decimals, localize).text
}

func (f *Formatter) renderNested(in Input, decimals Decimals, localize bool) rendered {
	switch in.Kind {
	case InputEmpty:
		return rendered{text: f.rules.Markers.Empty, outcome: outcomeEmpty}
	case InputObject:
		return rendered{text: nestedObjectMarker, outcome: outcomeObject}
	case InputArray:
		for _, item := range in.Items {
			if r := f.renderNested(Classify(item), decimals, localize); r.outcome == outcomeValue {
				return r
			}
		}
		return rendered{text: f.rules.Markers.Empty, outcome: outcomeEmpty}
	}
	return f.renderScalar(in, decimals, localize)
}

func (f *Formatter) renderScalar(in Input, decimals Decimals, localize bool) rendered {
	n, text, verbatim := lenientScalar(in)
	if verbatim {
		return rendered{text: text}
	}

	switch {
	case math.IsNaN(n):
		if in.Kind == InputNumericString || in.Kind == InputNonNumericString {
			return rendered{text: f.rules.Markers.Empty, outcome: outcomeEmpty}
		}
		return rendered{text: nanMarker, outcome: outcomeNaN}
	case math.IsInf(n, 1):
		return rendered{text: infinityMarker, outcome: outcomeInfinite}
	case math.IsInf(n, -1):
		return rendered{text: "-" + infinityMarker, outcome: outcomeInfinite}
	}

	if !decimals.IsAuto() && n != 0 && math.Abs(n) < 0.001 {
		decimals = Auto
	}

	r := DetermineDecimals(n, decimals)
	switch {
	case r.Scientific:
		return rendered{text: FormatScientific(n)}
	case localize:
		return rendered{text: formatLocalized(n, r, math.Abs(n) >= 1000, f.symbols)}
	default:
		return rendered{text: formatPlain(n, r, f.symbols.decimal)}
	}
}
