package prxz

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// InputKind tags the shape of a raw value handed to a formatter.
type InputKind int

const (
	InputEmpty InputKind = iota
	InputNumber
	InputBoolean
	InputNumericString
	InputNonNumericString
	InputArray
	InputObject
)

func (k InputKind) String() string {
	switch k {
	case InputEmpty:
		return "empty"
	case InputNumber:
		return "number"
	case InputBoolean:
		return "boolean"
	case InputNumericString:
		return "numeric-string"
	case InputNonNumericString:
		return "string"
	case InputArray:
		return "array"
	case InputObject:
		return "object"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// Input is a classified raw value.
type Input struct {
	Kind InputKind
	// Number is set for numbers and booleans (1 or 0).
	Number float64
	// Text is the original string for both string kinds.
	Text  string
	Items []any
	Raw   any
}

// Classify resolves v into one of the input kinds. Pointers are followed,
// time.Time becomes its Unix time in milliseconds and fmt.Stringer values are
// treated as strings. Values of any other kind classify as NaN numbers.
func Classify(v any) Input {
	if IsEmptyValue(v) {
		return Input{Kind: InputEmpty, Raw: v}
	}
	v = indirect(v)

	switch val := v.(type) {
	case bool:
		n := 0.0
		if val {
			n = 1
		}
		return Input{Kind: InputBoolean, Number: n, Raw: v}
	case time.Time:
		return Input{Kind: InputNumber, Number: float64(val.UnixMilli()), Raw: v}
	case json.Number:
		return classifyString(string(val), v)
	case string:
		return classifyString(val, v)
	case fmt.Stringer:
		return classifyString(val.String(), v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Input{Kind: InputNumber, Number: float64(rv.Int()), Raw: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Input{Kind: InputNumber, Number: float64(rv.Uint()), Raw: v}
	case reflect.Float32, reflect.Float64:
		return Input{Kind: InputNumber, Number: rv.Float(), Raw: v}
	case reflect.String:
		return classifyString(rv.String(), v)
	case reflect.Bool:
		return Classify(rv.Bool())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return Input{Kind: InputArray, Items: items, Raw: v}
	case reflect.Map, reflect.Struct:
		return Input{Kind: InputObject, Raw: v}
	}
	return Input{Kind: InputNumber, Number: math.NaN(), Raw: v}
}

func classifyString(s string, raw any) Input {
	if IsNumericString(s) {
		return Input{Kind: InputNumericString, Text: s, Raw: raw}
	}
	return Input{Kind: InputNonNumericString, Text: s, Raw: raw}
}

func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// lenientScalar coerces a scalar the way fval and fperc read it. A string that
// is not numeric and does not start like a number is handed back trimmed in
// text with verbatim set.
func lenientScalar(in Input) (n float64, text string, verbatim bool) {
	switch in.Kind {
	case InputNumber, InputBoolean:
		return in.Number, "", false
	case InputNumericString:
		return ParseNumber(in.Text), "", false
	case InputNonNumericString:
		trimmed := strings.TrimSpace(in.Text)
		if trimmed != "" && !startsLikeNumber(trimmed) {
			return 0, trimmed, true
		}
		return ParseNumber(trimmed), "", false
	}
	return math.NaN(), "", false
}

// strictScalar coerces only numbers, booleans, numeric strings and
// single-element arrays of those.
func strictScalar(in Input) (float64, bool) {
	switch in.Kind {
	case InputNumber, InputBoolean:
		return in.Number, true
	case InputNumericString:
		return ParseNumber(in.Text), true
	case InputArray:
		if len(in.Items) == 1 {
			return strictScalar(Classify(in.Items[0]))
		}
	}
	return 0, false
}

func startsLikeNumber(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r) || strings.ContainsRune("+-.,", r)
}

// stringify renders v the way a dynamic language prints an arbitrary value:
// arrays join their elements with commas, maps and structs become
// [object Object].
func stringify(v any) string {
	v = indirect(v)
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return string(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case time.Time:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}

	in := Classify(v)
	switch in.Kind {
	case InputNumber:
		return jsNumberString(in.Number)
	case InputArray:
		parts := make([]string, len(in.Items))
		for i, item := range in.Items {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	case InputObject:
		return "[object Object]"
	case InputEmpty:
		return ""
	}
	return fmt.Sprint(v)
}
