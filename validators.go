package prxz

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxSafeInteger = 1<<53 - 1

var strictFloatPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

var numericStringCleaner = strings.NewReplacer(
	" ", "", "\t", "", "\n", "", "\r", "", "\v", "", "\f", "",
	"\u00A0", "", "\u2009", "", "\u202F", "", "\u205F", "", "\u3000", "",
	",", "",
)

// IsEmptyValue reports nil, nil pointers, the empty string and empty slices/arrays.
func IsEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmptyValue(rv.Elem().Interface())
	case reflect.Slice:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// IsObject reports maps and structs. time.Time is a date, not an object.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(time.Time); ok {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
		if _, ok := rv.Interface().(time.Time); ok {
			return false
		}
	}
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	}
	return false
}

func IsSpecialNumber(n float64) bool {
	return math.IsNaN(n) || math.IsInf(n, 0)
}

func IsInteger(n float64) bool {
	return !IsSpecialNumber(n) && n == math.Trunc(n)
}

// IsScientificNotationNeeded reports magnitudes that auto precision renders as
// mantissa and exponent.
func IsScientificNotationNeeded(n float64) bool {
	abs := math.Abs(n)
	return abs > 1e15 ||
		(abs > 0 && abs < 1e-6) ||
		abs > maxSafeInteger ||
		math.IsInf(abs, 1)
}

func IsNegativeZero(n float64) bool {
	return n == 0 && math.Signbit(n)
}

// IsNumericString reports whether s, once whitespace and grouping commas are
// removed, is a plain finite decimal number.
func IsNumericString(s string) bool {
	cleaned := numericStringCleaner.Replace(strings.TrimSpace(s))
	if !strictFloatPattern.MatchString(cleaned) {
		return false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	return err == nil && !IsSpecialNumber(n)
}
