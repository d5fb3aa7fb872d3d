package prxz

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	Registry *FormatterRegistry
	// Locale the value helpers render with; defaults to the registry's first locale.
	Locale string
	// LocaleKey is read by current_locale from a map context.
	LocaleKey string
}

// TemplateHelpers exposes the formatter helpers for text/template and
// html/template. Each default helper takes the value followed by the same
// optional arguments as its entry point:
//
//	{{ fval .Amount }}  {{ fval .Ratio "auto" false }}
//	{{ fperc .Share 1 }}  {{ fmoney .Price "USD" 2 }}
//	{{ fshortval .Views }}  {{ fdate .CreatedAt "dd mmm yyyy HH:MM" }}
//
// format calls any registered helper for an explicit locale and fails the
// template on unknown helper names.
func TemplateHelpers(cfg HelperConfig) map[string]any {
	registry := cfg.Registry
	if registry == nil {
		registry = NewFormatterRegistry()
	}

	locale := normalizeLocale(cfg.Locale)
	if locale == "" {
		locale = registry.defaultLocale()
	}

	helpers := make(map[string]any, len(defaultHelperNames)+2)
	for _, name := range defaultHelperNames {
		helpers[name] = func(value any, args ...any) string {
			fn, ok := registry.Formatter(name, locale)
			if !ok {
				return stringify(value)
			}
			return fn(locale, value, args...)
		}
	}

	helpers["format"] = func(name, helperLocale string, value any, args ...any) (string, error) {
		return registry.Call(name, helperLocale, value, args...)
	}

	helpers["current_locale"] = func(ctx any) string {
		if value := localeFromContext(ctx, cfg.LocaleKey); value != "" {
			return value
		}
		return locale
	}

	return helpers
}

func localeFromContext(ctx any, key string) string {
	switch v := ctx.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v[key].(string); ok {
			return s
		}
	case map[string]string:
		return v[key]
	}
	return ""
}

func helperArg(args []any, index int) (any, bool) {
	if index >= len(args) || args[index] == nil {
		return nil, false
	}
	return args[index], true
}

func helperDecimals(args []any, index int, fallback Decimals) Decimals {
	arg, ok := helperArg(args, index)
	if !ok {
		return fallback
	}
	switch v := arg.(type) {
	case Decimals:
		return v
	case string:
		if d, err := ParseDecimals(v); err == nil {
			return d
		}
		return fallback
	}
	if n, ok := integerArg(arg); ok && n >= 0 {
		return Fixed(n)
	}
	return fallback
}

func helperInt(args []any, index int, fallback int) int {
	arg, ok := helperArg(args, index)
	if !ok {
		return fallback
	}
	if n, ok := integerArg(arg); ok {
		return n
	}
	return fallback
}

func helperBool(args []any, index int, fallback bool) bool {
	arg, ok := helperArg(args, index)
	if !ok {
		return fallback
	}
	switch v := arg.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func helperString(args []any, index int, fallback string) string {
	arg, ok := helperArg(args, index)
	if !ok {
		return fallback
	}
	if s, ok := arg.(string); ok && s != "" {
		return s
	}
	return fallback
}

// integerArg accepts Go integers, integral floats (decoded JSON/YAML numbers)
// and integer strings.
func integerArg(arg any) (int, bool) {
	switch v := arg.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	case json.Number:
		n, err := strconv.Atoi(string(v))
		return n, err == nil
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
	}
	return 0, false
}
