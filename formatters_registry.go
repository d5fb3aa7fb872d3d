package prxz

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// HelperFunc is the shape of every registered helper: the locale first, then
// the value and the helper's own optional arguments.
type HelperFunc func(locale string, value any, args ...any) string

// FormatterProvider contributes helpers for one locale.
type FormatterProvider func(locale string) map[string]HelperFunc

// Helper names registered by default.
const (
	HelperValue   = "fval"
	HelperPercent = "fperc"
	HelperMoney   = "fmoney"
	HelperShort   = "fshortval"
	HelperDate    = "fdate"
)

var defaultHelperNames = []string{HelperValue, HelperPercent, HelperMoney, HelperShort, HelperDate}

// FormatterRegistry manages helper functions and locale specific overrides
type FormatterRegistry struct {
	mu         sync.RWMutex
	defaults   map[string]HelperFunc
	overrides  map[string]map[string]HelperFunc
	providers  map[string]FormatterProvider
	globals    map[string]HelperFunc
	funcCache  map[string]map[string]HelperFunc
	resolver   FallbackResolver
	locales    []string
	source     func(locale string) *Formatter
	formatters map[string]*Formatter
}

type formatterRegistryConfig struct {
	resolver  FallbackResolver
	locales   []string
	providers map[string]FormatterProvider
	source    func(locale string) *Formatter
}

type FormatterRegistryOption func(*formatterRegistryConfig)

func WithFormatterRegistryResolver(resolver FallbackResolver) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.resolver = resolver
	}
}

func WithFormatterRegistryLocales(locales ...string) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.locales = append(frc.locales, locales...)
	}
}

func WithFormatterRegistryProvider(locale string, provider FormatterProvider) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		if locale == "" || provider == nil {
			return
		}
		if frc.providers == nil {
			frc.providers = make(map[string]FormatterProvider)
		}
		frc.providers[locale] = provider
	}
}

// WithFormatterRegistrySource sets how the default helpers obtain the
// formatter of a locale. Without a source every locale uses Default().
func WithFormatterRegistrySource(source func(locale string) *Formatter) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.source = source
	}
}

// NewFormatterRegistry seeds a registry with the default helpers
func NewFormatterRegistry(opts ...FormatterRegistryOption) *FormatterRegistry {
	cfg := formatterRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &FormatterRegistry{
		overrides:  make(map[string]map[string]HelperFunc),
		providers:  make(map[string]FormatterProvider),
		resolver:   cfg.resolver,
		locales:    normalizeLocales(cfg.locales),
		source:     cfg.source,
		formatters: make(map[string]*Formatter),
	}

	registry.defaults = map[string]HelperFunc{
		HelperValue:   registry.valueHelper,
		HelperPercent: registry.percentHelper,
		HelperMoney:   registry.moneyHelper,
		HelperShort:   registry.shortHelper,
		HelperDate:    registry.dateHelper,
	}

	for locale, provider := range cfg.providers {
		registry.RegisterProvider(locale, provider)
	}
	registry.seedFallbacks()

	return registry
}

// Register sets or replaces the implementation of the <name> helper for all locales
func (r *FormatterRegistry) Register(name string, fn HelperFunc) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.globals == nil {
		r.globals = make(map[string]HelperFunc)
	}
	r.globals[name] = fn
	r.invalidateFuncCacheLocked()
}

// RegisterLocale registers a locale specific override for the <name> helper
func (r *FormatterRegistry) RegisterLocale(locale, name string, fn HelperFunc) {
	locale = normalizeLocale(locale)
	if locale == "" || name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	helpers := r.overrides[locale]
	if helpers == nil {
		helpers = make(map[string]HelperFunc)
		r.overrides[locale] = helpers
	}
	helpers[name] = fn
	r.invalidateFuncCacheLocked()
}

func (r *FormatterRegistry) RegisterProvider(locale string, provider FormatterProvider) {
	locale = normalizeLocale(locale)
	if locale == "" || provider == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[locale] = provider
	r.invalidateFuncCacheLocked()
}

// Formatter returns the helper implementation for the given name and locale
func (r *FormatterRegistry) Formatter(name, locale string) (HelperFunc, bool) {
	if name == "" {
		return nil, false
	}
	fn, ok := r.funcMapForLocale(locale)[name]
	return fn, ok && fn != nil
}

// Call runs the <name> helper for locale.
func (r *FormatterRegistry) Call(name, locale string, value any, args ...any) (string, error) {
	fn, ok := r.Formatter(name, locale)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHelper, name)
	}
	if locale == "" {
		locale = r.defaultLocale()
	}
	return fn(locale, value, args...), nil
}

// FuncMap returns all helper functions applicable to the locale
func (r *FormatterRegistry) FuncMap(locale string) map[string]HelperFunc {
	return maps.Clone(r.funcMapForLocale(locale))
}

// Locales lists the locales the registry was configured with.
func (r *FormatterRegistry) Locales() []string {
	return slices.Clone(r.locales)
}

func (r *FormatterRegistry) funcMapForLocale(locale string) map[string]HelperFunc {
	key := normalizeLocale(locale)

	r.mu.RLock()
	if cached, ok := r.funcCache[key]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcCache == nil {
		r.funcCache = make(map[string]map[string]HelperFunc)
	} else if cached, ok := r.funcCache[key]; ok {
		return cached
	}

	effective := key
	if effective == "" {
		effective = r.defaultLocale()
	}

	result := maps.Clone(r.defaults)
	candidates := r.candidateLocales(effective)

	// least specific first so the target locale wins
	for i := len(candidates) - 1; i >= 0; i-- {
		candidate := candidates[i]

		if provider, ok := r.providers[candidate]; ok && provider != nil {
			if helpers := provider(candidate); helpers != nil {
				maps.Copy(result, helpers)
			}
		}

		if helpers, ok := r.overrides[candidate]; ok {
			maps.Copy(result, helpers)
		}
	}

	maps.Copy(result, r.globals)

	r.funcCache[key] = result
	return result
}

func (r *FormatterRegistry) invalidateFuncCacheLocked() {
	r.funcCache = nil
}

func (r *FormatterRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || slices.Contains(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}

	return chain
}

func (r *FormatterRegistry) seedFallbacks() {
	resolver, ok := r.resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}

	for _, locale := range r.locales {
		if existing := resolver.Resolve(locale); len(existing) > 0 {
			continue
		}
		if parents := localeParentChain(locale); len(parents) > 0 {
			resolver.Set(locale, parents...)
		}
	}
}

func (r *FormatterRegistry) defaultLocale() string {
	if len(r.locales) > 0 {
		return r.locales[0]
	}
	return defaultLocale
}

// formatterFor returns the cached formatter of locale.
func (r *FormatterRegistry) formatterFor(locale string) *Formatter {
	if r.source == nil {
		return Default()
	}

	key := normalizeLocale(locale)

	r.mu.RLock()
	formatter, ok := r.formatters[key]
	r.mu.RUnlock()
	if ok {
		return formatter
	}

	formatter = r.source(key)
	if formatter == nil {
		formatter = Default()
	}

	r.mu.Lock()
	r.formatters[key] = formatter
	r.mu.Unlock()
	return formatter
}

func (r *FormatterRegistry) valueHelper(locale string, value any, args ...any) string {
	decimals := helperDecimals(args, 0, Fixed(DefaultDecimals))
	localize := helperBool(args, 1, true)
	return r.formatterFor(locale).Value(value, decimals, localize).String()
}

func (r *FormatterRegistry) percentHelper(locale string, value any, args ...any) string {
	return r.formatterFor(locale).Percent(value, helperInt(args, 0, DefaultDecimals))
}

func (r *FormatterRegistry) moneyHelper(locale string, value any, args ...any) string {
	currencyCode := helperString(args, 0, DefaultCurrency)
	return r.formatterFor(locale).Money(value, currencyCode, helperInt(args, 1, DefaultDecimals))
}

func (r *FormatterRegistry) shortHelper(locale string, value any, args ...any) string {
	return r.formatterFor(locale).Short(value, helperInt(args, 0, DefaultDecimals))
}

func (r *FormatterRegistry) dateHelper(locale string, value any, args ...any) string {
	return r.formatterFor(locale).Date(value, helperString(args, 0, DefaultDateFormat))
}
