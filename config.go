package prxz

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Config captures formatter setup
type Config struct {
	Locale   string
	Locales  []string
	Resolver FallbackResolver
	Logger   *zap.Logger

	rulesPath      string
	rulesOverrides map[string]string
	inlineRules    map[string]FormattingRules
	timeOffset     *time.Duration

	rulesProvider     *FormattingRulesProvider
	formatterRegistry *FormatterRegistry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Rules files are read here so
// that a broken file fails construction instead of a later format call.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	doc, err := cfg.loadRules()
	if err != nil {
		return nil, err
	}

	if cfg.Locale == "" {
		cfg.Locale = normalizeLocale(doc.DefaultLocale)
	}
	if cfg.Locale == "" {
		cfg.Locale = defaultLocale
	}

	cfg.rulesProvider = NewFormattingRulesProvider(doc, cfg.Resolver)
	cfg.Locales = normalizeLocales(append(cfg.Locales, cfg.Locale))

	return cfg, nil
}

// WithLocale sets the locale BuildFormatter resolves rules for
func WithLocale(locale string) Option {
	return func(c *Config) error {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return ErrEmptyLocale
		}
		c.Locale = normalized
		return nil
	}
}

// WithLocales registers additional locales served by the formatter registry
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithRulesFile merges a JSON or YAML rules document over the embedded defaults
func WithRulesFile(path string) Option {
	return func(c *Config) error {
		c.rulesPath = path
		c.invalidate()
		return nil
	}
}

// WithRulesOverride merges a single-locale rules file over that locale's rules
func WithRulesOverride(locale, path string) Option {
	return func(c *Config) error {
		if normalizeLocale(locale) == "" {
			return ErrEmptyLocale
		}
		if c.rulesOverrides == nil {
			c.rulesOverrides = make(map[string]string)
		}
		c.rulesOverrides[normalizeLocale(locale)] = path
		c.invalidate()
		return nil
	}
}

// WithRules merges rules given in code; they take precedence over every file.
func WithRules(locale string, rules FormattingRules) Option {
	return func(c *Config) error {
		key := normalizeLocale(locale)
		if key == "" {
			return ErrEmptyLocale
		}
		if c.inlineRules == nil {
			c.inlineRules = make(map[string]FormattingRules)
		}
		c.inlineRules[key] = mergeRules(c.inlineRules[key], rules)
		c.invalidate()
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTimeOffset replaces the offset dates are projected onto for every locale.
func WithTimeOffset(offset time.Duration) Option {
	return func(c *Config) error {
		c.timeOffset = &offset
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// BuildFormatter returns the formatter of the configured locale
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil {
		return Default(), nil
	}
	if cfg.rulesProvider == nil {
		return nil, fmt.Errorf("prxz: config not built with NewConfig")
	}
	return cfg.FormatterFor(cfg.Locale), nil
}

// FormatterFor returns a formatter for any locale, resolved through the
// fallback chain and the base language.
func (cfg *Config) FormatterFor(locale string) *Formatter {
	if cfg == nil || cfg.rulesProvider == nil {
		return Default()
	}
	if normalizeLocale(locale) == "" {
		locale = cfg.Locale
	}

	formatter := NewFormatter(cfg.rulesProvider.Get(locale), cfg.Logger)
	if cfg.timeOffset != nil {
		formatter = formatter.withOffset(*cfg.timeOffset)
	}
	return formatter
}

// RulesProvider exposes the resolved rules of every configured locale.
func (cfg *Config) RulesProvider() *FormattingRulesProvider {
	if cfg == nil {
		return nil
	}
	return cfg.rulesProvider
}

func (cfg *Config) FormatterRegistry() *FormatterRegistry {
	if cfg == nil {
		return nil
	}
	cfg.ensureFormatterRegistry()
	return cfg.formatterRegistry
}

func (cfg *Config) TemplateHelpers(helperCfg HelperConfig) map[string]any {
	if cfg == nil {
		return TemplateHelpers(helperCfg)
	}
	if helperCfg.Registry == nil {
		helperCfg.Registry = cfg.FormatterRegistry()
	}
	if helperCfg.Locale == "" {
		helperCfg.Locale = cfg.Locale
	}
	return TemplateHelpers(helperCfg)
}

func (cfg *Config) ensureFormatterRegistry() {
	if cfg.formatterRegistry != nil {
		return
	}

	cfg.formatterRegistry = NewFormatterRegistry(
		WithFormatterRegistryResolver(cfg.Resolver),
		WithFormatterRegistryLocales(cfg.Locales...),
		WithFormatterRegistrySource(cfg.FormatterFor),
	)
}

func (cfg *Config) invalidate() {
	cfg.rulesProvider = nil
	cfg.formatterRegistry = nil
}

func (cfg *Config) loadRules() (*RulesDocument, error) {
	loader := NewRulesLoader(cfg.rulesPath, cfg.Logger)
	for locale, path := range cfg.rulesOverrides {
		loader.AddOverride(locale, path)
	}

	doc, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if len(cfg.inlineRules) > 0 {
		mergeRulesDocument(doc, &RulesDocument{FormattingRules: cfg.inlineRules})
	}
	return doc, nil
}
