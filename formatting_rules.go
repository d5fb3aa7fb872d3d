package prxz

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"golang.org/x/text/language"
)

// FormattingRules holds the locale data the formatters render with.
type FormattingRules struct {
	Locale            string            `json:"locale" yaml:"locale"`
	Number            NumberRules       `json:"number,omitempty" yaml:"number,omitempty"`
	CurrencySymbols   map[string]string `json:"currency_symbols,omitempty" yaml:"currency_symbols,omitempty"`
	ShortUnits        []ShortUnit       `json:"short_units,omitempty" yaml:"short_units,omitempty"`
	Months            NameRules         `json:"months,omitempty" yaml:"months,omitempty"`
	Weekdays          NameRules         `json:"weekdays,omitempty" yaml:"weekdays,omitempty"`
	AMPM              AMPMRules         `json:"ampm,omitempty" yaml:"ampm,omitempty"`
	Markers           MarkerRules       `json:"markers,omitempty" yaml:"markers,omitempty"`
	TimeOffsetMinutes *int              `json:"time_offset_minutes,omitempty" yaml:"time_offset_minutes,omitempty"`
}

// NumberRules defines the separators of localized numbers
type NumberRules struct {
	DecimalSep string `json:"decimal_separator,omitempty" yaml:"decimal_separator,omitempty"`
	GroupSep   string `json:"group_separator,omitempty" yaml:"group_separator,omitempty"`
}

// ShortUnit is one magnitude tier of abbreviated values.
type ShortUnit struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Suffix    string  `json:"suffix" yaml:"suffix"`
}

// NameRules lists short and full names, months from January and weekdays
// from Sunday.
type NameRules struct {
	Short []string `json:"short,omitempty" yaml:"short,omitempty"`
	Full  []string `json:"full,omitempty" yaml:"full,omitempty"`
}

type AMPMRules struct {
	AM string `json:"am,omitempty" yaml:"am,omitempty"`
	PM string `json:"pm,omitempty" yaml:"pm,omitempty"`
}

// MarkerRules are the literals returned for empty input and unreadable dates.
type MarkerRules struct {
	Empty       string `json:"empty,omitempty" yaml:"empty,omitempty"`
	InvalidDate string `json:"invalid_date,omitempty" yaml:"invalid_date,omitempty"`
}

// RulesDocument is the on-disk shape of a rules file.
type RulesDocument struct {
	DefaultLocale   string                     `json:"default_locale,omitempty" yaml:"default_locale,omitempty"`
	FormattingRules map[string]FormattingRules `json:"formatting_rules" yaml:"formatting_rules"`
}

const (
	defaultLocale            = "ru"
	defaultTimeOffsetMinutes = 180
)

// formattingRulesData is the ultimate fallback when no document provides a
// locale. It holds the Russian entry of the embedded rules document.
var formattingRulesData = func() map[string]FormattingRules {
	var doc RulesDocument
	if err := json.Unmarshal(defaultRulesJSON, &doc); err != nil {
		panic(fmt.Sprintf("prxz: parse embedded formatting rules: %v", err))
	}
	ru, ok := doc.FormattingRules[defaultLocale]
	if !ok {
		panic("prxz: embedded formatting rules have no " + defaultLocale + " entry")
	}
	return map[string]FormattingRules{defaultLocale: ru}
}()

// FormattingRulesProvider provides formatting rules for locales
type FormattingRulesProvider struct {
	rules         map[string]FormattingRules
	resolver      FallbackResolver
	defaultLocale string
}

// NewFormattingRulesProvider creates a provider from a rules document
func NewFormattingRulesProvider(doc *RulesDocument, resolver FallbackResolver) *FormattingRulesProvider {
	rules := make(map[string]FormattingRules)

	for k, v := range formattingRulesData {
		rules[k] = v
	}

	provider := &FormattingRulesProvider{
		rules:         rules,
		resolver:      resolver,
		defaultLocale: defaultLocale,
	}

	if doc != nil {
		for k, v := range doc.FormattingRules {
			key := normalizeLocale(k)
			rules[key] = mergeRules(rules[key], v)
		}
		if doc.DefaultLocale != "" {
			provider.defaultLocale = normalizeLocale(doc.DefaultLocale)
		}
	}

	return provider
}

// Get returns complete rules for locale. It tries the exact locale, the
// resolver chain, the base language and then the default locale; fields a
// locale leaves empty are taken from the built-in Russian rules.
func (p *FormattingRulesProvider) Get(locale string) FormattingRules {
	base := formattingRulesData[defaultLocale]
	if p == nil || p.rules == nil {
		return cloneRules(base)
	}

	locale = normalizeLocale(locale)
	for _, candidate := range p.candidates(locale) {
		if rules, ok := p.rules[candidate]; ok {
			return mergeRules(base, rules)
		}
	}

	return cloneRules(base)
}

// Locales lists the locales the provider has rules for, sorted.
func (p *FormattingRulesProvider) Locales() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.rules))
}

func (p *FormattingRulesProvider) candidates(locale string) []string {
	var chain []string
	if locale != "" {
		chain = append(chain, locale)
		if p.resolver != nil {
			chain = append(chain, p.resolver.Resolve(locale)...)
		}

		tag := language.Make(locale)
		base, _ := tag.Base()
		chain = append(chain, base.String())
	}
	return append(chain, p.defaultLocale, defaultLocale)
}

// mergeRules overlays the non-empty fields of src on dst.
func mergeRules(dst, src FormattingRules) FormattingRules {
	out := cloneRules(dst)

	if src.Locale != "" {
		out.Locale = src.Locale
	}
	if src.Number.DecimalSep != "" {
		out.Number.DecimalSep = src.Number.DecimalSep
	}
	if src.Number.GroupSep != "" {
		out.Number.GroupSep = src.Number.GroupSep
	}
	if len(src.CurrencySymbols) > 0 {
		if out.CurrencySymbols == nil {
			out.CurrencySymbols = make(map[string]string, len(src.CurrencySymbols))
		}
		maps.Copy(out.CurrencySymbols, src.CurrencySymbols)
	}
	if len(src.ShortUnits) > 0 {
		out.ShortUnits = slices.Clone(src.ShortUnits)
	}
	out.Months = mergeNames(out.Months, src.Months, 12)
	out.Weekdays = mergeNames(out.Weekdays, src.Weekdays, 7)
	if src.AMPM.AM != "" {
		out.AMPM.AM = src.AMPM.AM
	}
	if src.AMPM.PM != "" {
		out.AMPM.PM = src.AMPM.PM
	}
	if src.Markers.Empty != "" {
		out.Markers.Empty = src.Markers.Empty
	}
	if src.Markers.InvalidDate != "" {
		out.Markers.InvalidDate = src.Markers.InvalidDate
	}
	if src.TimeOffsetMinutes != nil {
		out.TimeOffsetMinutes = intPtr(*src.TimeOffsetMinutes)
	}

	return out
}

// mergeNames only accepts name lists of the expected length; a partial list
// would leave calendar fields without a name.
func mergeNames(dst, src NameRules, size int) NameRules {
	if len(src.Short) == size {
		dst.Short = slices.Clone(src.Short)
	}
	if len(src.Full) == size {
		dst.Full = slices.Clone(src.Full)
	}
	return dst
}

func cloneRules(r FormattingRules) FormattingRules {
	r.CurrencySymbols = maps.Clone(r.CurrencySymbols)
	r.ShortUnits = slices.Clone(r.ShortUnits)
	r.Months = NameRules{Short: slices.Clone(r.Months.Short), Full: slices.Clone(r.Months.Full)}
	r.Weekdays = NameRules{Short: slices.Clone(r.Weekdays.Short), Full: slices.Clone(r.Weekdays.Full)}
	if r.TimeOffsetMinutes != nil {
		r.TimeOffsetMinutes = intPtr(*r.TimeOffsetMinutes)
	}
	return r
}

// TimeOffset is the fixed offset dates are projected onto.
func (r FormattingRules) TimeOffset() time.Duration {
	if r.TimeOffsetMinutes == nil {
		return defaultTimeOffsetMinutes * time.Minute
	}
	return time.Duration(*r.TimeOffsetMinutes) * time.Minute
}

func (r FormattingRules) numberSymbols() numberSymbols {
	return numberSymbols{decimal: r.Number.DecimalSep, group: r.Number.GroupSep}
}

func intPtr(v int) *int {
	return &v
}
