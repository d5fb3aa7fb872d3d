// Command prxz-rules extracts formatting rules (separators, month and weekday
// names, day periods, currency symbols) from CLDR data into a rules document
// that prxz loads with WithRulesFile.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
	"gopkg.in/yaml.v3"

	prxz "github.com/mizuki666/go-prxz"
)

type generatorConfig struct {
	out        string
	cldrPath   string
	locales    []string
	currencies []string
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

var defaultCurrencies = []string{"RUB", "USD", "EUR", "GBP", "JPY", "CNY"}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "prxz-rules: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (generatorConfig, error) {
	var cfg generatorConfig
	var locales, currencies listFlag

	fs := flag.NewFlagSet("prxz-rules", flag.ContinueOnError)
	fs.StringVar(&cfg.out, "out", "rules.yaml", "path of the generated rules document (.json, .yaml or .yml)")
	fs.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/)")
	fs.Var(&locales, "locale", "locale to extract. Repeat flag to add more.")
	fs.Var(&currencies, "currency", "currency code whose symbol is extracted. Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return generatorConfig{}, err
	}

	if len(locales.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range locales.items {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return generatorConfig{}, fmt.Errorf("invalid locale %q", locale)
		}
		cfg.locales = append(cfg.locales, normalized)
	}

	cfg.currencies = currencies.items
	if len(cfg.currencies) == 0 {
		cfg.currencies = defaultCurrencies
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	doc := prxz.RulesDocument{
		DefaultLocale:   cfg.locales[0],
		FormattingRules: make(map[string]prxz.FormattingRules, len(cfg.locales)),
	}

	for _, locale := range cfg.locales {
		ldml := findLDML(data, locale)
		if ldml == nil {
			return fmt.Errorf("build rules for %s: missing LDML data", locale)
		}
		doc.FormattingRules[locale] = rulesFromLDML(locale, ldml, cfg.currencies)
	}

	source, err := renderDocument(cfg.out, doc)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return data.RawLDML("root")
}

// rulesFromLDML fills only what the LDML carries; everything else is merged
// from the embedded defaults when the document is loaded.
func rulesFromLDML(locale string, ldml *cldr.LDML, currencies []string) prxz.FormattingRules {
	rules := prxz.FormattingRules{Locale: locale}
	if ldml == nil {
		return rules
	}

	rules.Number = extractNumberSymbols(ldml)
	rules.CurrencySymbols = extractCurrencySymbols(ldml, currencies)

	calendar := gregorian(ldml)
	if calendar == nil {
		return rules
	}

	rules.Months = extractMonths(calendar)
	rules.Weekdays = extractWeekdays(calendar)
	rules.AMPM = extractDayPeriods(calendar)
	return rules
}

func gregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar != nil && calendar.Type == "gregorian" {
			return calendar
		}
	}
	return nil
}

func extractNumberSymbols(ldml *cldr.LDML) prxz.NumberRules {
	var rules prxz.NumberRules
	if ldml.Numbers == nil {
		return rules
	}

	for _, symbols := range ldml.Numbers.Symbols {
		if symbols == nil {
			continue
		}
		if symbols.NumberSystem != "" && symbols.NumberSystem != "latn" {
			continue
		}
		if len(symbols.Decimal) > 0 && symbols.Decimal[0] != nil {
			rules.DecimalSep = symbols.Decimal[0].Data()
		}
		if len(symbols.Group) > 0 && symbols.Group[0] != nil {
			rules.GroupSep = symbols.Group[0].Data()
		}
		break
	}
	return rules
}

func extractCurrencySymbols(ldml *cldr.LDML, codes []string) map[string]string {
	if ldml.Numbers == nil || ldml.Numbers.Currencies == nil {
		return nil
	}

	wanted := make(map[string]bool, len(codes))
	for _, code := range codes {
		wanted[strings.ToUpper(code)] = true
	}

	result := make(map[string]string)
	for _, entry := range ldml.Numbers.Currencies.Currency {
		if entry == nil || !wanted[entry.Type] {
			continue
		}
		for _, symbol := range entry.Symbol {
			if symbol == nil || symbol.Alt != "" {
				continue
			}
			result[entry.Type] = symbol.Data()
			break
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// extractMonths prefers stand-alone names, which are nominative in
// inflected languages.
func extractMonths(calendar *cldr.Calendar) prxz.NameRules {
	var names prxz.NameRules
	if calendar.Months == nil {
		return names
	}

	for _, context := range []string{"stand-alone", "format"} {
		for _, ctx := range calendar.Months.MonthContext {
			if ctx == nil || ctx.Type != context {
				continue
			}
			for _, width := range ctx.MonthWidth {
				if width == nil {
					continue
				}
				values := make(map[string]string, len(width.Month))
				for _, month := range width.Month {
					if month == nil || month.Yeartype != "" || month.Alt != "" {
						continue
					}
					values[month.Type] = month.Data()
				}
				ordered := orderedNames(values, monthKeys)
				switch width.Type {
				case "abbreviated":
					if names.Short == nil {
						names.Short = ordered
					}
				case "wide":
					if names.Full == nil {
						names.Full = ordered
					}
				}
			}
		}
	}
	return names
}

func extractWeekdays(calendar *cldr.Calendar) prxz.NameRules {
	var names prxz.NameRules
	if calendar.Days == nil {
		return names
	}

	for _, context := range []string{"stand-alone", "format"} {
		for _, ctx := range calendar.Days.DayContext {
			if ctx == nil || ctx.Type != context {
				continue
			}
			for _, width := range ctx.DayWidth {
				if width == nil {
					continue
				}
				values := make(map[string]string, len(width.Day))
				for _, day := range width.Day {
					if day == nil || day.Alt != "" {
						continue
					}
					values[day.Type] = day.Data()
				}
				ordered := orderedNames(values, weekdayKeys)
				switch width.Type {
				case "short", "abbreviated":
					if names.Short == nil {
						names.Short = ordered
					}
				case "wide":
					if names.Full == nil {
						names.Full = ordered
					}
				}
			}
		}
	}
	return names
}

func extractDayPeriods(calendar *cldr.Calendar) prxz.AMPMRules {
	var periods prxz.AMPMRules
	if calendar.DayPeriods == nil {
		return periods
	}

	for _, ctx := range calendar.DayPeriods.DayPeriodContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, width := range ctx.DayPeriodWidth {
			if width == nil || width.Type != "abbreviated" {
				continue
			}
			for _, period := range width.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					periods.AM = period.Data()
				case "pm":
					periods.PM = period.Data()
				}
			}
		}
	}
	return periods
}

var (
	monthKeys   = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	weekdayKeys = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
)

// orderedNames returns nil unless every key is present, so partial tables
// never replace the defaults.
func orderedNames(values map[string]string, keys []string) []string {
	ordered := make([]string, 0, len(keys))
	for _, key := range keys {
		value, ok := values[key]
		if !ok || value == "" {
			return nil
		}
		ordered = append(ordered, value)
	}
	return ordered
}

func renderDocument(path string, doc prxz.RulesDocument) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".yaml", ".yml":
		var buf bytes.Buffer
		buf.WriteString("# Code generated by prxz-rules. DO NOT EDIT.\n")
		buf.WriteString("# locales: " + strings.Join(sortedLocales(doc), ", ") + "\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", prxz.ErrUnsupportedRulesFormat, path)
	}
}

func sortedLocales(doc prxz.RulesDocument) []string {
	locales := make([]string, 0, len(doc.FormattingRules))
	for locale := range doc.FormattingRules {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
