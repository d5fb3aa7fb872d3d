package prxz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data/default_rules.json
var defaultRulesJSON []byte

// RulesLoader loads formatting rules from the embedded defaults, an optional
// rules file and per-locale override files.
type RulesLoader struct {
	path      string
	overrides map[string]string
	logger    *zap.Logger
}

// NewRulesLoader creates a loader. An empty path loads the embedded defaults only.
func NewRulesLoader(path string, logger *zap.Logger) *RulesLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RulesLoader{
		path:      path,
		overrides: make(map[string]string),
		logger:    logger,
	}
}

// AddOverride registers a file holding the rules of a single locale
func (l *RulesLoader) AddOverride(locale, path string) {
	l.overrides[normalizeLocale(locale)] = path
}

// Load reads the embedded defaults and merges the configured files over them.
func (l *RulesLoader) Load() (*RulesDocument, error) {
	var doc RulesDocument
	if err := json.Unmarshal(defaultRulesJSON, &doc); err != nil {
		return nil, fmt.Errorf("parse default formatting rules: %w", err)
	}

	if l.path != "" {
		var userDoc RulesDocument
		if err := decodeRulesFile(l.path, &userDoc); err != nil {
			return nil, fmt.Errorf("load formatting rules: %w", err)
		}
		mergeRulesDocument(&doc, &userDoc)
		l.logger.Debug("formatting rules merged",
			zap.String("path", l.path),
			zap.Int("locales", len(userDoc.FormattingRules)),
		)
	}

	for locale, path := range l.overrides {
		var rules FormattingRules
		if err := decodeRulesFile(path, &rules); err != nil {
			return nil, fmt.Errorf("load formatting rules override for %q: %w", locale, err)
		}
		if doc.FormattingRules == nil {
			doc.FormattingRules = make(map[string]FormattingRules)
		}
		doc.FormattingRules[locale] = mergeRules(doc.FormattingRules[locale], rules)
		l.logger.Debug("formatting rules override applied",
			zap.String("locale", locale),
			zap.String("path", path),
		)
	}

	return &doc, nil
}

// mergeRulesDocument merges source into dest (source takes precedence)
func mergeRulesDocument(dest, source *RulesDocument) {
	if source.DefaultLocale != "" {
		dest.DefaultLocale = source.DefaultLocale
	}

	if source.FormattingRules == nil {
		return
	}
	if dest.FormattingRules == nil {
		dest.FormattingRules = make(map[string]FormattingRules)
	}
	for k, v := range source.FormattingRules {
		key := normalizeLocale(k)
		dest.FormattingRules[key] = mergeRules(dest.FormattingRules[key], v)
	}
}

func decodeRulesFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, target)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, target)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedRulesFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
