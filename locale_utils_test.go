package prxz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"ru":      "ru",
		" ru_ru ": "ru-RU",
		"EN-us":   "en-US",
		"zh_hant": "zh-Hant",
		"":        "",
		"   ":     "",
	}

	for input, want := range tests {
		if got := normalizeLocale(input); got != want {
			t.Errorf("normalizeLocale(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeLocales(t *testing.T) {
	got := normalizeLocales([]string{"ru_RU", "en", "", "ru-ru", "de"})
	if diff := cmp.Diff([]string{"de", "en", "ru-RU"}, got); diff != "" {
		t.Fatalf("normalizeLocales mismatch (-want +got):\n%s", diff)
	}
	if normalizeLocales(nil) != nil {
		t.Fatal("normalizeLocales(nil) should be nil")
	}
}

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{"ru-RU", []string{"ru"}},
		{"pt-BR", []string{"pt"}},
		{"ru", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, localeParentChain(tt.locale)); diff != "" {
			t.Errorf("localeParentChain(%q) mismatch (-want +got):\n%s", tt.locale, diff)
		}
	}
}
