package prxz

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("kk_KZ", "ru-RU", "kk-KZ", "", "ru")

	want := []string{"ru-RU", "ru"}
	if diff := cmp.Diff(want, resolver.Resolve("kk-KZ")); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}

	chain := resolver.Resolve("kk_kz")
	chain[0] = "mutated"
	if resolver.Resolve("kk-KZ")[0] != "ru-RU" {
		t.Fatal("Resolve must return a copy")
	}

	if got := resolver.Resolve("fr"); got != nil {
		t.Fatalf("Resolve(fr) = %v, want nil", got)
	}

	resolver.Set("", "en")
	var nilResolver *StaticFallbackResolver
	if nilResolver.Resolve("en") != nil {
		t.Fatal("nil resolver should resolve nothing")
	}
}

func TestStaticFallbackResolverConcurrentAccess(t *testing.T) {
	resolver := NewStaticFallbackResolver()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				resolver.Set("ru", "en")
				return
			}
			_ = resolver.Resolve("ru")
		}()
	}
	wg.Wait()

	if diff := cmp.Diff([]string{"en"}, resolver.Resolve("ru")); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}
