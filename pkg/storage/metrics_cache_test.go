package storage

import (
	"fmt"
	"testing"
	"time"

	"seoscan-go/pkg/seo"
)

func TestMetricsCacheSetGet(t *testing.T) {
	cache := NewMetricsCache(10, time.Minute)

	m := &seo.Metrics{SearchVolume: 368000, Competition: "LOW", CompetitionIndex: 13, CPC: 2.58}
	cache.Set("ai humanizer", m)

	got, ok := cache.Get("ai humanizer")
	if !ok {
		t.Fatal("cached term not found")
	}
	if got != m {
		t.Errorf("got %+v, want the stored pointer", got)
	}

	if _, ok := cache.Get("never stored"); ok {
		t.Error("unknown term reported as cached")
	}
}

func TestMetricsCacheCachedNilDistinct(t *testing.T) {
	cache := NewMetricsCache(10, time.Minute)

	// The service answered "no data"; remembering that avoids re-asking.
	cache.Set("obscure term", nil)

	got, ok := cache.Get("obscure term")
	if !ok {
		t.Fatal("cached nil payload reported as not cached")
	}
	if got != nil {
		t.Errorf("got %+v, want nil payload", got)
	}
}

func TestMetricsCacheLRUEviction(t *testing.T) {
	cache := NewMetricsCache(3, 0)

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("term-%d", i), &seo.Metrics{SearchVolume: i})
	}

	// Touch term-0 so term-1 becomes the least recently used.
	if _, ok := cache.Get("term-0"); !ok {
		t.Fatal("term-0 missing before eviction")
	}

	cache.Set("term-3", &seo.Metrics{SearchVolume: 3})

	if _, ok := cache.Get("term-1"); ok {
		t.Error("least recently used entry not evicted")
	}
	for _, term := range []string{"term-0", "term-2", "term-3"} {
		if _, ok := cache.Get(term); !ok {
			t.Errorf("%s evicted unexpectedly", term)
		}
	}
	if cache.Size() != 3 {
		t.Errorf("Size = %d, want 3", cache.Size())
	}
}

func TestMetricsCacheTTLExpiry(t *testing.T) {
	cache := NewMetricsCache(10, 10*time.Millisecond)

	cache.Set("short lived", &seo.Metrics{SearchVolume: 5})
	if _, ok := cache.Get("short lived"); !ok {
		t.Fatal("entry missing before expiry")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := cache.Get("short lived"); ok {
		t.Error("expired entry still served")
	}
	if cache.Size() != 0 {
		t.Errorf("Size = %d after expiry, want 0", cache.Size())
	}
}

func TestMetricsCacheZeroTTLNeverExpires(t *testing.T) {
	cache := NewMetricsCache(10, 0)

	cache.Set("persistent", &seo.Metrics{SearchVolume: 1})
	time.Sleep(5 * time.Millisecond)
	if _, ok := cache.Get("persistent"); !ok {
		t.Error("entry expired with zero ttl")
	}
}

func TestMetricsCacheUpdateExistingTerm(t *testing.T) {
	cache := NewMetricsCache(10, time.Minute)

	cache.Set("kw", &seo.Metrics{SearchVolume: 100})
	cache.Set("kw", &seo.Metrics{SearchVolume: 200})

	got, ok := cache.Get("kw")
	if !ok || got.SearchVolume != 200 {
		t.Errorf("got %+v, want updated payload", got)
	}
	if cache.Size() != 1 {
		t.Errorf("Size = %d after update, want 1", cache.Size())
	}
}

func TestMetricsCacheSetAllAndStats(t *testing.T) {
	cache := NewMetricsCache(10, time.Minute)

	cache.SetAll(map[string]*seo.Metrics{
		"a": {SearchVolume: 1},
		"b": {SearchVolume: 2},
		"c": nil,
	})
	if cache.Size() != 3 {
		t.Fatalf("Size = %d, want 3", cache.Size())
	}

	cache.Get("a")
	cache.Get("b")
	cache.Get("missing")

	hits, misses := cache.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats = %d hits / %d misses, want 2/1", hits, misses)
	}
}
