package storage

import (
	"container/list"
	"sync"
	"time"

	"seoscan-go/pkg/seo"
)

// cacheEntry is one cached enrichment payload keyed by normalized term.
type cacheEntry struct {
	term      string
	metrics   *seo.Metrics
	fetchedAt time.Time
	element   *list.Element
}

// MetricsCache is an LRU cache with TTL for keyword enrichment metrics.
// Repeat analyses of overlapping keyword sets within one process reuse
// cached payloads instead of re-querying the search-data service. A
// cached nil payload is a valid entry: it remembers that the service had
// no data for the term.
type MetricsCache struct {
	maxSize int
	ttl     time.Duration
	entries map[string]*cacheEntry
	lruList *list.List
	mu      sync.Mutex

	hits   uint64
	misses uint64
}

// NewMetricsCache creates a cache bounded to maxSize terms. A zero ttl
// disables expiry.
func NewMetricsCache(maxSize int, ttl time.Duration) *MetricsCache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	return &MetricsCache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		lruList: list.New(),
	}
}

// Get returns the cached payload for a normalized term. The second
// return value distinguishes "not cached" from a cached absent payload.
func (c *MetricsCache) Get(term string) (*seo.Metrics, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[term]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.ttl > 0 && time.Since(entry.fetchedAt) > c.ttl {
		c.remove(entry)
		c.misses++
		return nil, false
	}

	c.lruList.MoveToFront(entry.element)
	c.hits++
	return entry.metrics, true
}

// Set stores the payload for a normalized term, evicting the least
// recently used entry when the cache is full.
func (c *MetricsCache) Set(term string, metrics *seo.Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if entry, ok := c.entries[term]; ok {
		entry.metrics = metrics
		entry.fetchedAt = now
		c.lruList.MoveToFront(entry.element)
		return
	}

	entry := &cacheEntry{term: term, metrics: metrics, fetchedAt: now}
	entry.element = c.lruList.PushFront(entry)
	c.entries[term] = entry

	if len(c.entries) > c.maxSize {
		if oldest := c.lruList.Back(); oldest != nil {
			c.remove(oldest.Value.(*cacheEntry))
		}
	}
}

// SetAll stores a batch of lookup results.
func (c *MetricsCache) SetAll(metrics map[string]*seo.Metrics) {
	for term, m := range metrics {
		c.Set(term, m)
	}
}

// Size returns the current number of cached terms.
func (c *MetricsCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats reports hit/miss counters since process start.
func (c *MetricsCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *MetricsCache) remove(entry *cacheEntry) {
	delete(c.entries, entry.term)
	c.lruList.Remove(entry.element)
}
