package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
)

// RankCache memoizes ranked query results. Interactive callers tend to repeat
// queries (retyping, backspacing), so the server keeps one cache per loaded
// dictionary. Eviction is least-recently-accessed.
type RankCache struct {
	entries     map[string][]Ranked
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	hits        int64
	misses      int64
	mu          sync.Mutex
}

// NewRankCache returns a cache bounded to maxEntries queries.
func NewRankCache(maxEntries int) *RankCache {
	return &RankCache{
		entries:    make(map[string][]Ranked, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached ranking for query, if present.
func (rc *RankCache) Get(query string) ([]Ranked, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	ranked, ok := rc.entries[query]
	if !ok {
		rc.misses++
		return nil, false
	}
	rc.hits++
	rc.accessCount++
	rc.accessTime[query] = rc.accessCount
	return ranked, true
}

// Put stores the ranking for query, evicting the stalest entry when full.
// Callers must not mutate ranked after handing it over.
func (rc *RankCache) Put(query string, ranked []Ranked) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, ok := rc.entries[query]; !ok && len(rc.entries) >= rc.maxEntries {
		rc.evictLRU()
	}
	rc.accessCount++
	rc.entries[query] = ranked
	rc.accessTime[query] = rc.accessCount
}

// Stats reports cache occupancy and hit counters.
func (rc *RankCache) Stats() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	return map[string]int{
		"cachedQueries": len(rc.entries),
		"maxEntries":    rc.maxEntries,
		"cacheHits":     int(rc.hits),
		"cacheMisses":   int(rc.misses),
	}
}

func (rc *RankCache) evictLRU() {
	var oldestQuery string
	var oldestTime int64 = 9223372036854775807

	for query, accessTime := range rc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestQuery = query
		}
	}

	if oldestQuery != "" {
		delete(rc.entries, oldestQuery)
		delete(rc.accessTime, oldestQuery)
		log.Debugf("Evicted query '%s' from rank cache", oldestQuery)
	}
}
