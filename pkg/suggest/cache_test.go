package suggest

import (
	"fmt"
	"testing"
)

func TestRankCacheRoundTrip(t *testing.T) {
	rc := NewRankCache(4)
	want := []Ranked{{Word: "cat", Prior: 1.0, Distance: 0}}
	rc.Put("cat", want)

	got, ok := rc.Get("cat")
	if !ok {
		t.Fatal("Get(cat) missed right after Put")
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Get(cat) = %v, want %v", got, want)
	}
	if _, ok := rc.Get("dog"); ok {
		t.Error("Get(dog) hit without a Put")
	}
}

func TestRankCacheEvictsLeastRecentlyUsed(t *testing.T) {
	rc := NewRankCache(2)
	rc.Put("a", nil)
	rc.Put("b", nil)
	rc.Get("a") // refresh a; b is now the stalest
	rc.Put("c", nil)

	if _, ok := rc.Get("b"); ok {
		t.Error("b survived eviction although it was least recently used")
	}
	if _, ok := rc.Get("a"); !ok {
		t.Error("a was evicted although it was refreshed")
	}
	if _, ok := rc.Get("c"); !ok {
		t.Error("c missing right after Put")
	}
}

func TestRankCacheStats(t *testing.T) {
	rc := NewRankCache(8)
	for i := 0; i < 3; i++ {
		rc.Put(fmt.Sprintf("q%d", i), nil)
	}
	rc.Get("q0")
	rc.Get("nope")

	stats := rc.Stats()
	if stats["cachedQueries"] != 3 {
		t.Errorf("cachedQueries = %d, want 3", stats["cachedQueries"])
	}
	if stats["cacheHits"] != 1 || stats["cacheMisses"] != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", stats["cacheHits"], stats["cacheMisses"])
	}
}
