// Package suggest ranks error-tolerant dictionary lookups into correction
// suggestions. A Suggester wraps a loaded trie and a fixed edit distance
// cutoff; ranking prefers a smaller edit distance first and a larger corpus
// prior second.
package suggest

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/pkg/corpus"
	"github.com/bastiangx/spellserve/pkg/trie"
)

// Ranked is one suggestion with the evidence that ordered it.
type Ranked struct {
	Word     string
	Prior    float64
	Distance int
}

// Suggester answers correction queries against one loaded dictionary. After
// construction it only reads the trie, so concurrent queries are safe.
type Suggester struct {
	words  *trie.Trie[float64]
	cutoff int
}

// New wraps an already-built trie. The cutoff bounds the number of edit
// operations considered per query.
func New(words *trie.Trie[float64], cutoff int) *Suggester {
	return &Suggester{words: words, cutoff: cutoff}
}

// Load builds a Suggester straight from a corpus file.
func Load(path string, mode corpus.Mode, cutoff int) (*Suggester, error) {
	words, err := corpus.Open(path, mode)
	if err != nil {
		return nil, err
	}
	return New(words, cutoff), nil
}

// Cutoff reports the edit distance bound queries run with.
func (s *Suggester) Cutoff() int {
	return s.cutoff
}

// Rank returns every dictionary word within the cutoff of query, ordered best
// first. Lower edit distance wins; within one distance class a higher prior
// wins; remaining ties are broken by word so the order is reproducible.
func (s *Suggester) Rank(query string) []Ranked {
	start := time.Now()
	found := s.words.TolerantFind(query, s.cutoff)

	ranked := make([]Ranked, len(found))
	for i, r := range found {
		ranked[i] = Ranked{Word: r.Word, Prior: r.Value, Distance: r.Distance}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Distance != ranked[j].Distance {
			return ranked[i].Distance < ranked[j].Distance
		}
		if ranked[i].Prior != ranked[j].Prior {
			return ranked[i].Prior > ranked[j].Prior
		}
		return ranked[i].Word < ranked[j].Word
	})

	log.Debug("Query ranked",
		"query", query,
		"cutoff", s.cutoff,
		"hits", len(ranked),
		"elapsed", time.Since(start))
	return ranked
}

// All returns the ranked suggestion words, best first.
func (s *Suggester) All(query string) []string {
	ranked := s.Rank(query)
	words := make([]string, len(ranked))
	for i, r := range ranked {
		words[i] = r.Word
	}
	return words
}

// Best returns the single best suggestion, or the empty string when nothing
// is within the cutoff.
func (s *Suggester) Best(query string) string {
	ranked := s.Rank(query)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Word
}
