package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/spellserve/pkg/trie"
)

// Completion is one prefix match with its corpus prior.
type Completion struct {
	Word  string  `msgpack:"word"`
	Prior float64 `msgpack:"prior"`
}

// Completer serves prefix completions over the same corpus the Suggester
// corrects against. It is a separate radix index because prefix walks and
// edit-distance searches want different tree shapes.
type Completer struct {
	trie  *patricia.Trie
	words int
}

// NewCompleter returns an empty completer.
func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// BuildCompleter indexes every word of an already-loaded dictionary.
func BuildCompleter(words *trie.Trie[float64]) *Completer {
	c := NewCompleter()
	words.Walk(func(word string, prior float64) {
		c.Add(word, prior)
	})
	return c
}

// Add indexes one word with its prior. Re-adding a word replaces the prior.
func (c *Completer) Add(word string, prior float64) {
	if c.trie.Insert(patricia.Prefix(word), prior) {
		c.words++
		return
	}
	c.trie.Set(patricia.Prefix(word), prior)
}

// Len reports the number of indexed words.
func (c *Completer) Len() int {
	return c.words
}

// Complete returns up to limit words starting with prefix, highest prior
// first, ties by word. The prefix itself is excluded when stored; callers ask
// for continuations, not confirmation. limit <= 0 means no limit.
func (c *Completer) Complete(prefix string, limit int) []Completion {
	var out []Completion
	err := c.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == prefix {
			return nil
		}
		prior, ok := item.(float64)
		if !ok {
			log.Errorf("unexpected item type %T for word %s", item, p)
			return nil
		}
		out = append(out, Completion{Word: word, Prior: prior})
		return nil
	})
	if err != nil {
		log.Errorf("prefix walk failed for %q: %v", prefix, err)
		return nil
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Prior != out[j].Prior {
			return out[i].Prior > out[j].Prior
		}
		return out[i].Word < out[j].Word
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
