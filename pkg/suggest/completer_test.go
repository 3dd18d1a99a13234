package suggest

import (
	"reflect"
	"testing"
)

func TestCompleterRanksByPrior(t *testing.T) {
	c := NewCompleter()
	c.Add("car", 2.0)
	c.Add("cat", 1.0)
	c.Add("cart", 0.5)
	c.Add("dog", 3.0)

	got := c.Complete("ca", 0)
	want := []Completion{
		{Word: "car", Prior: 2.0},
		{Word: "cat", Prior: 1.0},
		{Word: "cart", Prior: 0.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(ca) = %v, want %v", got, want)
	}
}

func TestCompleterLimit(t *testing.T) {
	c := NewCompleter()
	c.Add("car", 2.0)
	c.Add("cat", 1.0)
	c.Add("cart", 0.5)

	got := c.Complete("ca", 2)
	if len(got) != 2 {
		t.Fatalf("Complete(ca, 2) returned %d entries", len(got))
	}
	if got[0].Word != "car" || got[1].Word != "cat" {
		t.Errorf("Complete(ca, 2) = %v", got)
	}
}

func TestCompleterExcludesExactPrefix(t *testing.T) {
	c := NewCompleter()
	c.Add("car", 2.0)
	c.Add("cart", 0.5)

	for _, r := range c.Complete("car", 0) {
		if r.Word == "car" {
			t.Error("stored prefix itself must not be completed")
		}
	}
}

func TestCompleterOverwrite(t *testing.T) {
	c := NewCompleter()
	c.Add("car", 1.0)
	c.Add("car", 5.0)
	if c.Len() != 1 {
		t.Errorf("Len() = %d after re-adding, want 1", c.Len())
	}
	got := c.Complete("c", 0)
	if len(got) != 1 || got[0].Prior != 5.0 {
		t.Errorf("Complete(c) = %v, want single entry with prior 5.0", got)
	}
}

func TestBuildCompleterFromDictionary(t *testing.T) {
	words := buildWords(t, map[string]float64{"cat": 1.0, "car": 2.0, "bat": 1.5})
	c := BuildCompleter(words)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got := c.Complete("ba", 0)
	if len(got) != 1 || got[0].Word != "bat" {
		t.Errorf("Complete(ba) = %v, want [bat]", got)
	}
}
