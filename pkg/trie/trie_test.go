package trie

import "testing"

func TestInsertGetRoundTrip(t *testing.T) {
	tr := New[float64]()
	words := map[string]float64{
		"cat":    1.0,
		"car":    2.0,
		"cart":   0.5,
		"bat":    1.5,
		"a":      0.1,
		"":       9.0,
		"zebra":  0.25,
		"zebras": 0.125,
	}
	for w, v := range words {
		if err := tr.Insert(w, v); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}

	for w, want := range words {
		got, ok := tr.Get(w)
		if !ok {
			t.Errorf("Get(%q) not found", w)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestGetMisses(t *testing.T) {
	tr := New[float64]()
	for _, w := range []string{"cat", "cart"} {
		if err := tr.Insert(w, 1.0); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}

	// "ca" is a proper prefix of stored keys: the walk succeeds but the state
	// is not accepting. "dog" fails the walk outright.
	for _, w := range []string{"ca", "c", "dog", "catt", ""} {
		if _, ok := tr.Get(w); ok {
			t.Errorf("Get(%q) unexpectedly found", w)
		}
	}
}

func TestInsertOverwrite(t *testing.T) {
	tr := New[float64]()
	if err := tr.Insert("cat", 1.0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Insert("car", 2.0); err != nil {
		t.Fatal(err)
	}
	states := tr.Len()

	if err := tr.Insert("cat", 7.0); err != nil {
		t.Fatal(err)
	}
	if got, _ := tr.Get("cat"); got != 7.0 {
		t.Errorf("Get(cat) = %v after overwrite, want 7.0", got)
	}
	if got, _ := tr.Get("car"); got != 2.0 {
		t.Errorf("Get(car) = %v, overwrite of cat must not touch it", got)
	}
	if tr.Len() != states {
		t.Errorf("state count changed on overwrite: %d -> %d", states, tr.Len())
	}
}

func TestSharedPrefixCompression(t *testing.T) {
	tr := New[int]()
	for _, w := range []string{"car", "cart", "carts"} {
		if err := tr.Insert(w, 1); err != nil {
			t.Fatal(err)
		}
	}
	// start + one state per byte of "carts": the three words share the path.
	if want := 1 + 5; tr.Len() != want {
		t.Errorf("Len() = %d, want %d", tr.Len(), want)
	}
}

func TestClone(t *testing.T) {
	tr := New[float64]()
	for w, v := range map[string]float64{"cat": 1.0, "car": 2.0} {
		if err := tr.Insert(w, v); err != nil {
			t.Fatal(err)
		}
	}

	cp := tr.Clone()
	if err := cp.Insert("cat", 99.0); err != nil {
		t.Fatal(err)
	}
	if err := cp.Insert("dog", 3.0); err != nil {
		t.Fatal(err)
	}

	if got, _ := tr.Get("cat"); got != 1.0 {
		t.Errorf("original Get(cat) = %v after mutating copy, want 1.0", got)
	}
	if _, ok := tr.Get("dog"); ok {
		t.Error("original contains key inserted into copy")
	}
	if got, _ := cp.Get("cat"); got != 99.0 {
		t.Errorf("copy Get(cat) = %v, want 99.0", got)
	}
}

func TestEmptyKey(t *testing.T) {
	tr := New[float64]()
	if err := tr.Insert("", 0.5); err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after inserting empty key, want 1", tr.Len())
	}
	got, ok := tr.Get("")
	if !ok || got != 0.5 {
		t.Errorf("Get(\"\") = %v, %v, want 0.5, true", got, ok)
	}
}

func TestWalkVisitsAllKeysInOrder(t *testing.T) {
	tr := New[float64]()
	words := map[string]float64{"cat": 1.0, "car": 2.0, "bat": 1.5, "cart": 0.5}
	for w, v := range words {
		if err := tr.Insert(w, v); err != nil {
			t.Fatal(err)
		}
	}

	var seen []string
	tr.Walk(func(key string, value float64) {
		if want := words[key]; value != want {
			t.Errorf("Walk gave (%q, %v), want value %v", key, value, want)
		}
		seen = append(seen, key)
	})

	want := []string{"bat", "car", "cart", "cat"}
	if len(seen) != len(want) {
		t.Fatalf("Walk visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", seen, want)
		}
	}
}

func TestTransitionOrder(t *testing.T) {
	// Insert in scrambled order; edges must still iterate in byte order,
	// which keeps search enumeration reproducible.
	tr := New[int]()
	for _, w := range []string{"d", "a", "c", "b"} {
		if err := tr.Insert(w, 1); err != nil {
			t.Fatal(err)
		}
	}
	edges := tr.states[0].edges
	for i := 1; i < len(edges); i++ {
		if edges[i-1].b >= edges[i].b {
			t.Fatalf("edges out of order: %v", edges)
		}
	}
}
