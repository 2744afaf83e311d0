package cache

import "testing"

func TestMemory_GetAdd(t *testing.T) {
	m := NewMemory[[]string]()

	if _, ok := m.Get("sinatra"); ok {
		t.Fatal("Get on empty store should miss")
	}

	if !m.Add("sinatra", []string{"rack", "tilt"}) {
		t.Fatal("first Add should store")
	}

	got, ok := m.Get("sinatra")
	if !ok {
		t.Fatal("Get after Add should hit")
	}
	if len(got) != 2 || got[0] != "rack" || got[1] != "tilt" {
		t.Errorf("Get = %v, want [rack tilt]", got)
	}
}

func TestMemory_FirstWriteWins(t *testing.T) {
	m := NewMemory[[]string]()
	m.Add("rack", nil)

	if m.Add("rack", []string{"unexpected"}) {
		t.Error("second Add for same key should be ignored")
	}

	got, ok := m.Get("rack")
	if !ok {
		t.Fatal("nil value should still be a hit")
	}
	if got != nil {
		t.Errorf("Get = %v, want nil", got)
	}
}

func TestMemory_Stats(t *testing.T) {
	m := NewMemory[int]()
	m.Get("a")
	m.Add("a", 1)
	m.Get("a")
	m.Get("a")
	m.Add("b", 2)

	want := Stats{Hits: 2, Misses: 1, Entries: 2}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}
