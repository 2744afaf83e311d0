// Package cache provides the instance-scoped memo store used by registry
// clients to avoid fetching the same document twice in one run.
//
// Nothing is persisted: a [Memory] lives exactly as long as the client that
// owns it, and every process starts with an empty one.
package cache

// Stats reports how a [Memory] has been used.
type Stats struct {
	Hits    int // Lookups answered from the store
	Misses  int // Lookups that found nothing
	Entries int // Keys currently stored
}

// Memory is a string-keyed store where the first write for a key wins.
//
// Once a key is present its value never changes; later calls to [Memory.Add]
// for the same key are ignored. Zero values (nil or empty slices) are valid
// stored values and still count as hits.
//
// Memory is not safe for concurrent use. The owning client is expected to
// drive it from a single goroutine.
type Memory[V any] struct {
	entries map[string]V
	hits    int
	misses  int
}

// NewMemory creates an empty memo store.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{entries: make(map[string]V)}
}

// Get returns the value stored under key and whether it was present.
func (m *Memory[V]) Get(key string) (V, bool) {
	v, ok := m.entries[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

// Add stores v under key unless the key is already present.
// It reports whether v was stored.
func (m *Memory[V]) Add(key string, v V) bool {
	if _, ok := m.entries[key]; ok {
		return false
	}
	m.entries[key] = v
	return true
}

// Len returns the number of stored keys.
func (m *Memory[V]) Len() int { return len(m.entries) }

// Stats returns hit, miss and entry counts.
func (m *Memory[V]) Stats() Stats {
	return Stats{Hits: m.hits, Misses: m.misses, Entries: len(m.entries)}
}
