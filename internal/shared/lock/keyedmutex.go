// Package lock provides keyed mutual exclusion for serializing state-mutating
// operations scoped to a single aggregate, such as one queue.
package lock

import "sync"

// KeyedMutex hands out one mutex per key. Operations locking different keys
// never block each other; operations locking the same key are serialized.
// Entries are reference counted and removed once the last holder releases,
// so the map stays bounded by the number of keys currently in use.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*lockEntry),
	}
}

// Lock acquires exclusive access for the given key, blocking until available.
// The returned release function must be called on every exit path; callers
// are expected to defer it immediately.
func (m *KeyedMutex) Lock(key string) (release func()) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &lockEntry{}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.entries, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len reports how many keys currently have holders or waiters.
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
