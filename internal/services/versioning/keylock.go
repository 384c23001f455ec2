package versioning

import "sync"

// KeyLock provides mutual exclusion scoped to a string key. The ingestion
// pipeline holds the lock for a lineage's base name from identity
// assignment through row insert, so two uploads of the same base name in
// one process cannot compute the same version.
type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyLock creates a new KeyLock
func NewKeyLock() *KeyLock {
	return &KeyLock{entries: make(map[string]*lockEntry)}
}

// Lock acquires the lock for key and returns the corresponding unlock
// function. Entries are removed once the last holder releases them.
func (l *KeyLock) Lock(key string) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &lockEntry{}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}
