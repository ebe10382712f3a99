package common

import (
	"sync"

	"github.com/google/uuid"
)

// KeyMutex serializes work per key. Entries are reference-counted and removed
// when the last holder releases, so the map does not grow with the keyspace.
type KeyMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*keyMutexEntry
}

type keyMutexEntry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyMutex() *KeyMutex {
	return &KeyMutex{entries: make(map[uuid.UUID]*keyMutexEntry)}
}

// Lock acquires the mutex for key, blocking while another caller holds it.
func (k *KeyMutex) Lock(key uuid.UUID) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &keyMutexEntry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key.
func (k *KeyMutex) Unlock(key uuid.UUID) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
	}
	k.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
