// Package keylock provides mutual exclusion scoped to a key, such as an order id.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker hands out one mutex per key and forgets keys nobody holds or waits for.
// The zero value is ready to use.
type Locker[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

// New creates an empty Locker.
func New[K comparable]() *Locker[K] {
	return &Locker[K]{entries: make(map[K]*entry)}
}

// Lock blocks until the caller holds the lock for key and returns its release function.
// The release function must be called exactly once.
//
// Example:
//
//	unlock := locks.Lock(orderID)
//	defer unlock()
func (l *Locker[K]) Lock(key K) func() {
	l.mu.Lock()
	if l.entries == nil {
		l.entries = make(map[K]*entry)
	}
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}

// Len returns the number of keys currently held or awaited.
func (l *Locker[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
