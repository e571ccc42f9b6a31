// Package syncx holds small concurrency primitives shared by platform
// packages.
package syncx

import "sync"

// Ref guards a value behind a sync.RWMutex. Readers take a shared lock and
// receive a copy; writers are serialized. Ref is meant for small value types
// (structs of flags, counters) where copying under the lock is cheap and the
// lock is never held while calling out to other code.
type Ref[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a Ref holding val.
func NewRef[T any](val T) *Ref[T] {
	return &Ref[T]{val: val}
}

// Load returns a copy of the current value.
func (r *Ref[T]) Load() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Store replaces the current value.
func (r *Ref[T]) Store(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}
