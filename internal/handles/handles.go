// Package handles stores Go values that native user-data slots need to
// reference. Native memory must never hold a Go pointer, so the facade
// registers the value here and stores the returned key in the native slot;
// reading the slot back looks the key up again.
package handles

import (
	"sync"
	"sync/atomic"
)

var (
	mu     sync.RWMutex
	table  = make(map[uintptr]any)
	nextID atomic.Uintptr
)

// Register stores v and returns a key that is safe to place in native memory.
// Keys are never zero and never reused within a process.
func Register(v any) uintptr {
	id := nextID.Add(1)
	mu.Lock()
	table[id] = v
	mu.Unlock()
	return id
}

// Lookup returns the value registered under id, or nil when the key is zero
// or no longer registered.
func Lookup(id uintptr) any {
	if id == 0 {
		return nil
	}
	mu.RLock()
	v := table[id]
	mu.RUnlock()
	return v
}

// Replace swaps the value stored under id, returning false when the key is
// not registered.
func Replace(id uintptr, v any) bool {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := table[id]; !ok {
		return false
	}
	table[id] = v
	return true
}

// Unregister removes id, letting the value be collected. Unregistering an
// unknown or zero key is a no-op so release paths can call it unconditionally.
func Unregister(id uintptr) {
	if id == 0 {
		return
	}
	mu.Lock()
	delete(table, id)
	mu.Unlock()
}

// Count returns the number of live registrations. Tests use it to prove
// release paths do not leak entries.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(table)
}
