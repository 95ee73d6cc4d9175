// File: slate/maplocator.go
package slate

import (
	"fmt"
	"sync"
)

// MapLocator is an in-memory locator, useful for runtime overrides,
// baked-in defaults and tests. It has no durable backing store, so
// Save is a no-op.
type MapLocator struct {
	mu       sync.RWMutex
	values   map[string]string
	readOnly bool
}

// NewMapLocator creates a map locator seeded with the given values.
// The map is copied; a nil initial map is allowed.
func NewMapLocator(initial map[string]string) *MapLocator {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MapLocator{values: values}
}

// SetReadOnly makes subsequent Store calls fail. Useful for locators
// representing immutable defaults.
func (l *MapLocator) SetReadOnly(ro bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.readOnly = ro
}

// Lookup reports the raw string value for key.
func (l *MapLocator) Lookup(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.values[key]
	return v, ok
}

// Store writes a raw string value.
func (l *MapLocator) Store(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.readOnly {
		return fmt.Errorf("slate: locator is read-only, cannot store %q", key)
	}
	l.values[key] = value
	return nil
}

// Save is a no-op; the locator is memory-backed.
func (l *MapLocator) Save() error {
	return nil
}

// Keys enumerates the held keys.
func (l *MapLocator) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.values))
	for k := range l.values {
		keys = append(keys, k)
	}
	return keys
}
