// File: slate/container.go
package slate

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Container resolves named configuration values across a priority-
// ordered set of locators, converting between the wire representation
// (strings) and typed values through a converter registry. Both the
// source set and the registry are private to the instance; there is no
// process-wide shared state.
//
// All operations are safe for concurrent use; one read-write mutex
// guards the registry and the source set.
type Container struct {
	mutex      sync.RWMutex
	sources    *SourceSet
	converters *ConverterRegistry
	tagName    string
}

// New creates a container with the built-in converters registered and
// no locators.
func New() *Container {
	registry := NewConverterRegistry()
	registerBuiltins(registry)

	return &Container{
		sources:    NewSourceSet(),
		converters: registry,
		tagName:    "config",
	}
}

// AddLocator registers a locator at the given priority. Lower
// priorities are consulted first on reads. Multiple locators may share
// a priority; their insertion order is preserved.
func (c *Container) AddLocator(loc Locator, priority int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.sources.Add(loc, priority)
}

// AppendLocator registers a locator at DefaultPriority, i.e. searched
// last.
func (c *Container) AppendLocator(loc Locator) error {
	return c.AddLocator(loc, DefaultPriority)
}

// AddConverter registers a converter for a type, overwriting any prior
// registration for that exact type. Registering an interface type
// makes the converter serve every implementing type.
func (c *Container) AddConverter(t reflect.Type, conv Converter) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.converters.Register(t, conv)
}

// LocatorCount returns the number of registered locators.
func (c *Container) LocatorCount() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.sources.Len()
}

// Get resolves a named value. Locators are searched in ascending
// priority order and the first one holding the key wins. If no locator
// holds the key, or no converter resolves for the target type, the
// fallback is returned unchanged with a nil error. A string that fails
// to parse into the target type yields the fallback and a
// *ConversionError; that failure is never silently defaulted.
func (c *Container) Get(name string, target reflect.Type, fallback any) (any, error) {
	if name == "" {
		return fallback, ErrEmptyName
	}
	if target == nil {
		return fallback, ErrNilType
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var raw string
	found := false
	for loc := range c.sources.All() {
		if v, ok := loc.Lookup(name); ok {
			raw = v
			found = true
			break
		}
	}
	if !found {
		return fallback, nil
	}

	conv, ok := c.converters.Resolve(target)
	if !ok {
		// Tolerated on the read path: bad registry wiring degrades to
		// the fallback instead of failing the caller.
		return fallback, nil
	}

	value, err := conv.Parse(raw, target)
	if err != nil {
		return fallback, &ConversionError{Name: name, Target: target, Err: err}
	}
	return value, nil
}

// Set writes a named value. The destination is selected by scanning
// the entire source set in ascending priority order without stopping:
// among all locators currently holding the key, the one seen last
// (greatest priority, searched last on reads) receives the write. If
// no locator holds the key, the overall last locator does. A missing
// converter is fatal on the write path, unlike reads.
func (c *Container) Set(name string, value any, target reflect.Type) error {
	if name == "" {
		return ErrEmptyName
	}
	if target == nil {
		return ErrNilType
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.sources.Len() == 0 {
		return ErrNoLocators
	}

	var dest Locator
	for loc := range c.sources.All() {
		if _, ok := loc.Lookup(name); ok {
			dest = loc
		}
	}
	if dest == nil {
		dest, _ = c.sources.Last()
	}

	conv, ok := c.converters.Resolve(target)
	if !ok {
		return fmt.Errorf("set %q: %w %s", name, ErrConverterNotFound, target)
	}

	text, err := conv.Format(value)
	if err != nil {
		return err
	}

	return dest.Store(name, text)
}

// Save asks every locator to persist itself, in ascending priority
// order. A failing locator does not stop the sequence; failures are
// aggregated.
func (c *Container) Save() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var errs []error
	for loc := range c.sources.All() {
		if err := loc.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Value resolves a named value as type T, returning the fallback when
// no locator holds the key or no converter resolves for T.
func Value[T any](c *Container, name string, fallback T) (T, error) {
	v, err := c.Get(name, reflect.TypeFor[T](), fallback)
	if err != nil {
		return fallback, err
	}

	out, ok := v.(T)
	if !ok {
		return fallback, fmt.Errorf("slate: resolved %q as %T, want %s", name, v, reflect.TypeFor[T]())
	}
	return out, nil
}

// Put writes a named value of type T.
func Put[T any](c *Container, name string, value T) error {
	return c.Set(name, value, reflect.TypeFor[T]())
}
