// File: slate/errors.go
package slate

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors returned by container and registry operations.
// All are matchable with errors.Is.
var (
	// ErrEmptyName indicates a Get/Set call with an empty value name.
	ErrEmptyName = errors.New("slate: empty value name")

	// ErrNilLocator indicates an attempt to register a nil locator.
	ErrNilLocator = errors.New("slate: nil locator")

	// ErrNilConverter indicates an attempt to register a nil converter.
	ErrNilConverter = errors.New("slate: nil converter")

	// ErrNilType indicates a nil reflect.Type argument.
	ErrNilType = errors.New("slate: nil target type")

	// ErrNoLocators indicates a Set call on a container with no
	// registered locators, so no write destination exists.
	ErrNoLocators = errors.New("slate: no locators registered")

	// ErrConverterNotFound indicates that no converter resolves for
	// the requested type. Reads tolerate this and return the fallback;
	// writes fail with it.
	ErrConverterNotFound = errors.New("slate: no converter for type")
)

// ConversionError reports that a raw string value found in a locator
// could not be parsed into the requested type. It carries the value
// name and target type for diagnostics and is always propagated to the
// caller, never silently defaulted.
type ConversionError struct {
	Name   string
	Target reflect.Type
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("slate: converting %q to %s: %v", e.Name, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
