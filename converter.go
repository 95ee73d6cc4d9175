// File: slate/converter.go
package slate

import (
	"reflect"
)

// Converter transforms values of one type category between their wire
// representation (a string) and their typed form. Converters are pure
// and stateless; one instance serves all calls.
type Converter interface {
	// Format renders a typed value as its string representation.
	Format(value any) (string, error)

	// Parse turns a string into a value of the target type. It fails
	// if the string is not a valid representation of that type.
	Parse(text string, target reflect.Type) (any, error)
}

// ConverterRegistry maps type identities to converters.
//
// Go has no supertype chain to walk, so ancestor resolution is an
// explicit three-step fallback: exact reflect.Type match first, then
// registered interface types the target implements (a converter
// registered for an interface serves every implementing type), then a
// reflect.Kind table (a converter registered for reflect.Int serves
// every named integer type). Exact registrations always shadow
// category and kind entries.
type ConverterRegistry struct {
	exact  map[reflect.Type]Converter
	ifaces []ifaceConverter
	kinds  map[reflect.Kind]Converter
}

type ifaceConverter struct {
	typ  reflect.Type
	conv Converter
}

// NewConverterRegistry returns an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		exact: make(map[reflect.Type]Converter),
		kinds: make(map[reflect.Kind]Converter),
	}
}

// Register binds a converter to a type. Registering an interface type
// makes the converter serve every type implementing it. The most
// recent registration for a given type wins, so callers may override
// the built-in converters.
func (r *ConverterRegistry) Register(t reflect.Type, c Converter) error {
	if t == nil {
		return ErrNilType
	}
	if c == nil {
		return ErrNilConverter
	}

	if t.Kind() == reflect.Interface {
		for i, e := range r.ifaces {
			if e.typ == t {
				r.ifaces[i].conv = c
				return nil
			}
		}
		r.ifaces = append(r.ifaces, ifaceConverter{typ: t, conv: c})
		return nil
	}

	r.exact[t] = c
	return nil
}

// RegisterKind binds a converter to a reflect.Kind, serving any type
// of that kind which has no more specific registration.
func (r *ConverterRegistry) RegisterKind(k reflect.Kind, c Converter) error {
	if c == nil {
		return ErrNilConverter
	}
	r.kinds[k] = c
	return nil
}

// Resolve finds the converter for a type: exact match, then interface
// categories (checking both T and *T, since unmarshal methods usually
// take pointer receivers), then the kind table. The boolean is false
// when the fallback chain is exhausted.
func (r *ConverterRegistry) Resolve(t reflect.Type) (Converter, bool) {
	if t == nil {
		return nil, false
	}

	if c, ok := r.exact[t]; ok {
		return c, true
	}

	for _, e := range r.ifaces {
		if t.Implements(e.typ) {
			return e.conv, true
		}
	}
	if t.Kind() != reflect.Pointer {
		pt := reflect.PointerTo(t)
		for _, e := range r.ifaces {
			if pt.Implements(e.typ) {
				return e.conv, true
			}
		}
	}

	if c, ok := r.kinds[t.Kind()]; ok {
		return c, true
	}

	return nil, false
}
