// File: slate/convert.go
package slate

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// registerBuiltins installs the default converters. Primitive kinds go
// into the kind table so named types (type Volume int) resolve without
// per-type registration; time.Duration and time.Time get exact entries
// that shadow the integer kind; the TextUnmarshaler entry is the
// category converter serving any type with text marshalling methods.
func registerBuiltins(r *ConverterRegistry) {
	r.RegisterKind(reflect.String, stringConverter{})
	r.RegisterKind(reflect.Bool, boolConverter{})

	for _, k := range []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64} {
		r.RegisterKind(k, intConverter{})
	}
	for _, k := range []reflect.Kind{reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64} {
		r.RegisterKind(k, uintConverter{})
	}
	r.RegisterKind(reflect.Float32, floatConverter{})
	r.RegisterKind(reflect.Float64, floatConverter{})

	r.Register(reflect.TypeFor[time.Duration](), durationConverter{})
	r.Register(reflect.TypeFor[time.Time](), timeConverter{})
	r.Register(reflect.TypeFor[[]string](), stringSliceConverter{})
	r.Register(reflect.TypeFor[encoding.TextUnmarshaler](), textConverter{})
}

// convertTo adapts a parsed value to the exact requested type, so a
// lookup for a named kind (type Volume int) yields that named type.
func convertTo(v any, target reflect.Type) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Type() == target {
		return v, nil
	}
	if !rv.Type().ConvertibleTo(target) {
		return nil, fmt.Errorf("cannot convert %s to %s", rv.Type(), target)
	}
	return rv.Convert(target).Interface(), nil
}

type stringConverter struct{}

func (stringConverter) Format(value any) (string, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", fmt.Errorf("expected string kind, got %T", value)
	}
	return rv.String(), nil
}

func (stringConverter) Parse(text string, target reflect.Type) (any, error) {
	return convertTo(text, target)
}

type boolConverter struct{}

func (boolConverter) Format(value any) (string, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Bool {
		return "", fmt.Errorf("expected bool kind, got %T", value)
	}
	return strconv.FormatBool(rv.Bool()), nil
}

func (boolConverter) Parse(text string, target reflect.Type) (any, error) {
	b, err := strconv.ParseBool(text)
	if err != nil {
		return nil, err
	}
	return convertTo(b, target)
}

type intConverter struct{}

func (intConverter) Format(value any) (string, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	}
	return "", fmt.Errorf("expected integer kind, got %T", value)
}

func (intConverter) Parse(text string, target reflect.Type) (any, error) {
	// Base 0 accepts decimal, hex (0xFF) and octal forms.
	i, err := strconv.ParseInt(text, 0, target.Bits())
	if err != nil {
		return nil, err
	}
	return convertTo(i, target)
}

type uintConverter struct{}

func (uintConverter) Format(value any) (string, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return "", fmt.Errorf("expected unsigned integer kind, got %T", value)
}

func (uintConverter) Parse(text string, target reflect.Type) (any, error) {
	u, err := strconv.ParseUint(text, 0, target.Bits())
	if err != nil {
		return nil, err
	}
	return convertTo(u, target)
}

type floatConverter struct{}

func (floatConverter) Format(value any) (string, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return "", fmt.Errorf("expected float kind, got %T", value)
}

func (floatConverter) Parse(text string, target reflect.Type) (any, error) {
	f, err := strconv.ParseFloat(text, target.Bits())
	if err != nil {
		return nil, err
	}
	return convertTo(f, target)
}

type durationConverter struct{}

func (durationConverter) Format(value any) (string, error) {
	d, ok := value.(time.Duration)
	if !ok {
		return "", fmt.Errorf("expected time.Duration, got %T", value)
	}
	return d.String(), nil
}

func (durationConverter) Parse(text string, target reflect.Type) (any, error) {
	d, err := time.ParseDuration(text)
	if err != nil {
		return nil, err
	}
	return convertTo(d, target)
}

type timeConverter struct{}

func (timeConverter) Format(value any) (string, error) {
	t, ok := value.(time.Time)
	if !ok {
		return "", fmt.Errorf("expected time.Time, got %T", value)
	}
	return t.Format(time.RFC3339Nano), nil
}

func (timeConverter) Parse(text string, target reflect.Type) (any, error) {
	// RFC3339 parsing accepts an optional fractional second, so values
	// formatted with RFC3339Nano round-trip.
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, err
	}
	return convertTo(t, target)
}

type stringSliceConverter struct{}

func (stringSliceConverter) Format(value any) (string, error) {
	s, ok := value.([]string)
	if !ok {
		return "", fmt.Errorf("expected []string, got %T", value)
	}
	return strings.Join(s, ","), nil
}

func (stringSliceConverter) Parse(text string, target reflect.Type) (any, error) {
	if text == "" {
		return convertTo([]string{}, target)
	}
	return convertTo(strings.Split(text, ","), target)
}

// textConverter serves any type implementing encoding.TextMarshaler /
// encoding.TextUnmarshaler, e.g. net.IP or custom enumerations.
type textConverter struct{}

func (textConverter) Format(value any) (string, error) {
	if m, ok := value.(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// The marshal method may live on the pointer type.
	rv := reflect.ValueOf(value)
	pv := reflect.New(rv.Type())
	pv.Elem().Set(rv)
	if m, ok := pv.Interface().(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	return "", fmt.Errorf("%T does not implement encoding.TextMarshaler", value)
}

func (textConverter) Parse(text string, target reflect.Type) (any, error) {
	elem := target
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	pv := reflect.New(elem)
	u, ok := pv.Interface().(encoding.TextUnmarshaler)
	if !ok {
		return nil, fmt.Errorf("%s does not implement encoding.TextUnmarshaler", target)
	}
	if err := u.UnmarshalText([]byte(text)); err != nil {
		return nil, err
	}

	if target.Kind() == reflect.Pointer {
		return pv.Interface(), nil
	}
	return pv.Elem().Interface(), nil
}
