// File: slate/convenience.go
package slate

import "time"

// String resolves a string configuration value, returning the fallback
// if no locator holds the name.
func (c *Container) String(name, fallback string) (string, error) {
	return Value(c, name, fallback)
}

// Int64 resolves an integer configuration value.
func (c *Container) Int64(name string, fallback int64) (int64, error) {
	return Value(c, name, fallback)
}

// Bool resolves a boolean configuration value.
func (c *Container) Bool(name string, fallback bool) (bool, error) {
	return Value(c, name, fallback)
}

// Float64 resolves a floating-point configuration value.
func (c *Container) Float64(name string, fallback float64) (float64, error) {
	return Value(c, name, fallback)
}

// Duration resolves a time.Duration configuration value.
func (c *Container) Duration(name string, fallback time.Duration) (time.Duration, error) {
	return Value(c, name, fallback)
}

// Text is the indexer shorthand: the raw value of name as a string
// with an empty-string fallback. Misses and conversion failures both
// yield "".
func (c *Container) Text(name string) string {
	v, err := Value(c, name, "")
	if err != nil {
		return ""
	}
	return v
}
