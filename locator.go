// File: slate/locator.go
package slate

// Locator is a named configuration source. Implementations hold raw
// string values keyed by dot-separated paths and may be backed by
// files, the environment, command-line arguments, or memory.
//
// Lookup reports whether the locator holds the key, following the
// os.LookupEnv convention. Store writes a raw string value. Save
// persists the locator's current contents; locators without a durable
// backing store return nil.
//
// Implementations must be safe for concurrent use if the owning
// container is shared between goroutines.
type Locator interface {
	Lookup(key string) (string, bool)
	Store(key, value string) error
	Save() error
}

// Keyer is an optional extension for locators that can enumerate the
// keys they hold. Scan uses it to discover which values exist;
// locators that cannot enumerate (e.g. the environment) simply do not
// implement it.
type Keyer interface {
	Keys() []string
}
