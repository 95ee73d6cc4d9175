// File: slate/arglocator.go
package slate

import (
	"fmt"
	"strings"
	"sync"
)

// ArgLocator resolves values from command-line arguments parsed at
// construction time. Supported forms: "--key.subkey value",
// "--key.subkey=value" and bare boolean flags ("--debug" stores
// "true"). Arguments not starting with "--" are skipped.
type ArgLocator struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewArgLocator parses args (typically os.Args[1:]) into a locator.
// Invalid key segments fail parsing.
func NewArgLocator(args []string) (*ArgLocator, error) {
	values, err := parseArgs(args)
	if err != nil {
		return nil, err
	}
	return &ArgLocator{values: values}, nil
}

// Lookup reports the raw string value for key.
func (l *ArgLocator) Lookup(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.values[key]
	return v, ok
}

// Store overrides a parsed argument value in memory.
func (l *ArgLocator) Store(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.values[key] = value
	return nil
}

// Save is a no-op; arguments have no durable store.
func (l *ArgLocator) Save() error {
	return nil
}

// Keys enumerates the parsed argument keys.
func (l *ArgLocator) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.values))
	for k := range l.values {
		keys = append(keys, k)
	}
	return keys
}

// parseArgs processes command-line arguments into a flat path->value
// map. Values stay strings; converters handle final typing.
func parseArgs(args []string) (map[string]string, error) {
	result := make(map[string]string)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// "--" used as a separator
			i++
			continue
		}

		var keyPath, valueStr string

		if strings.Contains(argContent, "=") {
			parts := strings.SplitN(argContent, "=", 2)
			keyPath = parts[0]
			valueStr = parts[1]
			i++
		} else {
			keyPath = argContent
			// Boolean flag when the next arg is another flag or absent.
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		if keyPath == "" {
			continue
		}

		for _, segment := range strings.Split(keyPath, ".") {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("slate: invalid command-line key segment %q in %q", segment, keyPath)
			}
		}

		result[keyPath] = valueStr
	}

	return result, nil
}
