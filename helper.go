// File: slate/helper.go
package slate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// flattenMap converts a nested map[string]any to a flat map with
// dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map using a dot-notation path.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")

	if len(segments) == 1 {
		nested[segments[0]] = value
		return
	}

	current, exists := nested[segments[0]]
	currentMap, isMap := current.(map[string]any)
	if !exists || !isMap {
		currentMap = make(map[string]any)
		nested[segments[0]] = currentMap
	}

	setNestedValue(currentMap, strings.Join(segments[1:], "."), value)
}

// navigateToPath traverses a nested map to reach the specified path.
// Returns nil if any segment is missing or not a map.
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}

	return current
}

// formatValue renders a scalar loaded from a typed document (TOML,
// JSON, YAML) as its wire string.
func formatValue(val any) (string, error) {
	if val == nil {
		return "", nil
	}

	if s, ok := val.(string); ok {
		return s, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case error:
		return v.Error(), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}

	return "", fmt.Errorf("cannot render type %T as a string value", val)
}

// parseScalar attempts to parse a wire string into bool, int64 or
// float64, keeping it as a string when nothing matches. File locators
// use it so stored values keep their natural document type on save.
func parseScalar(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// isValidKeySegment checks if a single dot-path segment is a valid
// key identifier.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	first := rune(s[0])
	if !isAlpha(first) && first != '_' {
		return false
	}
	for _, r := range s[1:] {
		if !isAlpha(r) && !isNumeric(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumeric(c rune) bool {
	return c >= '0' && c <= '9'
}
