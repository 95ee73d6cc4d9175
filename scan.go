// File: slate/scan.go
package slate

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved configuration into a target struct or map
// pointer. Keys are discovered through locators implementing Keyer;
// each key resolves through the normal read path, so a higher-priority
// locator shadows lower ones.
func (c *Container) Scan(target any) error {
	return c.ScanPath("", target)
}

// ScanPath decodes the configuration subtree under basePath into the
// target struct or map pointer.
func (c *Container) ScanPath(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("slate: scan target must be a non-nil pointer, got %T", target)
	}

	c.mutex.RLock()

	keys := make(map[string]struct{})
	for loc := range c.sources.All() {
		if keyer, ok := loc.(Keyer); ok {
			for _, key := range keyer.Keys() {
				keys[key] = struct{}{}
			}
		}
	}

	nested := make(map[string]any)
	for key := range keys {
		for loc := range c.sources.All() {
			if value, ok := loc.Lookup(key); ok {
				setNestedValue(nested, key, value)
				break
			}
		}
	}

	tagName := c.tagName
	c.mutex.RUnlock()

	section := navigateToPath(nested, basePath)
	sectionMap, ok := section.(map[string]any)
	if !ok {
		if section == nil {
			sectionMap = make(map[string]any)
		} else {
			return fmt.Errorf("slate: path %q refers to non-map value (type %T)", basePath, section)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		DecodeHook:       scanDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("slate: decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("slate: decode failed for path %q: %w", basePath, err)
	}

	return nil
}

// scanDecodeHook composes the string-to-type conversions applied
// during Scan.
func scanDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToNetIPHookFunc(),
		stringToURLHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToNetIPHookFunc handles net.IP conversion.
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeFor[net.IP]() {
			return data, nil
		}

		str := data.(string)
		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// stringToURLHookFunc handles url.URL conversion.
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Pointer
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeFor[url.URL]() {
			return data, nil
		}

		u, err := url.Parse(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
