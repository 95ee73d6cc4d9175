// File: slate/filelocator.go
package slate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileLocator resolves values from a TOML, JSON or YAML document on
// disk. The document is read once at construction (and on Reload),
// flattened to dot-notation paths; Save rebuilds the nested document
// and writes it atomically.
type FileLocator struct {
	mu     sync.RWMutex
	path   string
	format string
	values map[string]any
}

// NewFileLocator creates a file locator for path. The format is taken
// from the optional hint ("toml", "json", "yaml"), otherwise from the
// file extension, otherwise sniffed from content. A missing file
// yields an empty locator so a later Save can create it; a present but
// unparsable file is an error.
func NewFileLocator(path string, formatHint ...string) (*FileLocator, error) {
	format := ""
	if len(formatHint) > 0 {
		format = formatHint[0]
	}

	l := &FileLocator{
		path:   path,
		format: format,
		values: make(map[string]any),
	}

	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns the backing file path.
func (l *FileLocator) Path() string {
	return l.path
}

// Lookup reports the value for key in its wire string form.
func (l *FileLocator) Lookup(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	val, ok := l.values[key]
	if !ok {
		return "", false
	}
	s, err := formatValue(val)
	if err != nil {
		// Non-scalar document nodes (arrays of tables etc.) are not
		// addressable through the string contract.
		return "", false
	}
	return s, true
}

// Store writes a raw string value. The string is re-parsed into its
// natural scalar type so numbers and booleans keep their document type
// on Save.
func (l *FileLocator) Store(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.values[key] = parseScalar(value)
	return nil
}

// Keys enumerates the held paths.
func (l *FileLocator) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.values))
	for k := range l.values {
		keys = append(keys, k)
	}
	return keys
}

// Save writes the current values back to the file atomically:
// temp file in the same directory, write, sync, rename, chmod 0644.
func (l *FileLocator) Save() error {
	l.mu.RLock()
	nested := make(map[string]any)
	for path, value := range l.values {
		setNestedValue(nested, path, value)
	}
	format := l.format
	path := l.path
	l.mu.RUnlock()

	data, err := marshalDocument(nested, format)
	if err != nil {
		return fmt.Errorf("slate: failed to marshal config for '%s': %w", path, err)
	}

	return atomicWriteFile(path, data)
}

// Reload re-reads the backing file, replacing the current values, and
// returns the set of paths whose values changed (including added and
// removed paths).
func (l *FileLocator) Reload() ([]string, error) {
	fresh := &FileLocator{path: l.path, format: l.format, values: make(map[string]any)}
	if err := fresh.load(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var changed []string
	for path, newVal := range fresh.values {
		if oldVal, existed := l.values[path]; !existed || !reflect.DeepEqual(oldVal, newVal) {
			changed = append(changed, path)
		}
	}
	for path := range l.values {
		if _, exists := fresh.values[path]; !exists {
			changed = append(changed, path)
		}
	}

	l.format = fresh.format
	l.values = fresh.values
	return changed, nil
}

// load reads and parses the backing file into the flat value map.
func (l *FileLocator) load() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if l.format == "" {
				l.format = detectFileFormat(l.path)
			}
			if l.format == "" {
				l.format = "toml"
			}
			return nil
		}
		return fmt.Errorf("slate: failed to read config file '%s': %w", l.path, err)
	}

	format := l.format
	if format == "" || format == "auto" {
		format = detectFileFormat(l.path)
		if format == "" {
			format = detectFormatFromContent(data)
		}
		if format == "" {
			return fmt.Errorf("slate: unable to determine config format for file '%s'", l.path)
		}
	}

	document := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("slate: failed to parse TOML config file '%s': %w", l.path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&document); err != nil {
			return fmt.Errorf("slate: failed to parse JSON config file '%s': %w", l.path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("slate: failed to parse YAML config file '%s': %w", l.path, err)
		}
	default:
		return fmt.Errorf("slate: unsupported config format %q for file '%s'", format, l.path)
	}

	l.format = format
	l.values = flattenMap(document, "")
	return nil
}

// marshalDocument renders a nested document in the given format.
func marshalDocument(nested map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(nested, "", "  ")
	case "yaml":
		return yaml.Marshal(nested)
	default: // toml
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(nested); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// atomicWriteFile performs an atomic file write via a temp file in the
// destination directory.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("slate: failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("slate: failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("slate: failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("slate: failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("slate: failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("slate: failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("slate: failed to rename temporary file: %w", err)
	}

	return nil
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
func detectFormatFromContent(data []byte) string {
	// JSON is the strictest format, YAML is a superset of JSON, so
	// probe in that order with TOML last.
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
