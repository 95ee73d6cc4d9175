// File: slate/doc.go

// Package slate is a layered configuration resolver: a process-local
// container that reads and writes named values across a priority-
// ordered set of pluggable sources (locators), converting between the
// wire representation (strings) and typed values through a registry of
// converters.
//
// Features:
//   - Priority-ordered locators with stable insertion order for ties
//   - Reads short-circuit at the most authoritative source; writes
//     route to the least authoritative source holding the key
//   - Converter registry with exact-type, interface-category and
//     kind fallback resolution
//   - Built-in converters for strings, booleans, integers, floats,
//     durations, timestamps, string slices and any
//     encoding.TextMarshaler/TextUnmarshaler type
//   - File (TOML/JSON/YAML), environment, command-line and in-memory
//     locators with atomic file persistence
//   - Struct decoding via mapstructure with common decode hooks
//   - Poll-based file watching with debounced reload
//   - Thread-safe operations using sync.RWMutex
//
// Quick Start:
//
//	cfg, err := slate.Quick("MYAPP_", "config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.String("server.host", "localhost")
//	port, _ := cfg.Int64("server.port", 8080)
//
// Read precedence (lowest priority number wins):
//  1. Command-line arguments (--server.port=9090), priority 0
//  2. Environment variables (MYAPP_SERVER_PORT=9090), priority 10
//  3. Configuration file (config.toml), priority 100
//
// Writes go to the source holding the key that is searched last on
// reads, so overrides never clobber a more authoritative layer; new
// keys land in the last registered source.
//
// Custom assembly:
//
//	cfg, err := slate.NewBuilder().
//	    WithLocator(slate.NewMapLocator(overrides), 0).
//	    WithEnv("MYAPP_", 10).
//	    WithFile("config.yaml", 100).
//	    WithValidator(func(c *slate.Container) error {
//	        if c.Text("server.host") == "" {
//	            return errors.New("server.host required")
//	        }
//	        return nil
//	    }).
//	    Build()
//
// Thread Safety:
// All container operations are thread-safe. One read-write mutex
// guards the source set and the converter registry.
package slate
