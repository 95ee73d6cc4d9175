// File: slate/builder.go
package slate

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// ValidatorFunc validates a fully built Container and returns an error
// if the configuration is unacceptable.
type ValidatorFunc func(c *Container) error

// Builder provides a fluent interface for assembling a container from
// locators, converters and validators. The first error encountered is
// remembered and returned by Build.
type Builder struct {
	c          *Container
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a builder around a fresh container.
func NewBuilder() *Builder {
	return &Builder{c: New()}
}

// WithLocator registers a locator at the given priority.
func (b *Builder) WithLocator(loc Locator, priority int) *Builder {
	if b.err == nil {
		b.err = b.c.AddLocator(loc, priority)
	}
	return b
}

// WithFile registers a FileLocator for path at the given priority.
// A missing file is not an error; a present but unparsable one is.
func (b *Builder) WithFile(path string, priority int, formatHint ...string) *Builder {
	if b.err != nil {
		return b
	}
	loc, err := NewFileLocator(path, formatHint...)
	if err != nil {
		b.err = err
		return b
	}
	b.err = b.c.AddLocator(loc, priority)
	return b
}

// WithEnv registers an EnvLocator with the given variable prefix.
func (b *Builder) WithEnv(prefix string, priority int) *Builder {
	if b.err == nil {
		b.err = b.c.AddLocator(NewEnvLocator(prefix), priority)
	}
	return b
}

// WithArgs registers an ArgLocator parsed from args.
func (b *Builder) WithArgs(args []string, priority int) *Builder {
	if b.err != nil {
		return b
	}
	loc, err := NewArgLocator(args)
	if err != nil {
		b.err = err
		return b
	}
	b.err = b.c.AddLocator(loc, priority)
	return b
}

// WithConverter registers a converter for a type.
func (b *Builder) WithConverter(t reflect.Type, conv Converter) *Builder {
	if b.err == nil {
		b.err = b.c.AddConverter(t, conv)
	}
	return b
}

// WithTagName sets the struct tag name Scan uses (default "config").
func (b *Builder) WithTagName(tag string) *Builder {
	if b.err == nil && tag != "" {
		b.c.tagName = tag
	}
	return b
}

// WithValidator adds a validation function run at the end of Build.
// Validators execute in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build returns the assembled container after running validators.
func (b *Builder) Build() (*Container, error) {
	if b.err != nil {
		return nil, b.err
	}

	for _, validator := range b.validators {
		if err := validator(b.c); err != nil {
			return nil, fmt.Errorf("slate: configuration validation failed: %w", err)
		}
	}

	return b.c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Container {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("slate: build failed: %v", err))
	}
	return c
}

// Quick assembles the conventional three-layer container: parsed
// command-line arguments (priority 0, wins on reads), environment
// variables with the given prefix (priority 10), and a config file
// (priority 100, the default write destination for new values).
func Quick(envPrefix, configFile string) (*Container, error) {
	return NewBuilder().
		WithArgs(os.Args[1:], 0).
		WithEnv(envPrefix, 10).
		WithFile(configFile, 100).
		Build()
}

// FileDiscoveryOptions configures automatic config file discovery.
type FileDiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for explicit path
	EnvVar string

	// CLI flag to check (e.g., "--config")
	CLIFlag string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults for appName.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery locates a config file by convention and registers
// it at the given priority: explicit CLI flag first, then the env var,
// then XDG config directories, then the current directory. If nothing
// is found, the first conventional path is registered anyway so Save
// has somewhere to write.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions, priority int, args []string) *Builder {
	if b.err != nil {
		return b
	}

	if path := discoverFile(opts, args); path != "" {
		return b.WithFile(path, priority)
	}

	// Fall back to the first conventional location.
	ext := ".toml"
	if len(opts.Extensions) > 0 {
		ext = opts.Extensions[0]
	}
	return b.WithFile(opts.Name+ext, priority)
}

// discoverFile returns the first config file path that exists, or the
// explicitly requested one.
func discoverFile(opts FileDiscoveryOptions, args []string) string {
	// CLI flag has the highest precedence and is taken verbatim.
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == opts.CLIFlag && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, opts.CLIFlag+"=") {
				return strings.TrimPrefix(arg, opts.CLIFlag+"=")
			}
		}
	}

	if opts.EnvVar != "" {
		if path, ok := os.LookupEnv(opts.EnvVar); ok && path != "" {
			return path
		}
	}

	var dirs []string
	if opts.UseXDG {
		if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
			dirs = append(dirs, filepath.Join(xdg, opts.Name))
		} else if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".config", opts.Name))
		}
	}
	if opts.UseCurrentDir {
		dirs = append(dirs, ".")
	}
	dirs = append(dirs, opts.Paths...)

	for _, dir := range dirs {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
	}

	return ""
}
