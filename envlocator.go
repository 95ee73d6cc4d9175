// File: slate/envlocator.go
package slate

import (
	"os"
	"strings"
)

// EnvTransformFunc converts a configuration path to an environment
// variable name.
type EnvTransformFunc func(path string) string

// EnvLocator resolves values from process environment variables. A
// path like "server.port" maps to an env var via the transform
// function; the default turns dots into underscores, uppercases, and
// prepends the prefix ("server.port" -> "MYAPP_SERVER_PORT").
//
// The environment cannot be enumerated back into config paths, so
// EnvLocator does not implement Keyer.
type EnvLocator struct {
	transform EnvTransformFunc
}

// NewEnvLocator creates an environment locator with the default
// transform for the given prefix.
func NewEnvLocator(prefix string) *EnvLocator {
	return &EnvLocator{transform: defaultEnvTransform(prefix)}
}

// NewEnvLocatorTransform creates an environment locator with a custom
// path-to-variable transform.
func NewEnvLocatorTransform(transform EnvTransformFunc) *EnvLocator {
	if transform == nil {
		transform = defaultEnvTransform("")
	}
	return &EnvLocator{transform: transform}
}

// Lookup reads the environment variable mapped to key.
func (l *EnvLocator) Lookup(key string) (string, bool) {
	return os.LookupEnv(l.transform(key))
}

// Store sets the mapped environment variable for the current process.
func (l *EnvLocator) Store(key, value string) error {
	return os.Setenv(l.transform(key), value)
}

// Save is a no-op; the environment is its own store.
func (l *EnvLocator) Save() error {
	return nil
}

// defaultEnvTransform maps "server.port" with prefix "MYAPP_" to
// "MYAPP_SERVER_PORT".
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(path string) string {
		env := strings.ReplaceAll(path, ".", "_")
		env = strings.ToUpper(env)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}
