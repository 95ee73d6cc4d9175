// File: slate/locator_test.go
package slate_test

import (
	"os"
	"testing"

	"github.com/slatecfg/slate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLocator(t *testing.T) {
	t.Run("Lookup And Store", func(t *testing.T) {
		l := slate.NewMapLocator(map[string]string{"a": "1"})

		v, ok := l.Lookup("a")
		require.True(t, ok)
		assert.Equal(t, "1", v)

		_, ok = l.Lookup("missing")
		assert.False(t, ok)

		require.NoError(t, l.Store("b", "2"))
		v, ok = l.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, "2", v)
	})

	t.Run("Initial Map Is Copied", func(t *testing.T) {
		seed := map[string]string{"a": "1"}
		l := slate.NewMapLocator(seed)

		seed["a"] = "mutated"
		v, _ := l.Lookup("a")
		assert.Equal(t, "1", v)
	})

	t.Run("Read Only", func(t *testing.T) {
		l := slate.NewMapLocator(map[string]string{"a": "1"})
		l.SetReadOnly(true)

		assert.Error(t, l.Store("a", "2"))

		v, _ := l.Lookup("a")
		assert.Equal(t, "1", v)
	})

	t.Run("Keys", func(t *testing.T) {
		l := slate.NewMapLocator(map[string]string{"a": "1", "b": "2"})
		assert.ElementsMatch(t, []string{"a", "b"}, l.Keys())
	})

	t.Run("Save Is Noop", func(t *testing.T) {
		assert.NoError(t, slate.NewMapLocator(nil).Save())
	})
}

func TestEnvLocator(t *testing.T) {
	t.Run("Lookup With Prefix Transform", func(t *testing.T) {
		t.Setenv("SLTEST_SERVER_PORT", "9090")

		l := slate.NewEnvLocator("SLTEST_")

		v, ok := l.Lookup("server.port")
		require.True(t, ok)
		assert.Equal(t, "9090", v)

		_, ok = l.Lookup("server.host")
		assert.False(t, ok)
	})

	t.Run("Store Sets Process Environment", func(t *testing.T) {
		l := slate.NewEnvLocator("SLTEST_")
		t.Cleanup(func() { os.Unsetenv("SLTEST_SERVER_HOST") })

		require.NoError(t, l.Store("server.host", "example.org"))
		assert.Equal(t, "example.org", os.Getenv("SLTEST_SERVER_HOST"))
	})

	t.Run("Custom Transform", func(t *testing.T) {
		t.Setenv("verbatim", "yes")

		l := slate.NewEnvLocatorTransform(func(path string) string { return path })

		v, ok := l.Lookup("verbatim")
		require.True(t, ok)
		assert.Equal(t, "yes", v)
	})
}

func TestArgLocator(t *testing.T) {
	t.Run("Flag Forms", func(t *testing.T) {
		l, err := slate.NewArgLocator([]string{
			"--server.port=9090",
			"--server.host", "example.org",
			"--debug",
			"positional",
		})
		require.NoError(t, err)

		v, ok := l.Lookup("server.port")
		require.True(t, ok)
		assert.Equal(t, "9090", v)

		v, ok = l.Lookup("server.host")
		require.True(t, ok)
		assert.Equal(t, "example.org", v)

		v, ok = l.Lookup("debug")
		require.True(t, ok)
		assert.Equal(t, "true", v)

		_, ok = l.Lookup("positional")
		assert.False(t, ok)
	})

	t.Run("Trailing Boolean Flag", func(t *testing.T) {
		l, err := slate.NewArgLocator([]string{"--verbose"})
		require.NoError(t, err)

		v, ok := l.Lookup("verbose")
		require.True(t, ok)
		assert.Equal(t, "true", v)
	})

	t.Run("Invalid Key Segment", func(t *testing.T) {
		_, err := slate.NewArgLocator([]string{"--bad..key=1"})
		assert.Error(t, err)
	})

	t.Run("Keys", func(t *testing.T) {
		l, err := slate.NewArgLocator([]string{"--a=1", "--b=2"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, l.Keys())
	})
}
