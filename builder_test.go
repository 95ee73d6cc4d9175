// File: slate/builder_test.go
package slate_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/slatecfg/slate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("Layered Assembly", func(t *testing.T) {
		configFile := writeFile(t, "app.toml", `
[server]
host = "file-host"
port = 8080
`)
		t.Setenv("BLDTEST_SERVER_PORT", "9090")

		cfg, err := slate.NewBuilder().
			WithArgs([]string{"--server.host=cli-host"}, 0).
			WithEnv("BLDTEST_", 10).
			WithFile(configFile, 100).
			Build()
		require.NoError(t, err)

		// Args shadow env, env shadows file.
		host, err := cfg.String("server.host", "")
		require.NoError(t, err)
		assert.Equal(t, "cli-host", host)

		port, err := cfg.Int64("server.port", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(9090), port)
	})

	t.Run("New Values Persist To The File Layer", func(t *testing.T) {
		configFile := writeFile(t, "app.toml", "existing = 1\n")

		cfg, err := slate.NewBuilder().
			WithArgs(nil, 0).
			WithFile(configFile, 100).
			Build()
		require.NoError(t, err)

		require.NoError(t, slate.Put(cfg, "volume", 80))
		require.NoError(t, cfg.Save())

		data, err := os.ReadFile(configFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "volume = 80")
	})

	t.Run("Missing File Is Not Fatal", func(t *testing.T) {
		cfg, err := slate.NewBuilder().
			WithFile(filepath.Join(t.TempDir(), "absent.toml"), 100).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.LocatorCount())
	})

	t.Run("Validator Failure", func(t *testing.T) {
		_, err := slate.NewBuilder().
			WithLocator(slate.NewMapLocator(nil), 0).
			WithValidator(func(c *slate.Container) error {
				if c.Text("server.host") == "" {
					return errors.New("server.host required")
				}
				return nil
			}).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.host required")
	})

	t.Run("First Error Sticks", func(t *testing.T) {
		_, err := slate.NewBuilder().
			WithArgs([]string{"--bad..key=1"}, 0).
			WithLocator(slate.NewMapLocator(nil), 10).
			Build()
		assert.Error(t, err)
	})

	t.Run("MustBuild Panics On Error", func(t *testing.T) {
		assert.Panics(t, func() {
			slate.NewBuilder().
				WithArgs([]string{"--bad..key=1"}, 0).
				MustBuild()
		})
	})
}

func TestFileDiscovery(t *testing.T) {
	t.Run("CLI Flag Wins", func(t *testing.T) {
		explicit := writeFile(t, "elsewhere.toml", "from = \"flag\"\n")

		cfg, err := slate.NewBuilder().
			WithFileDiscovery(slate.DefaultDiscoveryOptions("disctest"), 100,
				[]string{"--config", explicit}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "flag", cfg.Text("from"))
	})

	t.Run("Env Var Fallback", func(t *testing.T) {
		explicit := writeFile(t, "fromenv.yaml", "from: env\n")
		t.Setenv("DISCTEST_CONFIG", explicit)

		cfg, err := slate.NewBuilder().
			WithFileDiscovery(slate.DefaultDiscoveryOptions("disctest"), 100, nil).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "env", cfg.Text("from"))
	})
}
