// File: slate/scan_test.go
package slate_test

import (
	"net"
	"testing"
	"time"

	"github.com/slatecfg/slate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	type ServerConfig struct {
		Host    string        `config:"host"`
		Port    int           `config:"port"`
		Timeout time.Duration `config:"timeout"`
		Bind    net.IP        `config:"bind"`
		Tags    []string      `config:"tags"`
	}

	type AppConfig struct {
		Name   string       `config:"name"`
		Server ServerConfig `config:"server"`
	}

	newContainer := func(t *testing.T) *slate.Container {
		t.Helper()
		path := writeFile(t, "app.toml", `
name = "demo"

[server]
host = "localhost"
port = 8080
timeout = "1500ms"
bind = "127.0.0.1"
tags = "alpha,beta"
`)
		c := slate.New()
		loc, err := slate.NewFileLocator(path)
		require.NoError(t, err)
		require.NoError(t, c.AddLocator(loc, 100))
		return c
	}

	t.Run("Full Document", func(t *testing.T) {
		c := newContainer(t)

		var cfg AppConfig
		require.NoError(t, c.Scan(&cfg))

		assert.Equal(t, "demo", cfg.Name)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 1500*time.Millisecond, cfg.Server.Timeout)
		assert.True(t, cfg.Server.Bind.Equal(net.ParseIP("127.0.0.1")))
		assert.Equal(t, []string{"alpha", "beta"}, cfg.Server.Tags)
	})

	t.Run("Subtree", func(t *testing.T) {
		c := newContainer(t)

		var server ServerConfig
		require.NoError(t, c.ScanPath("server", &server))
		assert.Equal(t, "localhost", server.Host)
		assert.Equal(t, 8080, server.Port)
	})

	t.Run("Higher Priority Locator Shadows", func(t *testing.T) {
		c := newContainer(t)
		require.NoError(t, c.AddLocator(
			slate.NewMapLocator(map[string]string{"server.host": "override"}), 0))

		var cfg AppConfig
		require.NoError(t, c.Scan(&cfg))
		assert.Equal(t, "override", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("Non Pointer Target Rejected", func(t *testing.T) {
		c := newContainer(t)

		var cfg AppConfig
		assert.Error(t, c.Scan(cfg))
	})

	t.Run("Missing Subtree Leaves Zero Values", func(t *testing.T) {
		c := newContainer(t)

		var server ServerConfig
		require.NoError(t, c.ScanPath("absent", &server))
		assert.Zero(t, server.Port)
	})
}
