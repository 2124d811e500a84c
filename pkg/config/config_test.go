package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvVarConfig, "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9876, c.Server.Port)
	assert.Equal(t, 5*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, runtime.GOOS, c.Menu.Platform)
	assert.Equal(t, 16, c.Events.Buffer)
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "jot.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 8181
shutdown_timeout = "2s"

[log]
level = "debug"

[menu]
platform = "darwin"
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, c.Server.Port)
	assert.Equal(t, 2*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "darwin", c.Menu.Platform)
	assert.Equal(t, 16, c.Events.Buffer)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("JOT_SERVER_PORT", "7070")
	t.Setenv("JOT_MENU_PLATFORM", "windows")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "windows", c.Menu.Platform)
}

func TestLoadConfigEnvVar(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "jot.toml")
	require.NoError(t, os.WriteFile(path, []byte("[events]\nbuffer = 4\n"), 0o600))
	t.Setenv(EnvVarConfig, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Events.Buffer)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[server]\nport = 70000\n"), 0o600))
	_, err = Load(bad)
	require.ErrorContains(t, err, "server.port")

	mac := filepath.Join(t.TempDir(), "mac.toml")
	require.NoError(t, os.WriteFile(mac, []byte("[menu]\nplatform = \"macos\"\n"), 0o600))
	_, err = Load(mac)
	require.ErrorContains(t, err, "menu.platform")

	zero := filepath.Join(t.TempDir(), "zero.toml")
	require.NoError(t, os.WriteFile(zero, []byte("[events]\nbuffer = 0\n"), 0o600))
	_, err = Load(zero)
	require.ErrorContains(t, err, "events.buffer")
}

func TestLoadNormalizesPlatform(t *testing.T) {
	isolate(t)
	t.Setenv("JOT_MENU_PLATFORM", " Darwin ")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "darwin", c.Menu.Platform)
}
