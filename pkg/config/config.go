package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. JOT_SERVER_PORT.
	EnvPrefix = "JOT"

	// EnvVarConfig points at an explicit config file.
	EnvVarConfig = "JOT_CONFIG"
)

// knownPlatforms lists the GOOS values accepted for menu.platform.
var knownPlatforms = map[string]struct{}{
	"aix": {}, "android": {}, "darwin": {}, "dragonfly": {}, "freebsd": {},
	"illumos": {}, "ios": {}, "js": {}, "linux": {}, "netbsd": {},
	"openbsd": {}, "plan9": {}, "solaris": {}, "wasip1": {}, "windows": {},
}

// Config holds shell configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Menu   MenuConfig
	Events EventsConfig
}

// ServerConfig holds bridge server settings.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// MenuConfig holds menu settings.
type MenuConfig struct {
	// Platform selects the menu layout; defaults to runtime.GOOS.
	Platform string
}

// EventsConfig holds notification fan-out settings.
type EventsConfig struct {
	// Buffer is the per-subscriber notification buffer.
	Buffer int
}

// Load reads configuration from defaults, an optional TOML file, and env.
// When path is empty, JOT_CONFIG and then ~/.config/jot/config.toml are tried.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 9876)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("menu.platform", runtime.GOOS)
	v.SetDefault("events.buffer", 16)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvVarConfig)
	}

	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "jot"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Menu.Platform = strings.ToLower(strings.TrimSpace(c.Menu.Platform))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid server.shutdown_timeout %s", c.Server.ShutdownTimeout)
	}
	if strings.TrimSpace(c.Menu.Platform) == "" {
		return errors.New("menu.platform is required")
	}
	if _, ok := knownPlatforms[c.Menu.Platform]; !ok {
		return fmt.Errorf("invalid menu.platform %q, want a GOOS value such as darwin, linux or windows", c.Menu.Platform)
	}
	if c.Events.Buffer < 1 {
		return fmt.Errorf("invalid events.buffer %d", c.Events.Buffer)
	}
	return nil
}
