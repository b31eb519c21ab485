package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds user-level defaults loaded from the TOML config file.
// Command-line flags take precedence over config values, which take
// precedence over the built-in defaults.
type Config struct {
	// Format is the default output format: "dot", "svg", or "png".
	Format string `toml:"format"`

	// Relations overrides the default draw list when non-empty.
	Relations []string `toml:"relations"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig controls the rendered-artifact cache.
type CacheConfig struct {
	// Enabled toggles artifact caching. Defaults to true.
	Enabled bool `toml:"enabled"`

	// Dir overrides the cache directory. Empty means the platform's
	// user cache directory.
	Dir string `toml:"dir"`

	// TTLHours is the artifact expiry in hours. Zero means no expiry.
	TTLHours int `toml:"ttl_hours"`
}

// defaultConfig returns the built-in defaults used when no config file
// exists or a field is unset.
func defaultConfig() Config {
	return Config{
		Format: formatSVG,
		Cache: CacheConfig{
			Enabled:  true,
			TTLHours: 24 * 30,
		},
	}
}

// configPath returns the path of the user config file
// (e.g. ~/.config/isla/config.toml).
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "isla", "config.toml"), nil
}

// cacheDir returns the artifact cache directory, honoring the config
// override (e.g. ~/.cache/isla/artifacts).
func cacheDir(cfg Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "isla", "artifacts"), nil
}

// cacheTTL returns the configured artifact TTL as a duration.
func cacheTTL(cfg Config) time.Duration {
	return time.Duration(cfg.Cache.TTLHours) * time.Hour
}

// loadConfig reads the user config file, falling back to defaults when the
// file does not exist. A present-but-malformed file is an error; silently
// ignoring it would make the config appear dead.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil // no home directory; run on defaults
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
