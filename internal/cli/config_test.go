package cli

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Format != formatSVG {
		t.Errorf("Format = %q, want %q", cfg.Format, formatSVG)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true")
	}
	if cfg.Relations != nil {
		t.Errorf("Relations = %v, want nil", cfg.Relations)
	}
}

func TestConfigDecode(t *testing.T) {
	cfg := defaultConfig()
	src := `
format = "dot"
relations = ["rf", "co"]

[cache]
enabled = false
dir = "/tmp/isla-test"
ttl_hours = 1
`
	if _, err := toml.Decode(src, &cfg); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if cfg.Format != "dot" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if len(cfg.Relations) != 2 || cfg.Relations[0] != "rf" {
		t.Errorf("Relations = %v", cfg.Relations)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true after override")
	}
	if cfg.Cache.Dir != "/tmp/isla-test" {
		t.Errorf("Cache.Dir = %q", cfg.Cache.Dir)
	}
}

func TestCacheDir_Override(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.Dir = "/tmp/isla-cache"

	dir, err := cacheDir(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/isla-cache" {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestCacheTTL(t *testing.T) {
	cfg := Config{Cache: CacheConfig{TTLHours: 2}}
	if got := cacheTTL(cfg); got != 2*time.Hour {
		t.Errorf("cacheTTL() = %v", got)
	}
	if got := cacheTTL(Config{}); got != 0 {
		t.Errorf("cacheTTL(zero) = %v", got)
	}
}
