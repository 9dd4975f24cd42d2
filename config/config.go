// Package config loads zd settings from a TOML file, with defaults for
// everything so the tool works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all zd configuration.
type Config struct {
	// MaxAge is the entry lifetime in seconds. Entries not visited for
	// longer than this are pruned. Zero disables expiry.
	MaxAge int64 `toml:"max_age"`
	// Datafile is the path of the persisted entry store.
	Datafile string `toml:"datafile"`
	// Exclude lists gitignore-style patterns for directories that are
	// never tracked.
	Exclude []string `toml:"exclude"`
}

// Default returns a Config with sensible defaults: a 90-day entry lifetime
// and a datafile under the user's data directory.
func Default() Config {
	return Config{
		MaxAge:   90 * 24 * 3600,
		Datafile: filepath.Join(dataDir(), "zd.data"),
	}
}

// Path returns the config file location: $ZD_CONFIG if set, otherwise
// ~/.config/zd/config.toml.
func Path() string {
	if p := os.Getenv("ZD_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "zd", "config.toml")
}

// Load reads the config file at Path. A missing file yields the defaults;
// a present but unparsable file is an error rather than a silent fallback.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at the given path, overlaying its values
// on the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Datafile = ExpandPath(cfg.Datafile)
	for i, p := range cfg.Exclude {
		cfg.Exclude[i] = ExpandPath(p)
	}
	return cfg, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, p[2:])
	}
	return p
}

func dataDir() string {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "zd")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "zd")
}
