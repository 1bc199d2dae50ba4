// Package config loads the optional pktviz configuration file.
//
// The file lives at ~/.config/pktviz/config.toml (override with the
// PKTVIZ_CONFIG environment variable) and provides defaults for rendering
// and caching. Command-line flags always win over file values.
//
// Example:
//
//	style = "blueprint"
//
//	[layout]
//	bits_per_row = 16
//	show_bits = false
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[serve]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pktviz/pktviz/pkg/errors"
)

// Config is the top-level configuration file shape.
type Config struct {
	// Style is the default visual style ("classic" or "blueprint").
	Style string `toml:"style"`

	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// LayoutConfig overrides the built-in layout defaults.
// Zero values defer to the layout package's defaults; the paddings and
// ShowBits are pointers so an explicit 0 or false in the file is honored.
type LayoutConfig struct {
	BitsPerRow int   `toml:"bits_per_row"`
	BitWidth   int   `toml:"bit_width"`
	RowHeight  int   `toml:"row_height"`
	PaddingX   *int  `toml:"padding_x"`
	PaddingY   *int  `toml:"padding_y"`
	ShowBits   *bool `toml:"show_bits"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", or "none".
	// Defaults to "file".
	Backend string `toml:"backend"`

	// Dir is the file cache directory. Defaults to ~/.cache/pktviz.
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServeConfig configures the HTTP serve mode.
type ServeConfig struct {
	// Addr is the listen address. Defaults to ":8080".
	Addr string `toml:"addr"`

	// CacheNamespace prefixes every cache key written by this deployment,
	// so multiple instances can share one Redis or MongoDB backend without
	// colliding. Empty means no prefix.
	CacheNamespace string `toml:"cache_namespace"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Style: "classic",
		Cache: CacheConfig{Backend: "file"},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// Path returns the config file location, honoring PKTVIZ_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("PKTVIZ_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pktviz", "config.toml"), nil
}

// Load reads the configuration file at path, falling back to defaults for
// unset fields. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects values the rest of the program cannot act on.
func validate(cfg Config) error {
	switch cfg.Cache.Backend {
	case "", "file", "redis", "mongo", "none":
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid cache backend %q (must be file, redis, mongo, or none)", cfg.Cache.Backend)
	}

	switch cfg.Style {
	case "", "classic", "blueprint":
	default:
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style %q (must be classic or blueprint)", cfg.Style)
	}

	return nil
}
