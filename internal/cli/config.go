package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/coursegraph/pkg/core/layout"
	"github.com/matzehuels/coursegraph/pkg/errors"
)

// Cache backends selectable in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// DefaultServerAddr is the listen address of "coursegraph serve".
const DefaultServerAddr = ":8080"

// Config is the optional TOML config file.
//
//	direction = "LR"
//
//	[layout]
//	node_width = 200.0
//	vertical_gap = 60.0
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":9090"
type Config struct {
	Direction string        `toml:"direction"`
	Layout    layout.Config `toml:"layout"`
	Cache     CacheConfig   `toml:"cache"`
	Server    ServerConfig  `toml:"server"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	RedisURL string `toml:"redis_url"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Direction: layout.TopToBottom.String(),
		Layout:    layout.DefaultConfig(),
		Cache:     CacheConfig{Backend: CacheBackendFile},
		Server:    ServerConfig{Addr: DefaultServerAddr},
	}
}

// LoadConfig reads the config file at path. An empty path means the default
// location; a missing default file yields DefaultConfig. Unknown keys are
// rejected so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return DefaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.normalize(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// normalize fills defaults and canonicalises the direction and backend.
func (c *Config) normalize() error {
	dir, err := layout.ParseDirection(c.Direction)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDirection, err, "direction")
	}
	c.Direction = dir.String()
	c.Layout = c.Layout.WithDefaults()

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = CacheBackendFile
	case CacheBackendFile, CacheBackendNone:
	case CacheBackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"cache.backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	return nil
}
