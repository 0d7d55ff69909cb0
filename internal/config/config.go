// Package config loads service configuration with a three-layer
// precedence: environment variables over an optional YAML file over
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces the service's environment variables, e.g.
// DAYMIX_SERVER_ADDR -> server.addr.
const EnvPrefix = "DAYMIX_"

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "DAYMIX_CONFIG"

// DefaultConfigPaths lists where config files are searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/daymix/config.yaml",
}

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Spotify SpotifyConfig `koanf:"spotify"`
	Cache   CacheConfig   `koanf:"cache"`
	Engine  EngineConfig  `koanf:"engine"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimit       int           `koanf:"rate_limit"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
}

type SpotifyConfig struct {
	OEmbedURL    string `koanf:"oembed_url"`
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
}

// UseWebAPI reports whether Web API credentials are configured. Without
// them the service falls back to the unauthenticated oEmbed endpoint.
func (s SpotifyConfig) UseWebAPI() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

type CacheConfig struct {
	TTL        time.Duration `koanf:"ttl"`
	Size       int           `koanf:"size"`
	SQLitePath string        `koanf:"sqlite_path"`
	Warmup     bool          `koanf:"warmup"`
}

type EngineConfig struct {
	ItemsPerBlock int    `koanf:"items_per_block"`
	Timezone      string `koanf:"timezone"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       60,
			AllowedOrigins:  []string{"*"},
		},
		Spotify: SpotifyConfig{
			OEmbedURL: "https://open.spotify.com",
		},
		Cache: CacheConfig{
			TTL:        24 * time.Hour,
			Size:       512,
			SQLitePath: "", // empty disables the persistent store
			Warmup:     true,
		},
		Engine: EngineConfig{
			ItemsPerBlock: 5,
			// UTC by default so bucket boundaries do not depend on the
			// host timezone.
			Timezone: "UTC",
		},
	}
}

// Load builds the configuration: defaults, then an optional YAML file,
// then DAYMIX_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	normalizeOrigins(k)

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise fail at an awkward
// moment deep inside startup.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive, got %d", c.Server.RateLimit)
	}
	if c.Engine.ItemsPerBlock <= 0 {
		return fmt.Errorf("engine.items_per_block must be positive, got %d", c.Engine.ItemsPerBlock)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("engine.timezone: %w", err)
	}
	if (c.Spotify.ClientID == "") != (c.Spotify.ClientSecret == "") {
		return fmt.Errorf("spotify.client_id and spotify.client_secret must be set together")
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Engine.Timezone)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps DAYMIX_SERVER_RATE_LIMIT to server.rate_limit.
// Only the first underscore separates the section from the key, so
// multi-word keys survive.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + key
}

// normalizeOrigins splits a comma-separated origins string from the
// environment into a slice.
func normalizeOrigins(k *koanf.Koanf) {
	const path = "server.allowed_origins"
	raw, ok := k.Get(path).(string)
	if !ok || raw == "" {
		return
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) > 0 {
		_ = k.Set(path, origins)
	}
}
