// Package config loads the world generator's settings from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-world/internal/errors"
)

// Config holds the settings shared by the worldgen commands
type Config struct {
	ChunkSide  int      `env:"WORLDGEN_CHUNK_SIDE"  envDefault:"5"`
	Seed       uint64   `env:"WORLDGEN_SEED"`
	LogLevel   string   `env:"WORLDGEN_LOG_LEVEL"   envDefault:"info"`
	Catalog    string   `env:"WORLDGEN_CATALOG"`
	RedisAddrs []string `env:"WORLDGEN_REDIS_ADDRS" envSeparator:","`
	WorldID    string   `env:"WORLDGEN_WORLD_ID"    envDefault:"default"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Load reads Config from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("ChunkSide", c.ChunkSide, 1, vb)
	if _, err := c.Level(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	if len(c.RedisAddrs) > 0 && c.WorldID == "" {
		vb.RequiredField("WorldID")
	}
	for _, addr := range c.RedisAddrs {
		if strings.TrimSpace(addr) == "" {
			vb.Field("RedisAddrs", "cannot contain empty addresses")
			break
		}
	}

	return vb.Build()
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
