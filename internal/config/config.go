// Package config loads fitmentor settings from a TOML file and FITMENTOR_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const envPrefix = "FITMENTOR_"

type Config struct {
	Backend string `toml:"backend"`
	DBPath  string `toml:"db_path"`
	// sqlite and memory only; redis relies on its own maxmemory. 0 disables it.
	QuotaBytes int64 `toml:"quota_bytes"`
	// redis
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	// logging
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

func Default() Config {
	return Config{
		Backend:   BackendSQLite,
		RedisAddr: "localhost:6379",
		LogLevel:  "warn",
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (expected sqlite, redis or memory)", c.Backend)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("quota_bytes must be >= 0")
	}
	if c.Backend == BackendRedis && strings.TrimSpace(c.RedisAddr) == "" {
		return fmt.Errorf("redis_addr is required for the redis backend")
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("BACKEND", &cfg.Backend)
	str("DB_PATH", &cfg.DBPath)
	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PASSWORD", &cfg.RedisPassword)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FILE", &cfg.LogFile)

	if v, ok := lookup(envPrefix + "REDIS_DB"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %sREDIS_DB %q", envPrefix, v)
		}
		cfg.RedisDB = n
	}
	if v, ok := lookup(envPrefix + "QUOTA_BYTES"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sQUOTA_BYTES %q", envPrefix, v)
		}
		cfg.QuotaBytes = n
	}
	cfg.Backend = strings.ToLower(cfg.Backend)
	return nil
}
