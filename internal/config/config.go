// Package config loads memora's settings from defaults, an optional YAML
// file, MEMORA_* environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/conorfennell/memora/internal/srs"
)

const envPrefix = "MEMORA_"

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Log     LogConfig     `koanf:"log"`
	Storage StorageConfig `koanf:"storage"`
	HTTP    HTTPConfig    `koanf:"http"`
	Auth    AuthConfig    `koanf:"auth"`
	Sync    SyncConfig    `koanf:"sync"`
	SRS     srs.Config    `koanf:"srs"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// StorageConfig selects the backend. Only the section of the chosen
// backend needs to be filled in.
type StorageConfig struct {
	Backend  string         `koanf:"backend" validate:"oneof=sqlite postgres"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type PostgresConfig struct {
	URL string `koanf:"url"`
}

type HTTPConfig struct {
	Addr string `koanf:"addr" validate:"required,hostname_port"`
}

type AuthConfig struct {
	// JWTSecret signs and verifies HS256 bearer tokens.
	JWTSecret string `koanf:"jwt_secret" validate:"omitempty,min=16"`
}

type SyncConfig struct {
	// ReposDir is where git sources are cloned.
	ReposDir string `koanf:"repos_dir" validate:"required"`
}

func defaults() map[string]any {
	s := srs.DefaultConfig()
	return map[string]any{
		"log.level":               "info",
		"log.pretty":              false,
		"storage.backend":         BackendSQLite,
		"storage.sqlite.path":     "memora.db",
		"storage.postgres.url":    "",
		"http.addr":               "localhost:8080",
		"auth.jwt_secret":         "",
		"sync.repos_dir":          "repos",
		"srs.first_review.again":  s.FirstReview.Again,
		"srs.first_review.hard":   s.FirstReview.Hard,
		"srs.first_review.good":   s.FirstReview.Good,
		"srs.first_review.easy":   s.FirstReview.Easy,
		"srs.multipliers.hard":    s.Multipliers.Hard,
		"srs.multipliers.good":    s.Multipliers.Good,
		"srs.multipliers.easy":    s.Multipliers.Easy,
		"srs.max_interval":        s.MaxInterval,
		"srs.min_interval":        s.MinInterval,
		"srs.flexibility_window":  s.FlexibilityWindow,
		"srs.default_ease_factor": s.DefaultEaseFactor,
	}
}

// flagKeys maps command-line flag names to configuration keys. Flags not
// listed here are not configuration.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-pretty": "log.pretty",
	"backend":    "storage.backend",
	"db":         "storage.sqlite.path",
	"pg-url":     "storage.postgres.url",
	"addr":       "http.addr",
	"repos-dir":  "sync.repos_dir",
}

// Load builds the configuration. configFile may be empty. flags may be nil;
// only flags the user set override the other sources.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey turns MEMORA_STORAGE__SQLITE__PATH into storage.sqlite.path.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	v, err := newValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
