package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/memora/internal/srs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memora.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "memora.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, "localhost:8080", cfg.HTTP.Addr)
	assert.Equal(t, srs.DefaultConfig(), cfg.SRS)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		args              []string
		wantErrorContains []string
		check             func(t *testing.T, cfg *Config)
	}{
		{
			name: "file overrides defaults",
			configContent: `log:
  level: debug
srs:
  multipliers:
    good: 2.5
  max_interval: 180
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, 2.5, cfg.SRS.Multipliers.Good)
				assert.Equal(t, 1.2, cfg.SRS.Multipliers.Hard)
				assert.Equal(t, 180.0, cfg.SRS.MaxInterval)
			},
		},
		{
			name:          "environment overrides file",
			configContent: "http:\n  addr: localhost:9000\n",
			env: map[string]string{
				"MEMORA_HTTP__ADDR":              "localhost:9100",
				"MEMORA_STORAGE__BACKEND":        "postgres",
				"MEMORA_STORAGE__POSTGRES__URL":  "postgres://localhost/memora",
				"MEMORA_SRS__FLEXIBILITY_WINDOW": "0.1",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost:9100", cfg.HTTP.Addr)
				assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
				assert.Equal(t, "postgres://localhost/memora", cfg.Storage.Postgres.URL)
				assert.Equal(t, 0.1, cfg.SRS.FlexibilityWindow)
			},
		},
		{
			name:          "flags override environment",
			configContent: "",
			env:           map[string]string{"MEMORA_STORAGE__SQLITE__PATH": "env.db"},
			args:          []string{"--db", "flag.db"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "flag.db", cfg.Storage.SQLite.Path)
				// Unset flags leave other sources alone.
				assert.Equal(t, "localhost:8080", cfg.HTTP.Addr)
			},
		},
		{
			name:              "unknown backend",
			configContent:     "storage:\n  backend: mysql\n",
			wantErrorContains: []string{"invalid configuration", "backend"},
		},
		{
			name:              "postgres without url",
			configContent:     "storage:\n  backend: postgres\n",
			wantErrorContains: []string{"is required for the postgres backend"},
		},
		{
			name:              "max interval below min interval",
			configContent:     "srs:\n  min_interval: 10\n  max_interval: 5\n",
			wantErrorContains: []string{"max_interval"},
		},
		{
			name:              "flexibility window out of range",
			configContent:     "srs:\n  flexibility_window: 1.5\n",
			wantErrorContains: []string{"flexibility_window"},
		},
		{
			name:              "invalid YAML",
			configContent:     "log:\n  level: [[[\n",
			wantErrorContains: []string{"failed to read config file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.configContent != "" {
				path = writeConfig(t, tt.configContent)
			}
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.String("db", "memora.db", "")
			fs.String("addr", "localhost:8080", "")
			fs.Bool("verbose", false, "")
			require.NoError(t, fs.Parse(tt.args))

			cfg, err := Load(path, fs)
			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				for _, want := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "storage.sqlite.path", envKey("MEMORA_STORAGE__SQLITE__PATH"))
	assert.Equal(t, "auth.jwt_secret", envKey("MEMORA_AUTH__JWT_SECRET"))
}
