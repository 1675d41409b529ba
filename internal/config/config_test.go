package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInit_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Init("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "cards.json", cfg.Store.Path)
	assert.Equal(t, "leitner", cfg.Scheduler.Strategy)
	assert.Equal(t, uint(5), cfg.Scheduler.MaxBox)
	assert.Equal(t, 10, cfg.Quiz.Count)
	assert.False(t, cfg.Quiz.Exact)
	assert.False(t, cfg.Translator.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Translator.Timeout)
	assert.Equal(t, "ja", cfg.Translator.Source)
	assert.Equal(t, "fr", cfg.Translator.Target)
}

func TestInit_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
env: development
store:
  backend: sqlite
  path: vocab.db
scheduler:
  strategy: frequency
  rand_seed: 42
quiz:
  count: 5
  exact: true
translator:
  enabled: true
  timeout: 2s
`)
	t.Setenv("NIHONGO_QUIZ_COUNT", "7")
	t.Setenv("NIHONGO_SCHEDULER_MAX_BOX", "8")

	cfg, err := Init(path)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "vocab.db", cfg.Store.Path)
	assert.Equal(t, "frequency", cfg.Scheduler.Strategy)
	assert.Equal(t, int64(42), cfg.Scheduler.RandSeed)
	assert.Equal(t, uint(8), cfg.Scheduler.MaxBox)
	assert.Equal(t, 7, cfg.Quiz.Count)
	assert.True(t, cfg.Quiz.Exact)
	assert.True(t, cfg.Translator.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Translator.Timeout)
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown strategy", body: "scheduler:\n  strategy: sm2\n"},
		{name: "box count too small", body: "scheduler:\n  max_box: 1\n"},
		{name: "zero quiz size", body: "quiz:\n  count: 0\n"},
		{name: "unknown backend", body: "store:\n  backend: redis\n"},
		{name: "postgres without connection", body: "store:\n  backend: postgres\n"},
		{name: "broken yaml", body: "store: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Init(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestInit_MissingExplicitFile(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_ValidatePostgres(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: postgres
  db:
    conn:
      host: localhost
      port: "5432"
      user: nihongo
      name: nihongo
`)
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Init(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Store.DB.Conn.Password)
	assert.Equal(t, "disable", cfg.Store.DB.Conn.SSL)

	cfg.Store.DB.Conn.Port = "abc"
	require.Error(t, cfg.Validate())
}
