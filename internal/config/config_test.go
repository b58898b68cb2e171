package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAPIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "CORS_ORIGINS", "ENV", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
	// keep a stray .env in the package dir from leaking in
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearAPIEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Advisor.APIKey)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Advisor.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Advisor.BaseURL)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoad_FromEnv(t *testing.T) {
	clearAPIEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENV", "production")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sk-test", cfg.Advisor.APIKey)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearAPIEnv(t)
	os.Unsetenv("OPENAI_MODEL")
	require.NoError(t, os.WriteFile(".env", []byte("OPENAI_MODEL=gpt-4o-mini\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Advisor.Model)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port":       {"PORT", "http"},
		"rate limit": {"RATE_LIMIT_PER_MINUTE", "lots"},
		"negative":   {"RATE_LIMIT_BURST", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearAPIEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadCLI_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETLY_DATA", "")

	cfg, err := LoadCLI()
	require.NoError(t, err)
	assert.Equal(t, DefaultDataFile, cfg.Ledger.DataFile)
	assert.Equal(t, "$", cfg.Ledger.Currency)
}

func TestLoadCLI_FromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("BUDGETLY_DATA", "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "budgetly"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "budgetly", "config.toml"), []byte(`
[ledger]
data_file = "/tmp/ledger.json"
currency = "€"
`), 0o600))

	cfg, err := LoadCLI()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.json", cfg.Ledger.DataFile)
	assert.Equal(t, "€", cfg.Ledger.Currency)

	t.Setenv("BUDGETLY_DATA", "/var/ledger.json")
	cfg, err = LoadCLI()
	require.NoError(t, err)
	assert.Equal(t, "/var/ledger.json", cfg.Ledger.DataFile)
}

func TestLoadCLI_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "budgetly"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "budgetly", "config.toml"), []byte("[ledger\n"), 0o600))

	_, err := LoadCLI()
	assert.Error(t, err)
}
