package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter/rates"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, string(rates.DefaultBase), cfg.Rates.Base)
	assert.Equal(t, rates.PrimaryUrlBase, cfg.Rates.PrimaryURL)
	assert.Equal(t, rates.FallbackUrlBase, cfg.Rates.FallbackURL)
	assert.Equal(t, 10*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, "USD", cfg.Display.From)
	assert.Equal(t, "INR", cfg.Display.To)
	assert.Equal(t, 1.0, cfg.Display.Amount)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
http:
  addr: ":9090"
rates:
  base: usd
  timeout: 2s
display:
  locale: de
  from: GBP
log:
  level: debug
  format: json
`)
	t.Setenv(PathEnv, path)
	t.Setenv("CONVERTER_DISPLAY_TO", "JPY")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "usd", cfg.Rates.Base)
	assert.Equal(t, 2*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, "de", cfg.Display.Locale)
	assert.Equal(t, "GBP", cfg.Display.From)
	assert.Equal(t, "JPY", cfg.Display.To)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// unset keys keep their defaults
	assert.Equal(t, rates.FallbackUrlBase, cfg.Rates.FallbackURL)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv(PathEnv, "")
	// registered so t restores the original value after godotenv sets it
	t.Setenv("CONVERTER_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("CONVERTER_LOG_FORMAT"))

	envFile := writeFile(t, "test.env", "CONVERTER_LOG_FORMAT=json\n")

	cfg, err := LoadFrom(envFile)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("CONVERTER_LOG_LEVEL", "loud")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.ErrorContains(t, err, "log.level")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}

func TestLoad_RatesOverrides(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("CONVERTER_RATES_PRIMARY_URL", "http://localhost:9000/v1/")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/v1/", cfg.Rates.PrimaryURL)
	assert.Equal(t, rates.FallbackUrlBase, cfg.Rates.FallbackURL)
}
