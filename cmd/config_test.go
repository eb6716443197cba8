package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"CATALOG_PATH", "CATALOG_RELOAD_SCHEDULE", "LOG_LEVEL",
}

// clearConfigEnv unsets every config variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.CatalogReloadSchedule)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("CATALOG_RELOAD_SCHEDULE", "@every 5m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "@every 5m", cfg.CatalogReloadSchedule)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddress())
}

func TestLoadConfig_FromDotEnvFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_USER", "from-env")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_USER=from-file\nDB_NAME=burgers\nCATALOG_PATH=/etc/burger/catalog.yaml\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.DBUser)
	assert.Equal(t, "burgers", cfg.DBName)
	assert.Equal(t, "/etc/burger/catalog.yaml", cfg.CatalogPath)
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "burger",
		DBPassword: "secret",
		DBName:     "burgers",
		DBSslMode:  "require",
	}

	assert.Equal(t,
		"host=db port=5433 user=burger password=secret dbname=burgers sslmode=require",
		cfg.DSN())
}

func TestNewLogger(t *testing.T) {
	t.Run("known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "WARN", "error"} {
			_, err := NewLogger(os.Stdout, level)
			require.NoError(t, err, level)
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewLogger(os.Stdout, "loud")
		require.Error(t, err)
	})
}
