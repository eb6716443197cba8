package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	CatalogPath           string
	CatalogReloadSchedule string
	LogLevel              string
}

// LoadConfig loads envFile into the process environment, when it exists, and
// reads the configuration from it. Variables already set in the environment win
// over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	return Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", "burger"),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		CatalogPath:           getEnv("CATALOG_PATH", ""),
		CatalogReloadSchedule: getEnv("CATALOG_RELOAD_SCHEDULE", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}, nil
}

// DSN returns the Postgres connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// HTTPAddress is the listen address of the REST API.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
