package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backend identifiers.
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port         int
	LogLevel     string
	LogFormat    string
	UserID       string // persistence scope; empty means the global scope
	StoreBackend string // "file" or "postgres"
	DataDir      string // file store root
	ConfigDir    string // static catalog directory
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		UserID:       getEnv("USER_ID", ""),
		StoreBackend: getEnv("STORE_BACKEND", StoreBackendFile),
		DataDir:      getEnv("DATA_DIR", "data"),
		ConfigDir:    getEnv("CONFIG_DIR", "configs"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "studypet"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.StoreBackend != StoreBackendFile && cfg.StoreBackend != StoreBackendPostgres {
		return nil, fmt.Errorf("invalid STORE_BACKEND value: %s", cfg.StoreBackend)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
