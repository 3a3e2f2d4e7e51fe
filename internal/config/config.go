package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"auction-house/utils"
)

// Config holds the runtime settings loaded from the environment
type Config struct {
	Port        string
	StoreDriver string // "memory" or "postgres"
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	JWTSecret   string
	JWTExpiry   time.Duration
}

// Load reads .env if present and assembles the configuration with defaults
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Warn("no .env file found, using system environment variables", nil)
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", "memory"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "auction_house"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpiry:   expiry,
	}
}

// getEnv returns the value of the variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
