package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	HTTPTimeout   int64 // seconds
	StateDBPath   string
	Environment   string
	SessionToken  string
	DevServerPort string
	DevSigningKey string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		APIBaseURL:    getEnv("SHOPSYNC_API_URL", "http://localhost:8080"),
		HTTPTimeout:   getEnvAsInt64("SHOPSYNC_HTTP_TIMEOUT", 15),
		StateDBPath:   getEnv("SHOPSYNC_STATE_DB", "shopsync.db"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		SessionToken:  getEnv("SHOPSYNC_TOKEN", ""),
		DevServerPort: getEnv("DEV_SERVER_PORT", "8080"),
		DevSigningKey: getEnv("DEV_SIGNING_KEY", "shopsync-dev-secret"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
