package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	StoreBackend     string // bolt, redis or memory
	BoltPath         string
	RedisURL         string
	StoreNamespace   string
	TaxRatePercent   int
	NotifyWebhookURL string
	LogLevel         string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		StoreBackend:     getEnv("STORE_BACKEND", "bolt"),
		BoltPath:         getEnv("BOLT_PATH", "canteen.db"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		StoreNamespace:   getEnv("STORE_NAMESPACE", "canteen"),
		TaxRatePercent:   getEnvAsInt("TAX_RATE_PERCENT", 5),
		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
