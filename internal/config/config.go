package config

import (
	"os"
	"strconv"
)

// Config holds all runtime settings, read once at startup.
type Config struct {
	ServiceName string
	Port        int
	PortRetries int
	DBPath      string
}

// Load builds the configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "demo-blog-api"),
		Port:        getEnvInt("PORT", 8080),
		PortRetries: getEnvInt("PORT_RETRIES", 10),
		DBPath:      getEnv("DB_PATH", "blog.db"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
