package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API      APIConfig
	Frontend FrontendConfig
	Session  SessionConfig
	Geo      GeoConfig
}

type APIConfig struct {
	BaseURL string
	// WSURL points at the backend notification hub. Empty disables the
	// live status feed.
	WSURL string
}

type FrontendConfig struct {
	Port    string
	RootDir string
}

type SessionConfig struct {
	DBPath string
}

type GeoConfig struct {
	Timeout    time.Duration
	MaximumAge time.Duration
}

var AppConfig *Config

func Load() {
	AppConfig = &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			WSURL:   getEnv("API_WS_URL", ""),
		},
		Frontend: FrontendConfig{
			Port:    getEnv("PORT", "3000"),
			RootDir: getEnv("FRONTEND_DIR", "frontends"),
		},
		Session: SessionConfig{
			DBPath: getEnv("SESSION_DB_PATH", "servicehub-session.db"),
		},
		Geo: GeoConfig{
			Timeout:    time.Duration(getEnvAsInt("GEO_TIMEOUT_SECONDS", 10)) * time.Second,
			MaximumAge: time.Duration(getEnvAsInt("GEO_MAX_AGE_MINUTES", 5)) * time.Minute,
		},
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
