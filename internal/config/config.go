package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	API      APIConfig
	Session  SessionConfig
	Poll     PollConfig
	Server   ServerConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Auth     AuthConfig
}

// APIConfig holds backend API configuration for the dashboard core.
type APIConfig struct {
	BaseURL string
}

// SessionConfig holds session storage configuration.
type SessionConfig struct {
	// Dir is where the persistent ("remember me") session scope lives.
	Dir string
}

// PollConfig holds background refresh configuration.
type PollConfig struct {
	ActiveRiderInterval time.Duration
	SearchDebounce      time.Duration
}

// ServerConfig holds HTTP server configuration for the dev fixture server.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// AuthConfig holds token signing configuration for the dev fixture server.
type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
		},
		Session: SessionConfig{
			Dir: getEnv("SESSION_DIR", defaultSessionDir()),
		},
		Poll: PollConfig{
			ActiveRiderInterval: getDurationEnv("ACTIVE_RIDER_POLL_INTERVAL", 30*time.Second),
			SearchDebounce:      getDurationEnv("SEARCH_DEBOUNCE", 400*time.Millisecond),
		},
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "parceldash-devserver"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenExpiry: getDurationEnv("TOKEN_EXPIRY", 24*time.Hour),
		},
	}
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".parceldash"
	}
	return filepath.Join(home, ".parceldash")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
