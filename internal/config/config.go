package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	DBHost string
	DBPort int
	DBUser string
	DBPass string
	DBName string

	PoolMinSize    int
	PoolMaxSize    int
	CommandTimeout time.Duration
	AcquireTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    getEnv("DB_PASS", "postgres"),
		DBName:    getEnv("DB_NAME", "fastdb"),
	}

	var err error
	if cfg.DBPort, err = getEnvInt("DB_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PoolMinSize, err = getEnvInt("POOL_MIN_SIZE", 2); err != nil {
		return nil, err
	}
	if cfg.PoolMaxSize, err = getEnvInt("POOL_MAX_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.CommandTimeout, err = getEnvSeconds("COMMAND_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.AcquireTimeout, err = getEnvSeconds("ACQUIRE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	if cfg.PoolMinSize < 0 {
		return nil, fmt.Errorf("POOL_MIN_SIZE must not be negative, got %d", cfg.PoolMinSize)
	}
	if cfg.PoolMaxSize < 1 {
		return nil, fmt.Errorf("POOL_MAX_SIZE must be at least 1, got %d", cfg.PoolMaxSize)
	}
	if cfg.PoolMinSize > cfg.PoolMaxSize {
		return nil, fmt.Errorf("POOL_MIN_SIZE (%d) must not exceed POOL_MAX_SIZE (%d)", cfg.PoolMinSize, cfg.PoolMaxSize)
	}

	return cfg, nil
}

// DatabaseURL assembles a postgres connection URL from the individual DB settings.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPass),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

func getEnvSeconds(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer number of seconds, got %q", key, value)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1 second, got %d", key, n)
	}
	return time.Duration(n) * time.Second, nil
}
