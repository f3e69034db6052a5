package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	AllowOrigins           []string
	ClassifierModelPath    string
	RedisHost              string
	RedisPort              string
	ClassifierCacheTTL     time.Duration
	ShutdownTimeoutSeconds int
}

// RedisAddr is empty when no redis host is configured.
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	var errs []error
	intEnv := func(key string, defaultVal int) int {
		v, err := getEnvAsInt(key, defaultVal)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "todos.db"),
		RateLimit:              intEnv("RATE_LIMIT_PER_MINUTE", 120),
		AllowOrigins:           splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		ClassifierModelPath:    getEnv("CLASSIFIER_MODEL_PATH", "assets/classifier.yaml"),
		RedisHost:              os.Getenv("REDIS_HOST"),
		RedisPort:              getEnv("REDIS_PORT", "6379"),
		ClassifierCacheTTL:     time.Duration(intEnv("CLASSIFIER_CACHE_TTL_SECONDS", 3600)) * time.Second,
		ShutdownTimeoutSeconds: intEnv("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ClassifierCacheTTL <= 0 {
		return errors.New("CLASSIFIER_CACHE_TTL_SECONDS must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return i, nil
	}
	return defaultVal, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
