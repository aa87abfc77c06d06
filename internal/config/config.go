package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultPort      = "8080"
	defaultDSN       = "hotelier.db"
	defaultJWTTTL    = "24h"
	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      getenv("APP_ENV", "development"),
		Port:        getenv("APP_PORT", defaultPort),
		DatabaseURL: getenv("DATABASE_URL", defaultDSN),
		JWTSecret:   getenv("JWT_SECRET", defaultJWTSecret),
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	if cfg.AppEnv == "production" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
