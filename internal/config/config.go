package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort       = "8080"
	defaultJWTTTL     = "24h"
	defaultUploadsDir = "./uploads"
	defaultStaticBase = "/static/uploads"
)

// Runtime holds everything cmd/api needs to wire the service.
type Runtime struct {
	AppEnv      string
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadsDir  string
	StaticBase  string
}

func Load() (*Runtime, error) {
	cfg := &Runtime{}

	cfg.AppEnv = strings.TrimSpace(os.Getenv("APP_ENV"))
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		if cfg.AppEnv == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		cfg.DatabaseURL = "medialabel.db"
	}

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "change-me-jwt-secret"
	}

	ttl := envOr("JWT_TTL", defaultJWTTTL)
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttl, err)
	}
	cfg.JWTTTL = d

	cfg.Port = envOr("PORT", defaultPort)
	cfg.UploadsDir = envOr("UPLOADS_DIR", defaultUploadsDir)
	cfg.StaticBase = envOr("STATIC_BASE", defaultStaticBase)

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
