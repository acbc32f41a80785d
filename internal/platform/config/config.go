package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr         string
	Environment  string
	MaxBodyBytes int64
	Backend      BackendConfig
	Identity     IdentityConfig
	Session      SessionConfig
	Redis        RedisConfig
}

// BackendConfig points at the recommendation API this service consumes.
type BackendConfig struct {
	BaseURL string
}

// IdentityConfig controls the anonymous identity cookie.
type IdentityConfig struct {
	SigningKey   string
	CookieSecure bool
	CookieMaxAge time.Duration
}

// SessionConfig bounds how long in-progress survey answers are kept.
type SessionConfig struct {
	TTL time.Duration
}

// RedisConfig configures the optional Redis session store. An empty URL keeps
// sessions in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	DefaultBackendBaseURL = "http://localhost:8000/api"
	DefaultSessionTTL     = 2 * time.Hour
	DefaultCookieMaxAge   = 365 * 24 * time.Hour
	DefaultMaxBodyBytes   = 1 << 20
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	signingKey := os.Getenv("IDENTITY_SIGNING_KEY")
	if signingKey == "" {
		// Use a default for development - should be overridden in production
		signingKey = "dev-identity-key-change-in-production"
	}

	return Server{
		Addr:         envOr("UNIPICK_ADDR", ":8080"),
		Environment:  envOr("ENVIRONMENT", "development"),
		MaxBodyBytes: int64(envInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		Backend: BackendConfig{
			BaseURL: envOr("BACKEND_BASE_URL", DefaultBackendBaseURL),
		},
		Identity: IdentityConfig{
			SigningKey:   signingKey,
			CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
			CookieMaxAge: envDuration("IDENTITY_COOKIE_MAX_AGE", DefaultCookieMaxAge),
		},
		Session: SessionConfig{
			TTL: envDuration("SESSION_TTL", DefaultSessionTTL),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
