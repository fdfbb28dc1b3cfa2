package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BackendURL        string        // Required: base URL of the backend RPC endpoint
	BackendCanisterID string        // Required: backend canister (service) id
	BackendTimeout    time.Duration // Optional: per-call backend timeout (default: 10s)

	Identity     string // Signing identity as PEM, escaped PEM or base64 PEM
	IdentityFile string // Alternative to Identity: path to a PEM file
	IdentityKID  string // Optional: kid stamped on backend assertions (default: gateway)

	GoogleClientIDs []string // Optional: deployment-wide Google client ids
	AppleBundleID   string   // Optional: deployment-wide Apple bundle id
	AppleServiceID  string   // Optional: deployment-wide Apple service id (web sign-in)
	ProviderTimeout time.Duration
	StrictNonce     bool // Reject Apple tokens without a nonce when the client sent one

	AllowedOrigins []string // Optional: CORS allowlist, empty means "*"

	RateLimitStore string // memory or redis (default: memory)
	RedisURL       string // Required when RateLimitStore is redis

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Cache and rate window sweep interval (default: 10m)
}

func LoadConfig() Config {
	return Config{
		BackendURL:        os.Getenv("BACKEND_URL"),
		BackendCanisterID: os.Getenv("BACKEND_CANISTER_ID"),
		BackendTimeout:    getEnvDurationOrDefault("BACKEND_TIMEOUT", 10*time.Second),

		Identity:     os.Getenv("GATEWAY_IDENTITY"),
		IdentityFile: os.Getenv("GATEWAY_IDENTITY_FILE"),
		IdentityKID:  getEnvOrDefault("GATEWAY_IDENTITY_KID", "gateway"),

		GoogleClientIDs: getEnvListOrDefault("GOOGLE_CLIENT_IDS", nil),
		AppleBundleID:   os.Getenv("APPLE_BUNDLE_ID"),
		AppleServiceID:  os.Getenv("APPLE_SERVICE_ID"),
		ProviderTimeout: getEnvDurationOrDefault("PROVIDER_TIMEOUT", 5*time.Second),
		StrictNonce:     getEnvBoolOrDefault("STRICT_NONCE", false),

		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", nil),

		RateLimitStore: getEnvOrDefault("RATELIMIT_STORE", "memory"),
		RedisURL:       os.Getenv("REDIS_URL"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 10*time.Minute),
	}
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.BackendURL == "" {
		errs = append(errs, errors.New("BACKEND_URL is required"))
	} else if u, err := url.Parse(c.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL %q is not an absolute URL", c.BackendURL))
	}
	if c.BackendCanisterID == "" {
		errs = append(errs, errors.New("BACKEND_CANISTER_ID is required"))
	}
	if c.Identity == "" && c.IdentityFile == "" {
		errs = append(errs, errors.New("GATEWAY_IDENTITY or GATEWAY_IDENTITY_FILE is required"))
	}

	switch c.RateLimitStore {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required when RATELIMIT_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("RATELIMIT_STORE must be memory or redis, got %q", c.RateLimitStore))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}
