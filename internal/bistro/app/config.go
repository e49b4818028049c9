package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/bistro/pkg/jwtx"
)

var (
	ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET is required")
	ErrWeakSecret    = fmt.Errorf("ACCESS_TOKEN_SECRET must be at least %d bytes", jwtx.MinSecretLength)
)

type Config struct {
	AccessTokenSecret   string        // Required: secret the session signing key is derived from
	Env                 string        // Environment (dev, prod). prod switches cookies to Secure + SameSite=None (default: dev)
	Port                int           // HTTP server port (default: 5000)
	DatabaseFile        string        // Path to SQLite database file (default: ./bistro.db)
	StripeSecretKey     string        // Optional: payment intents are disabled without it
	CORSOrigins         []string      // Allowed browser origins (default: http://localhost:5173)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		AccessTokenSecret:   os.Getenv("ACCESS_TOKEN_SECRET"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "bistro.db"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		CORSOrigins:         splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173")),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports configuration the server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AccessTokenSecret) == "" {
		return ErrMissingSecret
	}
	if len(c.AccessTokenSecret) < jwtx.MinSecretLength {
		return ErrWeakSecret
	}
	return nil
}

// DSN is the SQLite connection string for DatabaseFile.
func (c Config) DSN() string {
	if c.DatabaseFile == ":memory:" {
		return c.DatabaseFile
	}
	return "file:" + c.DatabaseFile + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
