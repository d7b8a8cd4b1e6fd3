package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int           // HTTP server port (default: 3000)
	Env                 string        // Environment (dev, test, production) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseDriver  string        // sqlite or postgres (default: sqlite)
	DatabaseFile    string        // SQLite database file (default: blog.db)
	DatabaseURL     string        // Postgres DSN, built from DB_* when empty
	MaxOpenConns    int           // Postgres pool size (default: 5)
	ConnMaxIdleTime time.Duration // Postgres idle connection lifetime (default: 10s)

	JWTSecret      string        // HS256 signing secret
	TokenTTL       time.Duration // Access token lifetime (default: 1h)
	Issuer         string        // Issuer claim (default: blog-api)
	Algorithm      string        // HS256 or EdDSA (default: HS256)
	SigningKeyFile string        // Ed25519 PKCS8 PEM, generated when missing
	PepperFile     string        // Password pepper file (default: ./pepper)
	BootstrapToken string        // Optional: enables POST /auth/bootstrap

	CORSAllowedOrigins []string // default: *

	// LegacySecretKey is set when SECRET_KEY is present. It is never used for
	// signing; New warns about it.
	LegacySecretKey bool
}

// LoadConfig reads the environment, after loading an optional .env file.
// Variables already set in the environment win over .env.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnvIntOrDefault("PORT", 3000),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseDriver:  strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", "sqlite")),
		DatabaseFile:    getEnvOrDefault("DATABASE_FILE", "blog.db"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 5),
		ConnMaxIdleTime: getEnvDurationOrDefault("DB_CONN_MAX_IDLE", 10*time.Second),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       getEnvDurationOrDefault("JWT_EXPIRES_IN", time.Hour),
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "blog-api"),
		Algorithm:      getEnvOrDefault("AUTH_ALGORITHM", "HS256"),
		SigningKeyFile: os.Getenv("AUTH_SIGNING_KEY_FILE"),
		PepperFile:     getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LegacySecretKey:    os.Getenv("SECRET_KEY") != "",
	}

	if cfg.DatabaseURL == "" && cfg.DatabaseDriver == "postgres" {
		cfg.DatabaseURL = postgresDSNFromEnv()
	}

	return cfg
}

// IsProduction reports whether ENV selects production.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// IsDev reports whether error responses may carry causes and stacks.
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// Validate rejects configurations that cannot start.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL or DB_HOST is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want sqlite or postgres)", c.DatabaseDriver)
	}

	switch c.Algorithm {
	case AlgHS256:
		if c.JWTSecret == "" && c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
	case AlgEdDSA:
	default:
		return fmt.Errorf("unsupported AUTH_ALGORITHM %q (want HS256 or EdDSA)", c.Algorithm)
	}

	if c.TokenTTL <= 0 {
		return errors.New("JWT_EXPIRES_IN must be positive")
	}
	return nil
}

func postgresDSNFromEnv() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   host + ":" + getEnvOrDefault("DB_PORT", "5432"),
		Path:   "/" + getEnvOrDefault("DB_NAME", "blog"),
	}
	if user := os.Getenv("DB_USER"); user != "" {
		u.User = url.UserPassword(user, os.Getenv("DB_PASSWORD"))
	}
	u.RawQuery = url.Values{"sslmode": {getEnvOrDefault("DB_SSLMODE", "disable")}}.Encode()
	return u.String()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

	// Day suffix, as in JWT_EXPIRES_IN=7d
	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return time.Duration(n) * 24 * time.Hour
		}
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
