package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/focusflow/pkg/httpx"
	"github.com/joho/godotenv"
)

// Database drivers accepted by DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Env                 string        // Environment (development, test, production) (default: production)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseDriver string // sqlite, postgres or mongo (default: sqlite)
	DatabaseURL    string // SQLite path or DSN, PostgreSQL DSN (default: focusflow.db for sqlite)
	MongoURI       string // Used when DatabaseDriver is mongo
	MongoDatabase  string // Used when DatabaseDriver is mongo (default: focusflow)

	JWTSecret  string        // Optional: HS256 secret, random per process when empty
	JWTExpire  time.Duration // Token lifetime (default: 24h)
	Issuer     string        // iss claim (default: focusflow)
	PepperFile string        // Path to the password pepper file (default: pepper.key)

	CORSOrigins []string // Browser origins allowed to call the API

	AuthLimit httpx.RateLimitConfig // register and login, per IP
	APILimit  httpx.RateLimitConfig // authenticated routes, per user
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "production"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", DriverSQLite)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MongoURI:       getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017/focusflow"),
		MongoDatabase:  getEnvOrDefault("MONGODB_DATABASE", "focusflow"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTExpire:  getEnvDurationOrDefault("JWT_EXPIRE", 24*time.Hour),
		Issuer:     getEnvOrDefault("JWT_ISSUER", "focusflow"),
		PepperFile: getEnvOrDefault("PASSWORD_PEPPER_FILE", "pepper.key"),

		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),

		AuthLimit: httpx.RateLimitFromEnv("STRICT", httpx.StrictLimit),
		APILimit:  httpx.RateLimitFromEnv("LENIENT", httpx.LenientLimit),
	}

	if cfg.DatabaseDriver == DriverSQLite && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "focusflow.db"
	}

	return cfg
}

// Validate reports configuration the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for the %s driver", c.DatabaseDriver))
		}
	case DriverMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			errs = append(errs, errors.New("MONGODB_URI and MONGODB_DATABASE are required for the mongo driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.JWTExpire <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRE must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

// sqliteDSN turns a bare file path into a DSN with the pragmas the store
// expects. Anything that already looks like a DSN is passed through.
func sqliteDSN(url string) string {
	if url == ":memory:" || strings.HasPrefix(url, "file:") || strings.Contains(url, "?") {
		return url
	}
	return "file:" + url + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
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

	if d, ok := parseDuration(value); ok {
		return d
	}
	return defaultValue
}

// parseDuration accepts Go durations ("1h", "90s"), whole days ("7d") and
// bare integers as minutes.
func parseDuration(value string) (time.Duration, bool) {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration, true
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return time.Duration(n) * 24 * time.Hour, true
		}
	}

	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute, true
	}

	return 0, false
}
