package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dcode-github/listing_storefront/constants"
)

// Catalog backends.
const (
	BackendStatic   = "static"
	BackendFile     = "file"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     string
	AppName  string
	LogLevel string
	// LogFormat is text, json or color.
	LogFormat string

	CatalogBackend string
	CatalogFile    string
	SeedCatalog    bool

	MongoURI    string
	MongoDB     string
	PostgresDSN string

	RedisAddr string
	RedisPass string
	CacheTTL  time.Duration

	JWTKey string

	FluentEnabled bool
	FluentHost    string
	FluentPort    int

	CORSOrigins []string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		AppName:        getEnv("APP_NAME", constants.AppName),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "color"),
		CatalogBackend: strings.ToLower(getEnv("CATALOG_BACKEND", BackendStatic)),
		CatalogFile:    getEnv("CATALOG_FILE", ""),
		SeedCatalog:    getEnvBool("SEED_CATALOG", false),
		MongoURI:       getEnv("MONGOURI", ""),
		MongoDB:        getEnv("DB", "storefront"),
		PostgresDSN:    getEnv("POSTGRES_DSN", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPass:      getEnv("REDIS_PASS", ""),
		CacheTTL:       getEnvDuration("CACHE_TTL", 10*time.Minute),
		JWTKey:         getEnv("JWT_KEY", ""),
		FluentEnabled:  getEnvBool("FLUENTBIT_ENABLED", false),
		FluentHost:     getEnv("FLUENTBIT_HOST", "localhost"),
		FluentPort:     getEnvInt("FLUENTBIT_PORT", 24224),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.CatalogBackend {
	case BackendStatic:
	case BackendFile:
		if c.CatalogFile == "" {
			errs = append(errs, errors.New("CATALOG_FILE is required for the file backend"))
		}
	case BackendMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGOURI is required for the mongo backend"))
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend))
	}
	if c.JWTKey == "" {
		errs = append(errs, errors.New("JWT_KEY is not set"))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
