package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendSqlite = "sqlite"
	SessionBackendRedis  = "redis"

	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type LogConfig struct {
	Level string
	JSON  bool
	Color bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Backend    string
	SqlitePath string
	Redis      RedisConfig
	JWTSecret  string
	LoginDelay time.Duration
}

type CatalogConfig struct {
	Source      string
	File        string
	DatabaseURL string
}

type SubmissionConfig struct {
	SubmitDelay  time.Duration
	ContactDelay time.Duration
}

type AppConfig struct {
	AppName    string
	Port       string
	Log        LogConfig
	Session    SessionConfig
	Catalog    CatalogConfig
	Submission SubmissionConfig
}

// Load reads configuration from the environment, after loading envPath (or
// ./.env) when it exists. A missing .env file is not an error.
func Load(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}

	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "propertyHub")
	cfg.Port = getEnvAsString("PORT", "8080")

	cfg.Log.Level = getEnvAsString("LOG_LEVEL", "info")
	cfg.Log.JSON = getEnvAsBool("LOG_JSON", false)
	cfg.Log.Color = getEnvAsBool("LOG_COLOR", true)

	cfg.Session.Backend = strings.ToLower(getEnvAsString("SESSION_BACKEND", SessionBackendMemory))
	switch cfg.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendSqlite:
		cfg.Session.SqlitePath = getEnvAsString("SQLITE_PATH", "propertyhub.db")
	case SessionBackendRedis:
		cfg.Session.Redis.Addr = getEnvAsString("REDIS_ADDR", "localhost:6379")
		cfg.Session.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.Session.Redis.DB = getEnvAsInt("REDIS_DB", 0)
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}

	cfg.Session.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Session.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg.Session.LoginDelay = getEnvAsDuration("LOGIN_DELAY", time.Second)

	cfg.Catalog.Source = strings.ToLower(getEnvAsString("CATALOG_SOURCE", CatalogSourceEmbedded))
	switch cfg.Catalog.Source {
	case CatalogSourceEmbedded:
	case CatalogSourceFile:
		cfg.Catalog.File = os.Getenv("CATALOG_FILE")
		if cfg.Catalog.File == "" {
			return nil, fmt.Errorf("CATALOG_FILE environment variable is required for CATALOG_SOURCE=file")
		}
	case CatalogSourcePostgres:
		cfg.Catalog.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.Catalog.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for CATALOG_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.Catalog.Source)
	}

	cfg.Submission.SubmitDelay = getEnvAsDuration("SUBMIT_DELAY", 2*time.Second)
	cfg.Submission.ContactDelay = getEnvAsDuration("CONTACT_DELAY", time.Second)

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads key as an int. A value that does not parse is logged and
// replaced by defaultValue.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("Environment variable is not an int, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("Environment variable is not a bool, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil || value < 0 {
		slog.Warn("Environment variable is not a duration, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}
