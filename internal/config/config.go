package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is used when INVENTORY_API_BASE_URL is not set.
const DefaultAPIBaseURL = "https://localhost:7240/api"

// Session storage backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
	SessionBackendMongo  = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	Env     string
	Server  ServerConfig
	API     APIConfig
	Log     LogConfig
	Session SessionConfig
	Redis   RedisConfig
	MongoDB MongoDBConfig
	Sweep   SweepConfig
	Sheets  SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// APIConfig points the client at the remote inventory REST API.
type APIConfig struct {
	BaseURL string
	// Timeout bounds a single call. Zero leaves calls bounded only by the
	// request context.
	Timeout time.Duration
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// SessionConfig controls the cookie session layer.
type SessionConfig struct {
	Backend      string
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
}

// RedisConfig holds settings for the redis session backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SweepConfig holds the low-stock sweep schedule and service account.
type SweepConfig struct {
	CronSchedule string
	UserName     string
	Password     string
}

// Enabled reports whether a service account was configured for the sweep.
func (s SweepConfig) Enabled() bool {
	return s.UserName != ""
}

// SheetsConfig contains configuration required to export sweeps to Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether spreadsheet export is configured.
func (s SheetsConfig) Enabled() bool {
	return s.CredentialsPath != "" && s.SpreadsheetID != ""
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	apiTimeout, err := getDuration("INVENTORY_API_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getDuration("SESSION_TTL", 8*time.Hour)
	if err != nil {
		return nil, err
	}
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: getenvWithDefault("APP_ENV", "development"),
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		API: APIConfig{
			BaseURL: getenvWithDefault("INVENTORY_API_BASE_URL", DefaultAPIBaseURL),
			Timeout: apiTimeout,
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Backend:      strings.ToLower(getenvWithDefault("SESSION_BACKEND", SessionBackendMemory)),
			CookieName:   getenvWithDefault("SESSION_COOKIE_NAME", "stockdesk_session"),
			CookieSecure: getBool("SESSION_COOKIE_SECURE"),
			TTL:          sessionTTL,
		},
		Redis: RedisConfig{
			Addr:     getenvWithDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "stockdesk"),
		},
		Sweep: SweepConfig{
			CronSchedule: getenvWithDefault("LOW_STOCK_CRON_SCHEDULE", "0 7 * * *"),
			UserName:     os.Getenv("SWEEP_USERNAME"),
			Password:     os.Getenv("SWEEP_PASSWORD"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.API.BaseURL == "" {
		return errors.New("INVENTORY_API_BASE_URL must not be empty")
	}
	if c.API.Timeout < 0 {
		return errors.New("INVENTORY_API_TIMEOUT must not be negative")
	}

	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR must be provided for the redis session backend")
		}
	case SessionBackendMongo:
		if c.MongoDB.URI == "" || c.MongoDB.DBName == "" {
			return errors.New("MONGODB_URI and MONGODB_DB_NAME must be provided for the mongo session backend")
		}
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND %q", c.Session.Backend)
	}

	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	if c.Sweep.Enabled() {
		if c.Sweep.Password == "" {
			return errors.New("SWEEP_PASSWORD must be provided when SWEEP_USERNAME is set")
		}
		if c.Sweep.CronSchedule == "" {
			return errors.New("LOW_STOCK_CRON_SCHEDULE must be provided")
		}
	}

	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DATABASE_ID must be set together")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
