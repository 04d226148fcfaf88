package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/civichero/civichero-backend/internal/backend"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Firebase FirebaseConfig
	LiveFeed LiveFeedConfig
	App      AppConfig
}

type ServerConfig struct {
	Port                  string
	AllowedOrigins        []string
	RateLimitPerMinute    int
	AuthRequiredForWrites bool
}

type DatabaseConfig struct {
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// FirebaseConfig carries the project record plus the server-only credentials
// used to act on it.
type FirebaseConfig struct {
	Project         backend.Config
	CredentialsPath string
}

type LiveFeedConfig struct {
	MaxEntries   int
	TrimSchedule string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	project, err := loadFirebaseProject()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:                  getEnv("PORT", "8080"),
			AllowedOrigins:        getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RateLimitPerMinute:    getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
			AuthRequiredForWrites: getEnvAsBool("AUTH_REQUIRED_FOR_WRITES", false),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "civichero"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Firebase: FirebaseConfig{
			Project:         project,
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		LiveFeed: LiveFeedConfig{
			MaxEntries:   getEnvAsInt("LIVE_FEED_MAX_ENTRIES", 500),
			TrimSchedule: getEnv("LIVE_FEED_TRIM_SCHEDULE", "@every 10m"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFirebaseProject reads FIREBASE_CONFIG first, then lets the individual
// FIREBASE_* variables override single fields.
func loadFirebaseProject() (backend.Config, error) {
	project, err := backend.LoadConfigValue(os.Getenv("FIREBASE_CONFIG"))
	if err != nil {
		return backend.Config{}, fmt.Errorf("FIREBASE_CONFIG: %w", err)
	}

	project.APIKey = getEnv("FIREBASE_API_KEY", project.APIKey)
	project.AuthDomain = getEnv("FIREBASE_AUTH_DOMAIN", project.AuthDomain)
	project.DatabaseURL = getEnv("FIREBASE_DATABASE_URL", project.DatabaseURL)
	project.ProjectID = getEnv("FIREBASE_PROJECT_ID", project.ProjectID)
	project.StorageBucket = getEnv("FIREBASE_STORAGE_BUCKET", project.StorageBucket)
	project.MessagingSenderID = getEnv("FIREBASE_MESSAGING_SENDER_ID", project.MessagingSenderID)
	project.AppID = getEnv("FIREBASE_APP_ID", project.AppID)

	return project, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("DB_DSN or DB_HOST is required")
	}

	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}

	if c.LiveFeed.MaxEntries < 0 {
		return fmt.Errorf("LIVE_FEED_MAX_ENTRIES must not be negative")
	}

	return nil
}

// RequireFirebase validates the Firebase project record. Only commands that
// talk to Firebase call it, so migrate runs without a project configured.
func (c *Config) RequireFirebase() error {
	return c.Firebase.Project.Validate()
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
