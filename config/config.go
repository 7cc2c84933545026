package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	AppMode           string `mapstructure:"APP_MODE"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration (used by the database session backend).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisWorkerDB  int    `mapstructure:"REDIS_WORKER_DB"`

	// Gemini API key for preference parsing and requirement search.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Scheduling defaults.
	DefaultTerm           string `mapstructure:"DEFAULT_TERM"`
	DefaultSchool         string `mapstructure:"DEFAULT_SCHOOL"`
	MaxCoursesPerTerm     int    `mapstructure:"MAX_COURSES_PER_SEMESTER"`
	MaxCourseSelection    int    `mapstructure:"MAX_COURSE_SELECTION"`
	SessionTimeoutHours   int    `mapstructure:"SESSION_TIMEOUT_HOURS"`
	SessionBackend        string `mapstructure:"SESSION_BACKEND"`
	CatalogCacheTTLMin    int    `mapstructure:"CATALOG_CACHE_TTL_MIN"`
	PrereqCacheTTLHours   int    `mapstructure:"PREREQ_CACHE_TTL_HOURS"`
	SessionCleanupMinutes int    `mapstructure:"SESSION_CLEANUP_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("APP_MODE", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "scheduly")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_WORKER_DB", 2)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("DEFAULT_TERM", "2251")
	viper.SetDefault("DEFAULT_SCHOOL", "Pitt")
	viper.SetDefault("MAX_COURSES_PER_SEMESTER", 6)
	viper.SetDefault("MAX_COURSE_SELECTION", 10)
	viper.SetDefault("SESSION_TIMEOUT_HOURS", 24)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("CATALOG_CACHE_TTL_MIN", 30)
	viper.SetDefault("PREREQ_CACHE_TTL_HOURS", 24)
	viper.SetDefault("SESSION_CLEANUP_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// DevelopmentMode reports whether the app serves curated requirements and
// hardcoded prerequisites instead of AI-backed lookups.
func DevelopmentMode() bool {
	return strings.ToLower(AppConfig.AppMode) != "production"
}
