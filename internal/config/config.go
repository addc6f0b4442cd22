package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string
	Database    DatabaseConfig
	Model       ModelConfig
	Analytics   AnalyticsConfig
}

type DatabaseConfig struct {
	Driver          string // "sqlite" or "postgres"
	Path            string // sqlite file path
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ModelConfig struct {
	ArtifactDir string
	MaxFeatures int
	NumTrees    int
	MaxDepth    int
	Seed        int64
}

type AnalyticsConfig struct {
	ZThreshold                  float64
	RecurrenceMinOccurrences    int
	RecurrenceWindowDays        int
	CategoryOvershootMultiplier float64
	TotalOvershootMultiplier    float64
}

func Load() *Config {
	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Path:            getEnv("DB_PATH", "finsight.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finsight_user"),
			Password:        getEnv("DB_PASSWORD", "finsight_password"),
			Name:            getEnv("DB_NAME", "finsight_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Model: ModelConfig{
			ArtifactDir: getEnv("MODEL_ARTIFACT_DIR", "artifacts"),
			MaxFeatures: getIntEnv("MODEL_MAX_FEATURES", 5000),
			NumTrees:    getIntEnv("MODEL_NUM_TREES", 100),
			MaxDepth:    getIntEnv("MODEL_MAX_DEPTH", 12),
			Seed:        int64(getIntEnv("MODEL_SEED", 42)),
		},
		Analytics: AnalyticsConfig{
			ZThreshold:                  getFloatEnv("ANALYTICS_Z_THRESHOLD", 2.0),
			RecurrenceMinOccurrences:    getIntEnv("ANALYTICS_RECURRENCE_MIN_OCCURRENCES", 2),
			RecurrenceWindowDays:        getIntEnv("ANALYTICS_RECURRENCE_WINDOW_DAYS", 45),
			CategoryOvershootMultiplier: getFloatEnv("ANALYTICS_CATEGORY_OVERSHOOT_MULTIPLIER", 1.2),
			TotalOvershootMultiplier:    getFloatEnv("ANALYTICS_TOTAL_OVERSHOOT_MULTIPLIER", 1.1),
		},
	}
}

// DSN builds the postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
