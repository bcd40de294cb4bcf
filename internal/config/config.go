package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the migration toolkit
type Config struct {
	LegacyDB LegacyDBConfig
	TargetDB TargetDBConfig
	Logs     LogsConfig
	Archive  ArchiveConfig
	App      AppConfig
}

// LegacyDBConfig holds the legacy MySQL database configuration (read-only source)
type LegacyDBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// TargetDBConfig holds the target PostgreSQL database configuration
type TargetDBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LogsConfig holds the migration log file configuration
type LogsConfig struct {
	Dir string
}

// ArchiveConfig holds activity log archival configuration
type ArchiveConfig struct {
	ArchiveAfterDays int    // Logs older than this are moved to the archive table
	RetentionDays    int    // Archive rows older than this are purged
	BatchSize        int    // Batch size for archival operations
	Schedule         string // Cron schedule when running archival as a daemon
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Environment string
	LogLevel    string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{
		LegacyDB: LegacyDBConfig{
			Host:     getEnv("LEGACY_DB_HOST", "localhost"),
			Port:     getEnvAsInt("LEGACY_DB_PORT", 3306),
			User:     getEnv("LEGACY_DB_USER", "root"),
			Password: getEnv("LEGACY_DB_PASSWORD", ""),
			DBName:   getEnv("LEGACY_DB_NAME", "pdao_legacy"),
		},
		TargetDB: TargetDBConfig{
			Host:     getEnv("TARGET_DB_HOST", "localhost"),
			Port:     getEnvAsInt("TARGET_DB_PORT", 5432),
			User:     getEnv("TARGET_DB_USER", "postgres"),
			Password: getEnv("TARGET_DB_PASSWORD", ""),
			DBName:   getEnv("TARGET_DB_NAME", "pdao"),
			SSLMode:  getEnv("TARGET_DB_SSLMODE", "disable"),
		},
		Logs: LogsConfig{
			Dir: getEnv("MIGRATION_LOGS_DIR", "storage/logs"),
		},
		Archive: ArchiveConfig{
			ArchiveAfterDays: getEnvAsInt("ARCHIVE_AFTER_DAYS", 90),
			RetentionDays:    getEnvAsInt("ARCHIVE_RETENTION_DAYS", 365),
			BatchSize:        getEnvAsInt("ARCHIVE_BATCH_SIZE", 500),
			Schedule:         getEnv("ARCHIVE_SCHEDULE", "0 2 * * *"), // 2 AM daily
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// DSN returns the MySQL connection string for the legacy database
func (c LegacyDBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
}

// DSN returns the PostgreSQL connection string for the target database
func (c TargetDBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
