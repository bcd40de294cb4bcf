package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectLegacy opens a read-only style connection to the legacy MySQL
// database.
func ConnectLegacy(dsn string, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to legacy database: %w", err)
	}

	if err := configurePool(db); err != nil {
		return nil, err
	}

	logger.Info("Legacy database connection established")
	return db, nil
}

// ConnectTarget opens a connection to the target PostgreSQL database.
func ConnectTarget(dsn string, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target database: %w", err)
	}

	if err := configurePool(db); err != nil {
		return nil, err
	}

	logger.Info("Target database connection established")
	return db, nil
}

func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A single-threaded batch job needs very few connections.
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return nil
}
