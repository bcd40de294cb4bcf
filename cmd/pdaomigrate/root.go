package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Suarenz/PDAO-system-sub000/internal/config"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pdaomigrate",
	Short: "PDAO legacy registry migration toolkit",
	Long: `pdaomigrate migrates the legacy PWD registry database into the
normalized target schema, and maintains the target system's activity log
archives.

Commands:
  check           - Verify legacy connectivity and schema
  run             - Run the full migration pipeline
  archive-logs    - Archive old target activity logs by month
  purge-archives  - Purge archives past the retention window

Re-running "run" is NOT idempotent for PWD profiles and history logs:
those stages insert unconditionally, so a second live run duplicates
previously migrated rows. Only the user stage (keyed by email) dedupes.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads .env plus environment configuration and builds the
// operator-facing logger.
func bootstrap() (*config.Config, *logrus.Logger, error) {
	if err := godotenv.Load(); err != nil {
		// Running without a .env file is normal outside development.
		fmt.Fprintln(os.Stderr, "No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return cfg, logger, nil
}
