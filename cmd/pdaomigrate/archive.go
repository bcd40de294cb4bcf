package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Suarenz/PDAO-system-sub000/internal/archiver"
	"github.com/Suarenz/PDAO-system-sub000/internal/database"
	"github.com/Suarenz/PDAO-system-sub000/internal/repository"
)

var (
	archiveSchedule string
	retentionDays   int
)

// archiveLogsCmd archives old target activity logs into monthly buckets
var archiveLogsCmd = &cobra.Command{
	Use:   "archive-logs",
	Short: "Archive old activity logs into monthly buckets",
	Long: `Move activity logs older than the configured cutoff into the
activity_log_archives table, bucketed by the month of each log's own
timestamp.

Examples:
  pdaomigrate archive-logs                        # One-shot archival pass
  pdaomigrate archive-logs --schedule "0 2 * * *" # Run daily at 2 AM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		targetDB, err := database.ConnectTarget(cfg.TargetDB.DSN(), logger)
		if err != nil {
			return err
		}
		repo := repository.NewTargetRepository(targetDB)
		arch := archiver.New(repo, cfg.Archive, logger)

		if archiveSchedule == "" {
			return arch.Run(context.Background())
		}

		scheduler := archiver.NewScheduler(arch, archiveSchedule, logger)
		if err := scheduler.Start(); err != nil {
			return err
		}
		defer scheduler.Stop()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down archival scheduler")
		return nil
	},
}

// purgeArchivesCmd deletes archives past the retention window
var purgeArchivesCmd = &cobra.Command{
	Use:   "purge-archives",
	Short: "Purge archive rows past the retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		if retentionDays > 0 {
			cfg.Archive.RetentionDays = retentionDays
		}

		targetDB, err := database.ConnectTarget(cfg.TargetDB.DSN(), logger)
		if err != nil {
			return err
		}
		repo := repository.NewTargetRepository(targetDB)

		return archiver.New(repo, cfg.Archive, logger).Purge(context.Background())
	},
}

func init() {
	archiveLogsCmd.Flags().StringVar(&archiveSchedule, "schedule", "", "Cron schedule; when set, run as a daemon")
	purgeArchivesCmd.Flags().IntVar(&retentionDays, "retention-days", 0, "Override configured retention window")
	rootCmd.AddCommand(archiveLogsCmd)
	rootCmd.AddCommand(purgeArchivesCmd)
}
