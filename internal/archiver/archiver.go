// Package archiver moves old activity logs into the month-bucketed
// archive table and purges archives past their retention window.
package archiver

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Suarenz/PDAO-system-sub000/internal/config"
	"github.com/Suarenz/PDAO-system-sub000/internal/repository"
)

// Archiver runs archival and purge passes over the target database
type Archiver struct {
	repo   *repository.TargetRepository
	config config.ArchiveConfig
	logger *logrus.Logger
}

// New creates an archiver
func New(repo *repository.TargetRepository, cfg config.ArchiveConfig, logger *logrus.Logger) *Archiver {
	return &Archiver{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

// Run archives activity logs older than the configured cutoff
func (a *Archiver) Run(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -a.config.ArchiveAfterDays)
	startTime := time.Now()

	archived, err := a.repo.ArchiveOldLogs(ctx, cutoff, a.config.BatchSize)
	if err != nil {
		a.logger.WithError(err).Error("Activity log archival failed")
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"archived": archived,
		"cutoff":   cutoff.Format("2006-01-02"),
		"duration": time.Since(startTime).String(),
	}).Info("Activity log archival complete")
	return nil
}

// Purge deletes archive rows whose month is past the retention window
func (a *Archiver) Purge(ctx context.Context) error {
	beforeMonth := time.Now().AddDate(0, 0, -a.config.RetentionDays).Format("2006-01")

	deleted, err := a.repo.PurgeArchives(ctx, beforeMonth)
	if err != nil {
		a.logger.WithError(err).Error("Archive purge failed")
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"deleted":      deleted,
		"before_month": beforeMonth,
	}).Info("Archive purge complete")
	return nil
}
