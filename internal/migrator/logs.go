package migrator

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
	"github.com/Suarenz/PDAO-system-sub000/internal/models"
)

// MigrateHistoryLogs migrates legacy history logs into month-bucketed
// archive rows. Dry-run mode runs the loop for count purposes only; no
// validation warnings are emitted here, unlike the user and profile
// stages.
func (p *Pipeline) MigrateHistoryLogs(ctx context.Context) error {
	rows, err := p.source.HistoryLogs(ctx, p.opts.Limit)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := p.migrateHistoryLog(ctx, row); err != nil {
			p.report.HistoryLogs.Failed++
			p.report.AddError("Log %d: %v", row.HistoryID, err)
			continue
		}
		p.report.HistoryLogs.Migrated++
	}

	p.logger.WithFields(logrus.Fields{
		"migrated": p.report.HistoryLogs.Migrated,
		"failed":   p.report.HistoryLogs.Failed,
	}).Info("History log migration complete")
	return nil
}

func (p *Pipeline) migrateHistoryLog(ctx context.Context, row legacy.HistoryLog) error {
	if p.opts.DryRun {
		return nil
	}

	// A missing account mapping is not a failure; the archive row simply
	// carries no user reference.
	var userID *uint
	if targetID, ok := p.userIDs[row.AccountID]; ok {
		id := targetID
		userID = &id
	}

	archive := models.ActivityLogArchive{
		OriginalID: row.HistoryID,
		UserID:     userID,
		// Derived from the row's own timestamp, not the migration run time.
		ArchiveMonth:      row.DateTime.Format("2006-01"),
		ActionType:        strings.ToLower(row.Activity),
		Description:       "Legacy: " + row.Activity,
		OriginalCreatedAt: row.DateTime,
	}

	return p.repo.InsertArchive(ctx, &archive)
}
