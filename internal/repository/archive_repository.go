package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Suarenz/PDAO-system-sub000/internal/models"
)

// ArchiveOldLogs moves activity logs older than cutoff into the archive
// table in batches, deleting the originals as it goes. Each batch is one
// transaction. Returns the number of rows archived.
func (r *TargetRepository) ArchiveOldLogs(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = 500
	}

	var total int64
	for {
		var moved int64
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var logs []models.ActivityLog
			if err := tx.
				Where("created_at < ?", cutoff).
				Order("id").
				Limit(batchSize).
				Find(&logs).Error; err != nil {
				return fmt.Errorf("failed to read old activity logs: %w", err)
			}
			if len(logs) == 0 {
				return nil
			}

			archives := make([]models.ActivityLogArchive, 0, len(logs))
			ids := make([]uint, 0, len(logs))
			for _, log := range logs {
				archives = append(archives, models.ActivityLogArchive{
					OriginalID:        log.ID,
					UserID:            log.UserID,
					ArchiveMonth:      log.CreatedAt.Format("2006-01"),
					ActionType:        strings.ToLower(log.Action),
					Description:       log.Description,
					OriginalCreatedAt: log.CreatedAt,
				})
				ids = append(ids, log.ID)
			}

			if err := tx.Create(&archives).Error; err != nil {
				return fmt.Errorf("failed to insert archive rows: %w", err)
			}
			if err := tx.Delete(&models.ActivityLog{}, ids).Error; err != nil {
				return fmt.Errorf("failed to delete archived logs: %w", err)
			}

			moved = int64(len(logs))
			return nil
		})
		if err != nil {
			return total, err
		}
		if moved == 0 {
			return total, nil
		}
		total += moved
	}
}

// PurgeArchives deletes archive rows whose archive month is older than
// beforeMonth (YYYY-MM, exclusive). Returns the number of rows deleted.
func (r *TargetRepository) PurgeArchives(ctx context.Context, beforeMonth string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("archive_month < ?", beforeMonth).
		Delete(&models.ActivityLogArchive{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
