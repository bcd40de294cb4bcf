package legacy

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RequiredTables lists the legacy tables the migration reads from.
// The pre-check fails fast when any of them is missing.
var RequiredTables = []string{
	Account{}.TableName(),
	PwdRecord{}.TableName(),
	HistoryLog{}.TableName(),
}

// Source reads rows from the legacy database. All access is read-only.
type Source struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewSource creates a new legacy source reader
func NewSource(db *gorm.DB, logger *logrus.Logger) *Source {
	return &Source{
		db:     db,
		logger: logger,
	}
}

// Check verifies connectivity to the legacy database and the presence of
// every required table. Any failure here aborts the whole run before any
// migration stage starts.
func (s *Source) Check(ctx context.Context) error {
	var one int
	if err := s.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return fmt.Errorf("legacy database connection failed: %w", err)
	}

	migrator := s.db.WithContext(ctx).Migrator()
	for _, table := range RequiredTables {
		if !migrator.HasTable(table) {
			return fmt.Errorf("required legacy table %q is missing", table)
		}
	}

	s.logger.WithField("tables", RequiredTables).Info("Legacy schema check passed")
	return nil
}

// Accounts returns legacy account rows, capped at limit when limit > 0
func (s *Source) Accounts(ctx context.Context, limit int) ([]Account, error) {
	var rows []Account
	query := s.db.WithContext(ctx).Order("account_id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read legacy accounts: %w", err)
	}
	return rows, nil
}

// PwdRecords returns legacy PWD registry rows, capped at limit when limit > 0
func (s *Source) PwdRecords(ctx context.Context, limit int) ([]PwdRecord, error) {
	var rows []PwdRecord
	query := s.db.WithContext(ctx).Order("pwd_id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read legacy PWD records: %w", err)
	}
	return rows, nil
}

// HistoryLogs returns legacy history log rows, capped at limit when limit > 0
func (s *Source) HistoryLogs(ctx context.Context, limit int) ([]HistoryLog, error) {
	var rows []HistoryLog
	query := s.db.WithContext(ctx).Order("history_id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read legacy history logs: %w", err)
	}
	return rows, nil
}
