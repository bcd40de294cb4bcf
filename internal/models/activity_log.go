package models

import "time"

// ActivityLog is a live activity log row in the target system.
// The archive-logs command moves old rows into ActivityLogArchive.
type ActivityLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      *uint     `json:"userId" gorm:"index"`
	Action      string    `json:"action" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityLogArchive is a denormalized, month-bucketed archive record.
// ArchiveMonth is always derived from the original row's timestamp,
// never from the time the archival or migration ran.
type ActivityLogArchive struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	OriginalID        uint      `json:"originalId" gorm:"not null;index"`
	UserID            *uint     `json:"userId" gorm:"index"`
	ArchiveMonth      string    `json:"archiveMonth" gorm:"type:varchar(7);not null;index"` // YYYY-MM
	ActionType        string    `json:"actionType" gorm:"type:varchar(100);not null"`
	Description       string    `json:"description" gorm:"type:text"`
	OriginalCreatedAt time.Time `json:"originalCreatedAt" gorm:"not null"`
	ArchivedAt        time.Time `json:"archivedAt" gorm:"autoCreateTime"`
}

// TableName specifies the table name
func (ActivityLogArchive) TableName() string {
	return "activity_log_archives"
}
