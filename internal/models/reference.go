package models

import "time"

// Barangay is a reference table of administrative subdivisions.
// Legacy free-text barangay values are resolved against it during migration.
type Barangay struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(150);uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (Barangay) TableName() string {
	return "barangays"
}

// DisabilityType is a reference table of recognized disability categories.
type DisabilityType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(150);uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (DisabilityType) TableName() string {
	return "disability_types"
}
