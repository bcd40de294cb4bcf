package models

import (
	"time"
)

// UserRole represents the role assigned to a system user
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleStaff   UserRole = "STAFF"
	RoleEncoder UserRole = "ENCODER"
	RoleUser    UserRole = "USER"
)

// UserStatus represents the account status of a system user
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
)

// User represents a system user account in the target schema.
// Migration upserts users keyed by email, so re-running the user
// stage does not create duplicates.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	FirstName    string     `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName     string     `json:"lastName" gorm:"type:varchar(100);not null"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255)"` // Legacy hash carried over verbatim
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'INACTIVE'"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsActive checks if the account is active
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
