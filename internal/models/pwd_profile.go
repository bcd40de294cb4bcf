package models

import (
	"time"

	"gorm.io/datatypes"
)

// Sex values stored on PersonalInfo
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// Civil status values stored on PersonalInfo
const (
	CivilSingle    = "Single"
	CivilMarried   = "Married"
	CivilWidowed   = "Widowed"
	CivilSeparated = "Separated"
	CivilDivorced  = "Divorced"
)

// Employment status values stored on Employment
const (
	EmploymentEmployed     = "Employed"
	EmploymentSelfEmployed = "Self-Employed"
	EmploymentUnemployed   = "Unemployed"
)

// Disability cause values stored on Disability
const (
	CauseAcquired   = "Acquired"
	CauseCongenital = "Congenital"
)

// PwdProfile is the root aggregate for a registered person with disability.
// Every profile created by migration starts at version 1 with exactly one
// ProfileVersion snapshot.
type PwdProfile struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PwdNumber      *string   `json:"pwdNumber" gorm:"type:varchar(50);uniqueIndex"`
	FirstName      string    `json:"firstName" gorm:"type:varchar(100);not null"`
	MiddleName     *string   `json:"middleName" gorm:"type:varchar(100)"`
	LastName       string    `json:"lastName" gorm:"type:varchar(100);not null"`
	Suffix         *string   `json:"suffix" gorm:"type:varchar(20)"`
	DateApplied    *string   `json:"dateApplied" gorm:"type:date"`
	CurrentVersion int       `json:"currentVersion" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	PersonalInfo *PersonalInfo `json:"personalInfo" gorm:"foreignKey:ProfileID"`
	Address      *Address      `json:"address" gorm:"foreignKey:ProfileID"`
	Contact      *Contact      `json:"contact" gorm:"foreignKey:ProfileID"`
	Disabilities []Disability  `json:"disabilities" gorm:"foreignKey:ProfileID"`
	Employment   *Employment   `json:"employment" gorm:"foreignKey:ProfileID"`
	Education    *Education    `json:"education" gorm:"foreignKey:ProfileID"`
}

// TableName specifies the table name
func (PwdProfile) TableName() string {
	return "pwd_profiles"
}

// PersonalInfo holds personal details for a profile (one-to-one)
type PersonalInfo struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ProfileID   uint    `json:"profileId" gorm:"not null;index"`
	Birthdate   *string `json:"birthdate" gorm:"type:date"`
	Birthplace  *string `json:"birthplace" gorm:"type:varchar(255)"`
	Sex         *string `json:"sex" gorm:"type:varchar(10)"`
	CivilStatus *string `json:"civilStatus" gorm:"type:varchar(20)"`
	BloodType   *string `json:"bloodType" gorm:"type:varchar(5)"`
	Religion    *string `json:"religion" gorm:"type:varchar(100)"`
	EthnicGroup *string `json:"ethnicGroup" gorm:"type:varchar(100)"`
}

// TableName specifies the table name
func (PersonalInfo) TableName() string {
	return "pwd_personal_info"
}

// Address holds the residential address for a profile (one-to-one).
// BarangayID is nullable: unmapped legacy free text yields null.
type Address struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ProfileID   uint    `json:"profileId" gorm:"not null;index"`
	BarangayID  *uint   `json:"barangayId" gorm:"index"`
	HouseStreet *string `json:"houseStreet" gorm:"type:varchar(255)"`
	City        string  `json:"city" gorm:"type:varchar(100);not null"`
	Province    string  `json:"province" gorm:"type:varchar(100);not null"`
	Region      string  `json:"region" gorm:"type:varchar(100);not null"`
}

// TableName specifies the table name
func (Address) TableName() string {
	return "pwd_addresses"
}

// Contact holds contact details for a profile (one-to-one)
type Contact struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProfileID uint    `json:"profileId" gorm:"not null;index"`
	Mobile    *string `json:"mobile" gorm:"type:varchar(30)"`
	Landline  *string `json:"landline" gorm:"type:varchar(30)"`
	Email     *string `json:"email" gorm:"type:varchar(255)"`
}

// TableName specifies the table name
func (Contact) TableName() string {
	return "pwd_contacts"
}

// Disability links a profile to a recognized disability type.
// Migration creates at most one per profile, always marked primary.
type Disability struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	ProfileID        uint    `json:"profileId" gorm:"not null;index"`
	DisabilityTypeID uint    `json:"disabilityTypeId" gorm:"not null;index"`
	IsPrimary        bool    `json:"isPrimary" gorm:"not null;default:false"`
	Cause            *string `json:"cause" gorm:"type:varchar(20)"`
}

// TableName specifies the table name
func (Disability) TableName() string {
	return "pwd_disabilities"
}

// Employment holds employment details for a profile (one-to-one)
type Employment struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	ProfileID  uint    `json:"profileId" gorm:"not null;index"`
	Status     *string `json:"status" gorm:"type:varchar(30)"`
	Category   *string `json:"category" gorm:"type:varchar(100)"`
	Type       *string `json:"type" gorm:"type:varchar(100)"`
	Occupation *string `json:"occupation" gorm:"type:varchar(150)"`
}

// TableName specifies the table name
func (Employment) TableName() string {
	return "pwd_employment"
}

// Education holds educational attainment for a profile (one-to-one)
type Education struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	ProfileID  uint    `json:"profileId" gorm:"not null;index"`
	Attainment *string `json:"attainment" gorm:"type:varchar(50)"`
}

// TableName specifies the table name
func (Education) TableName() string {
	return "pwd_education"
}

// ProfileVersion is an append-only snapshot of the full profile graph
// taken at a point in time. Version numbers start at 1.
type ProfileVersion struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ProfileID     uint           `json:"profileId" gorm:"not null;index"`
	VersionNumber int            `json:"versionNumber" gorm:"not null"`
	Snapshot      datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	ChangedBy     *uint          `json:"changedBy"`
	ChangeSummary string         `json:"changeSummary" gorm:"type:varchar(255)"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// TableName specifies the table name
func (ProfileVersion) TableName() string {
	return "pwd_profile_versions"
}
