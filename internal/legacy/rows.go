package legacy

import "time"

// Typed views of the legacy tables. Only the columns the migration
// consumes are declared; optional columns are pointers so that NULL and
// absent values survive the boundary without ad-hoc checks later.

// Account is a row from the legacy accounts table
type Account struct {
	AccountID uint    `gorm:"column:account_id;primaryKey"`
	FirstName string  `gorm:"column:firstname"`
	LastName  string  `gorm:"column:lastname"`
	Email     *string `gorm:"column:email"`
	Password  string  `gorm:"column:password"` // Pre-hashed, carried over verbatim
	UserType  string  `gorm:"column:user_type"`
	Status    string  `gorm:"column:status"`
}

// TableName specifies the legacy table name
func (Account) TableName() string {
	return "accounts"
}

// PwdRecord is a row from the legacy PWD registry table. The legacy
// schema is free-text heavy: barangay and disability type are raw
// strings that must be resolved against the target reference tables.
type PwdRecord struct {
	PwdID              uint    `gorm:"column:pwd_id;primaryKey"`
	PwdNumber          *string `gorm:"column:pwd_number"`
	FirstName          *string `gorm:"column:pwd_firstname"`
	MiddleName         *string `gorm:"column:pwd_middlename"`
	LastName           *string `gorm:"column:pwd_lastname"`
	Suffix             *string `gorm:"column:pwd_suffix"`
	DateApplied        *string `gorm:"column:date_applied"`
	Birthday           *string `gorm:"column:pwd_birthday"`
	Birthplace         *string `gorm:"column:pwd_birthplace"`
	Sex                *string `gorm:"column:pwd_sex"`
	Religion           *string `gorm:"column:pwd_religion"`
	EthnicGroup        *string `gorm:"column:pwd_ethnic_group"`
	CivilStatus        *string `gorm:"column:pwd_civil_status"`
	BloodType          *string `gorm:"column:pwd_blood_type"`
	Barangay           *string `gorm:"column:pwd_barangay"`
	HouseStreet        *string `gorm:"column:pwd_house_street"`
	Mobile             *string `gorm:"column:pwd_mobile"`
	Landline           *string `gorm:"column:pwd_landline"`
	Email              *string `gorm:"column:pwd_email"`
	DisabilityType     *string `gorm:"column:pwd_disability_type"`
	DisabilityCause    *string `gorm:"column:pwd_disability_cause"`
	EmploymentStatus   *string `gorm:"column:pwd_employment_status"`
	EmploymentCategory *string `gorm:"column:pwd_employment_category"`
	EmploymentType     *string `gorm:"column:pwd_employment_type"`
	Occupation         *string `gorm:"column:pwd_occupation"`
	Education          *string `gorm:"column:pwd_education"`
}

// TableName specifies the legacy table name
func (PwdRecord) TableName() string {
	return "pwd_records"
}

// HistoryLog is a row from the legacy history log table
type HistoryLog struct {
	HistoryID uint      `gorm:"column:history_id;primaryKey"`
	AccountID uint      `gorm:"column:account_id"`
	Activity  string    `gorm:"column:activity"`
	DateTime  time.Time `gorm:"column:date_time"`
}

// TableName specifies the legacy table name
func (HistoryLog) TableName() string {
	return "history_logs"
}
