package migrator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
	"github.com/Suarenz/PDAO-system-sub000/internal/models"
	"github.com/Suarenz/PDAO-system-sub000/internal/repository"
)

func strp(s string) *string { return &s }

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newLegacyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openDB(t)
	require.NoError(t, db.AutoMigrate(&legacy.Account{}, &legacy.PwdRecord{}, &legacy.HistoryLog{}))
	return db
}

func newTargetDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openDB(t)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Barangay{},
		&models.DisabilityType{},
		&models.PwdProfile{},
		&models.PersonalInfo{},
		&models.Address{},
		&models.Contact{},
		&models.Disability{},
		&models.Employment{},
		&models.Education{},
		&models.ProfileVersion{},
		&models.ActivityLog{},
		&models.ActivityLogArchive{},
	))
	require.NoError(t, db.Create(&[]models.Barangay{
		{Name: "San Isidro"},
		{Name: "Sta Cruz"},
	}).Error)
	require.NoError(t, db.Create(&[]models.DisabilityType{
		{Name: "Deaf or Hard of Hearing"},
		{Name: "Visual Disability"},
	}).Error)
	return db
}

func newPipeline(t *testing.T, legacyDB, targetDB *gorm.DB, opts Options) *Pipeline {
	t.Helper()
	logger := testLogger()
	return New(
		legacy.NewSource(legacyDB, logger),
		repository.NewTargetRepository(targetDB),
		logger,
		opts,
	)
}

func seedAccount(t *testing.T, db *gorm.DB, row legacy.Account) {
	t.Helper()
	require.NoError(t, db.Create(&row).Error)
}

func fullPwdRecord(id uint) legacy.PwdRecord {
	return legacy.PwdRecord{
		PwdID:            id,
		FirstName:        strp("Maria"),
		LastName:         strp("Santos"),
		Birthday:         strp("1990-3-5"),
		Sex:              strp("female"),
		CivilStatus:      strp("widow"),
		BloodType:        strp("o+"),
		Barangay:         strp("Sta. Cruz"),
		HouseStreet:      strp("123 Main St"),
		Mobile:           strp("09171234567"),
		DisabilityType:   strp("hearing impaired"),
		DisabilityCause:  strp("Acquired - illness"),
		EmploymentStatus: strp("self employed"),
		Occupation:       strp("Vendor"),
		Education:        strp("high school"),
	}
}

func TestCheck_FailsFastOnMissingTable(t *testing.T) {
	legacyDB := openDB(t)
	require.NoError(t, legacyDB.AutoMigrate(&legacy.Account{}))

	p := newPipeline(t, legacyDB, newTargetDB(t), Options{})
	rep, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pwd_records")
	assert.Nil(t, rep, "fail-fast: no stage runs after a failed pre-check")
}

func TestMigrateUsers_SynthesizedEmailRoleAndStatus(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	seedAccount(t, legacyDB, legacy.Account{
		AccountID: 7,
		FirstName: "Juan",
		LastName:  "Cruz",
		Email:     nil,
		Password:  "$2y$10$legacyhash",
		UserType:  "Staff",
		Status:    "Approved",
	})

	p := newPipeline(t, legacyDB, targetDB, Options{})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Users.Migrated)
	assert.Equal(t, 0, rep.Users.Failed)

	var user models.User
	require.NoError(t, targetDB.First(&user, "email = ?", "juan.cruz@pdao.local").Error)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.Equal(t, "$2y$10$legacyhash", user.PasswordHash)
}

func TestMigrateUsers_RerunUpsertsByEmail(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	seedAccount(t, legacyDB, legacy.Account{
		AccountID: 1,
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     strp("ana@example.com"),
		UserType:  "encoder",
		Status:    "approved",
	})
	seedAccount(t, legacyDB, legacy.Account{
		AccountID: 2,
		FirstName: "Ben",
		LastName:  "Ocampo",
		UserType:  "admin",
		Status:    "pending",
	})

	for i := 0; i < 2; i++ {
		p := newPipeline(t, legacyDB, targetDB, Options{})
		_, err := p.Run(context.Background())
		require.NoError(t, err)
	}

	var users int64
	require.NoError(t, targetDB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(2), users, "upsert by email must dedupe across runs")

	var ben models.User
	require.NoError(t, targetDB.First(&ben, "email = ?", "ben.ocampo@pdao.local").Error)
	assert.Equal(t, models.RoleAdmin, ben.Role)
	assert.Equal(t, models.StatusInactive, ben.Status)
}

func TestMigrateProfiles_FullGraph(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)
	require.NoError(t, legacyDB.Create(ptrOf(fullPwdRecord(1))).Error)

	p := newPipeline(t, legacyDB, targetDB, Options{})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Profiles.Migrated)

	var profile models.PwdProfile
	require.NoError(t, targetDB.
		Preload("PersonalInfo").
		Preload("Address").
		Preload("Contact").
		Preload("Disabilities").
		Preload("Employment").
		Preload("Education").
		First(&profile).Error)

	assert.Equal(t, "Maria", profile.FirstName)
	assert.Equal(t, 1, profile.CurrentVersion)

	require.NotNil(t, profile.PersonalInfo)
	assert.Equal(t, strp("1990-03-05"), profile.PersonalInfo.Birthdate)
	assert.Equal(t, strp("Female"), profile.PersonalInfo.Sex)
	assert.Equal(t, strp("Widowed"), profile.PersonalInfo.CivilStatus)
	assert.Equal(t, strp("O+"), profile.PersonalInfo.BloodType)

	require.NotNil(t, profile.Address)
	require.NotNil(t, profile.Address.BarangayID, "Sta. Cruz must match the Sta Cruz reference row")
	assert.Equal(t, "San Pablo City", profile.Address.City)

	require.Len(t, profile.Disabilities, 1)
	assert.True(t, profile.Disabilities[0].IsPrimary)
	assert.Equal(t, strp("Acquired"), profile.Disabilities[0].Cause)

	require.NotNil(t, profile.Employment)
	assert.Equal(t, strp("Self-Employed"), profile.Employment.Status)

	require.NotNil(t, profile.Education)
	assert.Equal(t, strp("Highschool"), profile.Education.Attainment)

	var version models.ProfileVersion
	require.NoError(t, targetDB.First(&version, "profile_id = ?", profile.ID).Error)
	assert.Equal(t, 1, version.VersionNumber)
	assert.Equal(t, "Migrated from legacy system", version.ChangeSummary)
	assert.Nil(t, version.ChangedBy)
	assert.NotEmpty(t, version.Snapshot)
}

func TestMigrateProfiles_RowIsolation(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	good1 := fullPwdRecord(1)
	good1.PwdNumber = strp("PWD-001")
	bad := fullPwdRecord(2)
	bad.PwdNumber = strp("PWD-001") // Collides with row 1's unique number
	good2 := fullPwdRecord(3)
	good2.PwdNumber = strp("PWD-003")

	require.NoError(t, legacyDB.Create(ptrOf(good1)).Error)
	require.NoError(t, legacyDB.Create(ptrOf(bad)).Error)
	require.NoError(t, legacyDB.Create(ptrOf(good2)).Error)

	p := newPipeline(t, legacyDB, targetDB, Options{})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Profiles.Migrated)
	assert.Equal(t, 1, rep.Profiles.Failed)
	require.Len(t, rep.Errors, 1)
	assert.Contains(t, rep.Errors[0], "PWD 2:")

	// The failed row must leave no partial sub-records behind.
	var profiles, infos, versions int64
	require.NoError(t, targetDB.Model(&models.PwdProfile{}).Count(&profiles).Error)
	require.NoError(t, targetDB.Model(&models.PersonalInfo{}).Count(&infos).Error)
	require.NoError(t, targetDB.Model(&models.ProfileVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(2), profiles)
	assert.Equal(t, int64(2), infos)
	assert.Equal(t, int64(2), versions)
}

func TestMigrateProfiles_RerunDuplicates(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)
	require.NoError(t, legacyDB.Create(ptrOf(fullPwdRecord(1))).Error)

	for i := 0; i < 2; i++ {
		p := newPipeline(t, legacyDB, targetDB, Options{})
		_, err := p.Run(context.Background())
		require.NoError(t, err)
	}

	// Unconditional insert: a second live run duplicates profiles.
	var profiles int64
	require.NoError(t, targetDB.Model(&models.PwdProfile{}).Count(&profiles).Error)
	assert.Equal(t, int64(2), profiles)
}

func TestMigrateHistoryLogs_ArchiveFromRowTimestamp(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	seedAccount(t, legacyDB, legacy.Account{
		AccountID: 7,
		FirstName: "Juan",
		LastName:  "Cruz",
		UserType:  "Staff",
		Status:    "Approved",
	})
	when, err := time.Parse("2006-01-02 15:04:05", "2024-03-15 10:00:00")
	require.NoError(t, err)
	require.NoError(t, legacyDB.Create(&legacy.HistoryLog{
		HistoryID: 42,
		AccountID: 7,
		Activity:  "LOGIN",
		DateTime:  when,
	}).Error)
	require.NoError(t, legacyDB.Create(&legacy.HistoryLog{
		HistoryID: 43,
		AccountID: 999, // No migrated account
		Activity:  "UPDATE",
		DateTime:  when,
	}).Error)

	p := newPipeline(t, legacyDB, targetDB, Options{})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.HistoryLogs.Migrated)

	var juan models.User
	require.NoError(t, targetDB.First(&juan, "email = ?", "juan.cruz@pdao.local").Error)

	var archive models.ActivityLogArchive
	require.NoError(t, targetDB.First(&archive, "original_id = ?", 42).Error)
	assert.Equal(t, "2024-03", archive.ArchiveMonth)
	assert.Equal(t, "login", archive.ActionType)
	assert.Equal(t, "Legacy: LOGIN", archive.Description)
	require.NotNil(t, archive.UserID)
	assert.Equal(t, juan.ID, *archive.UserID)

	// Unmapped account resolves to null user, not a failure.
	var orphan models.ActivityLogArchive
	require.NoError(t, targetDB.First(&orphan, "original_id = ?", 43).Error)
	assert.Nil(t, orphan.UserID)
}

func TestDryRun_NeverWrites(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	seedAccount(t, legacyDB, legacy.Account{
		AccountID: 1,
		FirstName: "Ana",
		LastName:  "Reyes",
		UserType:  "staff",
		Status:    "approved",
	})
	rec := fullPwdRecord(1)
	rec.Barangay = strp("Nowhere Town")
	rec.DisabilityType = strp("not a real type")
	require.NoError(t, legacyDB.Create(&rec).Error)
	require.NoError(t, legacyDB.Create(&legacy.HistoryLog{
		HistoryID: 1,
		AccountID: 1,
		Activity:  "LOGIN",
		DateTime:  time.Now(),
	}).Error)

	p := newPipeline(t, legacyDB, targetDB, Options{DryRun: true})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	// Counting still happens everywhere.
	assert.Equal(t, 1, rep.Users.Migrated)
	assert.Equal(t, 1, rep.Profiles.Migrated)
	assert.Equal(t, 1, rep.HistoryLogs.Migrated)

	// Unmapped lookups surface as warnings, not errors.
	assert.Len(t, rep.Errors, 0)
	require.Len(t, rep.Warnings, 2)
	assert.Contains(t, rep.Warnings[0], "Nowhere Town")
	assert.Contains(t, rep.Warnings[1], "not a real type")

	// And nothing was written.
	var users, profiles, archives int64
	require.NoError(t, targetDB.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, targetDB.Model(&models.PwdProfile{}).Count(&profiles).Error)
	require.NoError(t, targetDB.Model(&models.ActivityLogArchive{}).Count(&archives).Error)
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.Zero(t, archives)
}

func TestDryRun_WarnsOnMissingNames(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	rec := legacy.PwdRecord{PwdID: 5}
	require.NoError(t, legacyDB.Create(&rec).Error)

	p := newPipeline(t, legacyDB, targetDB, Options{DryRun: true})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "PWD 5")
	assert.Contains(t, rep.Warnings[0], "first and last name")
}

func TestLimit_AppliesPerStage(t *testing.T) {
	legacyDB := newLegacyDB(t)
	targetDB := newTargetDB(t)

	for i := uint(1); i <= 3; i++ {
		seedAccount(t, legacyDB, legacy.Account{
			AccountID: i,
			FirstName: "User",
			LastName:  string(rune('A' + i)),
			UserType:  "user",
			Status:    "approved",
		})
		require.NoError(t, legacyDB.Create(ptrOf(fullPwdRecord(i))).Error)
		require.NoError(t, legacyDB.Create(&legacy.HistoryLog{
			HistoryID: i,
			AccountID: i,
			Activity:  "LOGIN",
			DateTime:  time.Now(),
		}).Error)
	}

	p := newPipeline(t, legacyDB, targetDB, Options{Limit: 2})
	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Users.Migrated+rep.Users.Failed)
	assert.Equal(t, 2, rep.Profiles.Migrated+rep.Profiles.Failed)
	assert.Equal(t, 2, rep.HistoryLogs.Migrated+rep.HistoryLogs.Failed)
}

func ptrOf(r legacy.PwdRecord) *legacy.PwdRecord {
	return &r
}
