package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Suarenz/PDAO-system-sub000/internal/models"
)

// migrationChangeSummary is recorded on the version-1 snapshot of every
// migrated profile.
const migrationChangeSummary = "Migrated from legacy system"

// TargetRepository handles all writes to the target database plus the
// reference-data reads the lookup loader needs.
type TargetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository
func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{
		db: db,
	}
}

// Barangays loads all barangay reference rows
func (r *TargetRepository) Barangays(ctx context.Context) ([]models.Barangay, error) {
	var rows []models.Barangay
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load barangays: %w", err)
	}
	return rows, nil
}

// DisabilityTypes loads all disability-type reference rows
func (r *TargetRepository) DisabilityTypes(ctx context.Context) ([]models.DisabilityType, error) {
	var rows []models.DisabilityType
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load disability types: %w", err)
	}
	return rows, nil
}

// UpsertUserByEmail updates the user with the given email if one exists,
// otherwise inserts a new one. Returns the target user ID either way.
func (r *TargetRepository) UpsertUserByEmail(ctx context.Context, user *models.User) (uint, error) {
	var existing models.User
	err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			return 0, err
		}
		return user.ID, nil
	}
	if err != nil {
		return 0, err
	}

	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.PasswordHash = user.PasswordHash
	existing.Role = user.Role
	existing.Status = user.Status
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return 0, err
	}
	return existing.ID, nil
}

// ProfileGraph is the full set of records created for one migrated PWD
// row. Disability is nil when the legacy disability type had no match.
type ProfileGraph struct {
	Profile      models.PwdProfile
	PersonalInfo models.PersonalInfo
	Address      models.Address
	Contact      models.Contact
	Disability   *models.Disability
	Employment   models.Employment
	Education    models.Education
}

// CreateProfileGraph persists a profile and all of its sub-records plus
// the version-1 snapshot inside a single transaction. If any step fails
// the whole row is rolled back; rows are independent of each other.
func (r *TargetRepository) CreateProfileGraph(ctx context.Context, graph *ProfileGraph) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&graph.Profile).Error; err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		profileID := graph.Profile.ID

		graph.PersonalInfo.ProfileID = profileID
		if err := tx.Create(&graph.PersonalInfo).Error; err != nil {
			return fmt.Errorf("personal info: %w", err)
		}

		graph.Address.ProfileID = profileID
		if err := tx.Create(&graph.Address).Error; err != nil {
			return fmt.Errorf("address: %w", err)
		}

		graph.Contact.ProfileID = profileID
		if err := tx.Create(&graph.Contact).Error; err != nil {
			return fmt.Errorf("contact: %w", err)
		}

		if graph.Disability != nil {
			graph.Disability.ProfileID = profileID
			if err := tx.Create(graph.Disability).Error; err != nil {
				return fmt.Errorf("disability: %w", err)
			}
		}

		graph.Employment.ProfileID = profileID
		if err := tx.Create(&graph.Employment).Error; err != nil {
			return fmt.Errorf("employment: %w", err)
		}

		graph.Education.ProfileID = profileID
		if err := tx.Create(&graph.Education).Error; err != nil {
			return fmt.Errorf("education: %w", err)
		}

		version, err := buildVersionSnapshot(tx, profileID)
		if err != nil {
			return err
		}
		if err := tx.Create(version).Error; err != nil {
			return fmt.Errorf("profile version: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return graph.Profile.ID, nil
}

// buildVersionSnapshot re-loads the full profile graph and serializes it
// into the append-only version record.
func buildVersionSnapshot(tx *gorm.DB, profileID uint) (*models.ProfileVersion, error) {
	var full models.PwdProfile
	err := tx.
		Preload("PersonalInfo").
		Preload("Address").
		Preload("Contact").
		Preload("Disabilities").
		Preload("Employment").
		Preload("Education").
		First(&full, profileID).Error
	if err != nil {
		return nil, fmt.Errorf("snapshot reload: %w", err)
	}

	snapshot, err := json.Marshal(full)
	if err != nil {
		return nil, fmt.Errorf("snapshot marshal: %w", err)
	}

	return &models.ProfileVersion{
		ProfileID:     profileID,
		VersionNumber: 1,
		Snapshot:      datatypes.JSON(snapshot),
		ChangedBy:     nil,
		ChangeSummary: migrationChangeSummary,
	}, nil
}

// InsertArchive inserts one activity log archive row. Unconditional
// insert: re-running the history log stage duplicates rows.
func (r *TargetRepository) InsertArchive(ctx context.Context, archive *models.ActivityLogArchive) error {
	return r.db.WithContext(ctx).Create(archive).Error
}
