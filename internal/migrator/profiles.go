package migrator

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
	"github.com/Suarenz/PDAO-system-sub000/internal/models"
	"github.com/Suarenz/PDAO-system-sub000/internal/normalize"
	"github.com/Suarenz/PDAO-system-sub000/internal/repository"
)

// Address constants for this migration's source municipality. The legacy
// schema never stored city/province/region, so they are fixed here.
const (
	addressCity     = "San Pablo City"
	addressProvince = "Laguna"
	addressRegion   = "IV-A"
)

// MigrateProfiles migrates legacy PWD registry rows into the normalized
// profile aggregate. Each live-mode row is one transaction; dry-run mode
// validates and counts without writing.
func (p *Pipeline) MigrateProfiles(ctx context.Context) error {
	rows, err := p.source.PwdRecords(ctx, p.opts.Limit)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := p.migrateProfile(ctx, row); err != nil {
			p.report.Profiles.Failed++
			p.report.AddError("PWD %d: %v", row.PwdID, err)
			continue
		}
		p.report.Profiles.Migrated++
	}

	p.logger.WithFields(logrus.Fields{
		"migrated": p.report.Profiles.Migrated,
		"failed":   p.report.Profiles.Failed,
	}).Info("PWD profile migration complete")
	return nil
}

func (p *Pipeline) migrateProfile(ctx context.Context, row legacy.PwdRecord) error {
	barangayID := p.lookups.FindBarangayID(row.Barangay)
	typeID := p.lookups.FindDisabilityTypeID(row.DisabilityType)

	if p.opts.DryRun {
		p.validateProfile(row, barangayID, typeID)
		return nil
	}

	graph := &repository.ProfileGraph{
		Profile: models.PwdProfile{
			PwdNumber:      normalize.OptionalText(row.PwdNumber),
			FirstName:      normalize.RequiredName(row.FirstName),
			MiddleName:     normalize.OptionalText(row.MiddleName),
			LastName:       normalize.RequiredName(row.LastName),
			Suffix:         normalize.OptionalText(row.Suffix),
			DateApplied:    normalize.Date(row.DateApplied),
			CurrentVersion: 1,
		},
		PersonalInfo: models.PersonalInfo{
			Birthdate:   normalize.Date(row.Birthday),
			Birthplace:  normalize.OptionalText(row.Birthplace),
			Sex:         normalize.Sex(row.Sex),
			CivilStatus: normalize.CivilStatus(row.CivilStatus),
			BloodType:   normalize.BloodType(row.BloodType),
			Religion:    normalize.OptionalText(row.Religion),
			EthnicGroup: normalize.OptionalText(row.EthnicGroup),
		},
		Address: models.Address{
			BarangayID:  barangayID,
			HouseStreet: normalize.OptionalText(row.HouseStreet),
			City:        addressCity,
			Province:    addressProvince,
			Region:      addressRegion,
		},
		Contact: models.Contact{
			Mobile:   normalize.OptionalText(row.Mobile),
			Landline: normalize.OptionalText(row.Landline),
			Email:    normalize.OptionalText(row.Email),
		},
		Employment: models.Employment{
			Status:     normalize.EmploymentStatus(row.EmploymentStatus),
			Category:   normalize.OptionalText(row.EmploymentCategory),
			Type:       normalize.OptionalText(row.EmploymentType),
			Occupation: normalize.OptionalText(row.Occupation),
		},
		Education: models.Education{
			Attainment: normalize.EducationAttainment(row.Education),
		},
	}

	// Exactly one disability record, marked primary, and only when the
	// legacy free text matched a known type.
	if typeID != nil {
		graph.Disability = &models.Disability{
			DisabilityTypeID: *typeID,
			IsPrimary:        true,
			Cause:            normalize.DisabilityCause(row.DisabilityCause),
		}
	}

	_, err := p.repo.CreateProfileGraph(ctx, graph)
	return err
}

// validateProfile emits the dry-run advisory warnings. Warnings never
// block processing.
func (p *Pipeline) validateProfile(row legacy.PwdRecord, barangayID, typeID *uint) {
	if text := trimmed(row.Barangay); text != "" && barangayID == nil {
		p.report.AddWarning("PWD %d: barangay %q has no match in reference table", row.PwdID, text)
	}
	if text := trimmed(row.DisabilityType); text != "" && typeID == nil {
		p.report.AddWarning("PWD %d: disability type %q has no match in reference table", row.PwdID, text)
	}
	if trimmed(row.FirstName) == "" && trimmed(row.LastName) == "" {
		p.report.AddWarning("PWD %d: both first and last name are empty", row.PwdID)
	}
}

func trimmed(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}
