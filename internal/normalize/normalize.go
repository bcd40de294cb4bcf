// Package normalize contains the field-level normalization rules used
// when converting free-text legacy values into the closed value sets of
// the target schema. Every function here follows the same policy: an
// unrecognized value maps to nil, never to an error.
package normalize

import (
	"strings"
	"time"

	"github.com/Suarenz/PDAO-system-sub000/internal/models"
)

// dateSentinel is the zero-date placeholder the legacy MySQL schema used
// for "no value".
const dateSentinel = "0000-00-00"

// dateLayouts are tried in order when parsing legacy date strings.
var dateLayouts = []string{
	"2006-1-2",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Date parses a legacy date string and reformats it as YYYY-MM-DD.
// Nil, empty, the 0000-00-00 sentinel, and unparseable values all yield
// nil.
func Date(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" || s == dateSentinel {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			formatted := t.Format("2006-01-02")
			return &formatted
		}
	}
	return nil
}

// Sex normalizes the legacy sex field to Male/Female
func Sex(raw *string) *string {
	switch key(raw) {
	case "male", "m":
		return ptr(models.SexMale)
	case "female", "f":
		return ptr(models.SexFemale)
	default:
		return nil
	}
}

var civilStatuses = map[string]string{
	"single":    models.CivilSingle,
	"married":   models.CivilMarried,
	"widowed":   models.CivilWidowed,
	"widow":     models.CivilWidowed,
	"separated": models.CivilSeparated,
	"divorced":  models.CivilDivorced,
}

// CivilStatus normalizes the legacy civil status field
func CivilStatus(raw *string) *string {
	if v, ok := civilStatuses[key(raw)]; ok {
		return &v
	}
	return nil
}

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

// BloodType accepts only the 8 standard blood types after uppercasing
func BloodType(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.ToUpper(strings.TrimSpace(*raw))
	if _, ok := bloodTypes[s]; ok {
		return &s
	}
	return nil
}

// DisabilityCause normalizes the legacy cause field by substring match
func DisabilityCause(raw *string) *string {
	s := key(raw)
	switch {
	case strings.Contains(s, "acquired"):
		return ptr(models.CauseAcquired)
	case strings.Contains(s, "congenital"):
		return ptr(models.CauseCongenital)
	default:
		return nil
	}
}

// EmploymentStatus normalizes the legacy employment status by substring
// match. "self" is tested before "employ" so that self-employed values
// do not fall through to Employed.
func EmploymentStatus(raw *string) *string {
	s := key(raw)
	switch {
	case strings.Contains(s, "self"):
		return ptr(models.EmploymentSelfEmployed)
	case strings.Contains(s, "unemploy"):
		return ptr(models.EmploymentUnemployed)
	case strings.Contains(s, "employ"):
		return ptr(models.EmploymentEmployed)
	default:
		return nil
	}
}

// educationAttainments is carried over verbatim from the legacy mapping
// table. Note the asymmetry: "high school" and "highschool" both map to
// "Highschool" while "high school education" maps to the distinct value
// "High School Education". Pending product-owner confirmation this is
// preserved as-is rather than normalized.
var educationAttainments = map[string]string{
	"none":                  "None",
	"elementary":            "Elementary",
	"highschool":            "Highschool",
	"high school":           "Highschool",
	"high school education": "High School Education",
	"vocational":            "Vocational",
	"college":               "College",
	"post graduate":         "Postgraduate",
	"postgraduate":          "Postgraduate",
}

// EducationAttainment normalizes the legacy education field
func EducationAttainment(raw *string) *string {
	if v, ok := educationAttainments[key(raw)]; ok {
		return &v
	}
	return nil
}

var userRoles = map[string]models.UserRole{
	"superadmin": models.RoleAdmin,
	"admin":      models.RoleAdmin,
	"staff":      models.RoleStaff,
	"encoder":    models.RoleEncoder,
}

// Role maps a legacy user_type to a target role. The mapping is total:
// unknown values default to USER.
func Role(raw string) models.UserRole {
	if role, ok := userRoles[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return role
	}
	return models.RoleUser
}

// AccountStatus maps a legacy account status to a target status.
// Only "approved" (case-insensitive) becomes ACTIVE.
func AccountStatus(raw string) models.UserStatus {
	if strings.EqualFold(strings.TrimSpace(raw), "approved") {
		return models.StatusActive
	}
	return models.StatusInactive
}

// OptionalText trims a legacy text field, coercing blank and dash
// placeholder values to nil.
func OptionalText(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" || s == "-" {
		return nil
	}
	return &s
}

// RequiredName trims a legacy name field, substituting "Unknown" for
// blank and dash placeholder values.
func RequiredName(raw *string) string {
	if v := OptionalText(raw); v != nil {
		return *v
	}
	return "Unknown"
}

func key(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*raw))
}

func ptr(s string) *string {
	return &s
}
