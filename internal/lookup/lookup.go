// Package lookup resolves legacy free-text barangay and disability-type
// spellings against the target reference tables. Matching is exact on
// normalized strings: no fuzzy or edit-distance matching.
package lookup

import (
	"strings"

	"github.com/Suarenz/PDAO-system-sub000/internal/models"
)

// Table holds the in-memory normalization maps built from the target
// reference tables. Build it once per run with Load and pass it to the
// migrator stages.
type Table struct {
	barangays       map[string]uint
	disabilityTypes map[string]uint
}

// Load builds the lookup table from reference rows. Barangays are keyed
// by their normalized name and by a punctuation-stripped variant;
// disability types additionally by the hand-authored synonym table.
func Load(barangays []models.Barangay, types []models.DisabilityType) *Table {
	t := &Table{
		barangays:       make(map[string]uint, len(barangays)*2),
		disabilityTypes: make(map[string]uint, len(types)*4),
	}

	for _, b := range barangays {
		t.barangays[normalizeKey(b.Name)] = b.ID
		t.barangays[stripPunctuation(normalizeKey(b.Name))] = b.ID
	}

	for _, dt := range types {
		name := normalizeKey(dt.Name)
		t.disabilityTypes[name] = dt.ID
		for _, synonym := range disabilitySynonyms[name] {
			t.disabilityTypes[synonym] = dt.ID
		}
	}

	return t
}

// FindBarangayID resolves legacy barangay free text to a reference ID.
// Nil/empty input and unmatched text both return nil.
func (t *Table) FindBarangayID(raw *string) *uint {
	if raw == nil {
		return nil
	}
	s := normalizeKey(*raw)
	if s == "" {
		return nil
	}
	if id, ok := t.barangays[s]; ok {
		return &id
	}
	if id, ok := t.barangays[stripPunctuation(s)]; ok {
		return &id
	}
	return nil
}

// FindDisabilityTypeID resolves legacy disability-type free text to a
// reference ID. Nil/empty input and unmatched text both return nil.
func (t *Table) FindDisabilityTypeID(raw *string) *uint {
	if raw == nil {
		return nil
	}
	s := normalizeKey(*raw)
	if s == "" {
		return nil
	}
	if id, ok := t.disabilityTypes[s]; ok {
		return &id
	}
	return nil
}

// normalizeKey lower-cases and trims, matching how map keys are built
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripPunctuation removes the period and comma characters that legacy
// encoders used inconsistently ("Sta. Cruz" vs "Sta Cruz")
func stripPunctuation(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// disabilitySynonyms maps a normalized canonical disability-type name to
// the legacy spellings encoders actually typed. Hand-authored from a
// survey of the legacy data; extend it when new spellings surface.
var disabilitySynonyms = map[string][]string{
	"deaf or hard of hearing": {
		"deaf",
		"hard of hearing",
		"hearing impaired",
		"hearing",
		"hearing disability",
	},
	"physical disability": {
		"physical",
		"physical impairment",
		"physically handicapped",
	},
	"visual disability": {
		"visual",
		"visual impairment",
		"blind",
		"low vision",
	},
	"mental disability": {
		"mental",
		"mental illness",
	},
	"intellectual disability": {
		"intellectual",
		"mental retardation",
	},
	"orthopedic disability": {
		"orthopedic",
		"ortho",
		"orthopedic (musculoskeletal)",
	},
	"psychosocial disability": {
		"psychosocial",
		"psycho-social",
	},
	"learning disability": {
		"learning",
	},
	"speech and language impairment": {
		"speech",
		"language",
		"speech impairment",
		"speech/language",
	},
	"chronic illness": {
		"chronic",
		"chronic disease",
	},
	"cancer": {
		"cancer (ra 11215)",
	},
	"rare disease": {
		"rare disease (ra 10747)",
	},
}
