package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownSeverity        = errors.New("unknown severity")
	ErrUnknownSymptomCategory = errors.New("unknown symptom category")
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type SymptomCategory string

const (
	CategoryHeadache        SymptomCategory = "headache"
	CategoryFatigue         SymptomCategory = "fatigue"
	CategoryDigestive       SymptomCategory = "digestive"
	CategoryRespiratory     SymptomCategory = "respiratory"
	CategoryMusculoskeletal SymptomCategory = "musculoskeletal"
	CategorySkin            SymptomCategory = "skin"
	CategoryMental          SymptomCategory = "mental"
	CategoryOther           SymptomCategory = "other"
)

// Symptom is a single user-logged complaint. Entries are replaced or deleted
// as a whole, never edited field by field.
type Symptom struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Severity    Severity        `json:"severity"`
	Description string          `json:"description"`
	LoggedAt    time.Time       `json:"loggedAt"`
	Category    SymptomCategory `json:"category"`
}

type severityMeta struct {
	label string
	color string
}

var severityOrder = []Severity{SeverityMild, SeverityModerate, SeveritySevere}

var severityTable = map[Severity]severityMeta{
	SeverityMild:     {label: "Mild", color: "86b028"},
	SeverityModerate: {label: "Moderate", color: "4a8fdc"},
	SeveritySevere:   {label: "Severe", color: "213d62"},
}

func AllSeverities() []Severity {
	return append([]Severity(nil), severityOrder...)
}

func (severity Severity) Valid() bool {
	_, ok := severityTable[severity]
	return ok
}

func (severity Severity) Label() string {
	return severityTable[severity].label
}

// Color is a hex RGB value without the leading '#'.
func (severity Severity) Color() string {
	return severityTable[severity].color
}

func (severity *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*severity = parsed
	return nil
}

func ParseSeverity(raw string) (Severity, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range severityOrder {
		if string(candidate) == normalized || strings.ToLower(candidate.Label()) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, raw)
}

type categoryMeta struct {
	label string
	icon  string
}

var symptomCategoryOrder = []SymptomCategory{
	CategoryHeadache,
	CategoryFatigue,
	CategoryDigestive,
	CategoryRespiratory,
	CategoryMusculoskeletal,
	CategorySkin,
	CategoryMental,
	CategoryOther,
}

var symptomCategoryTable = map[SymptomCategory]categoryMeta{
	CategoryHeadache:        {label: "Headache", icon: "brain.head.profile"},
	CategoryFatigue:         {label: "Fatigue", icon: "bed.double.fill"},
	CategoryDigestive:       {label: "Digestive", icon: "cross.case.fill"},
	CategoryRespiratory:     {label: "Respiratory", icon: "lungs.fill"},
	CategoryMusculoskeletal: {label: "Musculoskeletal", icon: "figure.walk"},
	CategorySkin:            {label: "Skin", icon: "paintpalette.fill"},
	CategoryMental:          {label: "Mental Health", icon: "heart.fill"},
	CategoryOther:           {label: "Other", icon: "stethoscope"},
}

// AllSymptomCategories lists every category in display order.
func AllSymptomCategories() []SymptomCategory {
	return append([]SymptomCategory(nil), symptomCategoryOrder...)
}

func (category SymptomCategory) Valid() bool {
	_, ok := symptomCategoryTable[category]
	return ok
}

func (category SymptomCategory) Label() string {
	return symptomCategoryTable[category].label
}

func (category SymptomCategory) Icon() string {
	return symptomCategoryTable[category].icon
}

func (category *SymptomCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseSymptomCategory(string(text))
	if err != nil {
		return err
	}
	*category = parsed
	return nil
}

// ParseSymptomCategory accepts either the category key or its display label.
func ParseSymptomCategory(raw string) (SymptomCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range symptomCategoryOrder {
		if string(candidate) == normalized || strings.ToLower(candidate.Label()) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSymptomCategory, raw)
}
