package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrUnknownTipCategory = errors.New("unknown tip category")

type TipCategory string

const (
	TipNutrition  TipCategory = "nutrition"
	TipExercise   TipCategory = "exercise"
	TipSleep      TipCategory = "sleep"
	TipStress     TipCategory = "stress"
	TipHydration  TipCategory = "hydration"
	TipPrevention TipCategory = "prevention"
)

type HealthTip struct {
	ID              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Content         string            `json:"content"`
	Category        TipCategory       `json:"category"`
	RelatedSymptoms []SymptomCategory `json:"relatedSymptoms"`
}

// RelatesToAny reports whether the tip shares at least one symptom category
// with the given set.
func (tip HealthTip) RelatesToAny(categories map[SymptomCategory]struct{}) bool {
	for _, related := range tip.RelatedSymptoms {
		if _, ok := categories[related]; ok {
			return true
		}
	}
	return false
}

func (tip HealthTip) RelatesTo(category SymptomCategory) bool {
	for _, related := range tip.RelatedSymptoms {
		if related == category {
			return true
		}
	}
	return false
}

var tipCategoryOrder = []TipCategory{
	TipNutrition,
	TipExercise,
	TipSleep,
	TipStress,
	TipHydration,
	TipPrevention,
}

var tipCategoryTable = map[TipCategory]categoryMeta{
	TipNutrition:  {label: "Nutrition", icon: "leaf.fill"},
	TipExercise:   {label: "Exercise", icon: "figure.run"},
	TipSleep:      {label: "Sleep", icon: "moon.zzz.fill"},
	TipStress:     {label: "Stress Management", icon: "brain.head.profile"},
	TipHydration:  {label: "Hydration", icon: "drop.fill"},
	TipPrevention: {label: "Prevention", icon: "shield.fill"},
}

func AllTipCategories() []TipCategory {
	return append([]TipCategory(nil), tipCategoryOrder...)
}

func (category TipCategory) Valid() bool {
	_, ok := tipCategoryTable[category]
	return ok
}

func (category TipCategory) Label() string {
	return tipCategoryTable[category].label
}

func (category TipCategory) Icon() string {
	return tipCategoryTable[category].icon
}

func (category *TipCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseTipCategory(string(text))
	if err != nil {
		return err
	}
	*category = parsed
	return nil
}

func ParseTipCategory(raw string) (TipCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range tipCategoryOrder {
		if string(candidate) == normalized || strings.ToLower(candidate.Label()) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTipCategory, raw)
}
