package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseSymptomCategoryAcceptsKeyAndLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want SymptomCategory
	}{
		{raw: "headache", want: CategoryHeadache},
		{raw: "Mental Health", want: CategoryMental},
		{raw: "  MUSCULOSKELETAL ", want: CategoryMusculoskeletal},
	}

	for _, test := range tests {
		test := test
		t.Run(test.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSymptomCategory(test.raw)
			if err != nil {
				t.Fatalf("ParseSymptomCategory(%q) unexpected error: %v", test.raw, err)
			}
			if got != test.want {
				t.Fatalf("ParseSymptomCategory(%q) = %q, want %q", test.raw, got, test.want)
			}
		})
	}
}

func TestParseSymptomCategoryRejectsUnknown(t *testing.T) {
	_, err := ParseSymptomCategory("toothache")
	if !errors.Is(err, ErrUnknownSymptomCategory) {
		t.Fatalf("expected ErrUnknownSymptomCategory, got %v", err)
	}
}

func TestEveryEnumerationHasLabelAndIcon(t *testing.T) {
	categories := AllSymptomCategories()
	if len(categories) != 8 {
		t.Fatalf("expected 8 symptom categories, got %d", len(categories))
	}
	for _, category := range categories {
		if category.Label() == "" || category.Icon() == "" {
			t.Fatalf("symptom category %q is missing label or icon", category)
		}
	}

	tipCategories := AllTipCategories()
	if len(tipCategories) != 6 {
		t.Fatalf("expected 6 tip categories, got %d", len(tipCategories))
	}
	for _, category := range tipCategories {
		if category.Label() == "" || category.Icon() == "" {
			t.Fatalf("tip category %q is missing label or icon", category)
		}
	}

	reminderTypes := AllReminderTypes()
	if len(reminderTypes) != 5 {
		t.Fatalf("expected 5 reminder types, got %d", len(reminderTypes))
	}
	for _, reminderType := range reminderTypes {
		if reminderType.Label() == "" || reminderType.Icon() == "" {
			t.Fatalf("reminder type %q is missing label or icon", reminderType)
		}
	}

	for _, severity := range AllSeverities() {
		if severity.Label() == "" || len(severity.Color()) != 6 {
			t.Fatalf("severity %q is missing label or color", severity)
		}
	}
}

func TestSymptomJSONKeepsEveryField(t *testing.T) {
	original := Symptom{
		ID:          uuid.New(),
		Title:       "Tension headache",
		Severity:    SeverityModerate,
		Description: "Behind the eyes",
		LoggedAt:    time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC),
		Category:    CategoryHeadache,
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal symptom: %v", err)
	}

	var decoded Symptom
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal symptom: %v", err)
	}
	if decoded.ID != original.ID || decoded.Title != original.Title || decoded.Description != original.Description {
		t.Fatalf("decoded symptom = %#v, want %#v", decoded, original)
	}
	if decoded.Severity != original.Severity || decoded.Category != original.Category {
		t.Fatalf("decoded enums = (%q, %q), want (%q, %q)", decoded.Severity, decoded.Category, original.Severity, original.Category)
	}
	if !decoded.LoggedAt.Equal(original.LoggedAt) {
		t.Fatalf("decoded loggedAt = %s, want %s", decoded.LoggedAt, original.LoggedAt)
	}
}

func TestSymptomJSONRejectsUnknownCategory(t *testing.T) {
	raw := `{"id":"6f1c2c1e-8a7e-4a53-9a57-0d5c3c1b2a10","title":"x","severity":"mild","category":"elbow"}`

	var decoded Symptom
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		t.Fatal("expected unknown category to fail decoding")
	}
}
