package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "with seconds", raw: "08:30:15", want: TimeOfDay{Hour: 8, Minute: 30, Second: 15}},
		{name: "without seconds", raw: "21:05", want: TimeOfDay{Hour: 21, Minute: 5}},
		{name: "out of range", raw: "25:00", wantErr: true},
		{name: "garbage", raw: "noon", wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTimeOfDay(test.raw)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidTimeOfDay) {
					t.Fatalf("ParseTimeOfDay(%q) expected ErrInvalidTimeOfDay, got %v", test.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) unexpected error: %v", test.raw, err)
			}
			if got != test.want {
				t.Fatalf("ParseTimeOfDay(%q) = %#v, want %#v", test.raw, got, test.want)
			}
		})
	}
}

func TestNewTimeOfDayRejectsOutOfRange(t *testing.T) {
	if _, err := NewTimeOfDay(12, 60, 0); !errors.Is(err, ErrInvalidTimeOfDay) {
		t.Fatalf("expected ErrInvalidTimeOfDay, got %v", err)
	}
}

func TestTimeOfDayOnKeepsDateAndLocation(t *testing.T) {
	location := time.FixedZone("UTC+3", 3*60*60)
	day := time.Date(2026, 5, 2, 17, 0, 0, 0, location)

	got := TimeOfDay{Hour: 7, Minute: 45, Second: 10}.On(day)
	want := time.Date(2026, 5, 2, 7, 45, 10, 0, location)
	if !got.Equal(want) {
		t.Fatalf("On() = %s, want %s", got, want)
	}
}

func TestReminderJSONKeepsEveryField(t *testing.T) {
	original := HealthReminder{
		ID:          uuid.New(),
		Title:       "Vitamin D",
		Time:        TimeOfDay{Hour: 7, Minute: 15, Second: 42},
		Enabled:     false,
		RepeatDaily: true,
		Type:        ReminderHydration,
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal reminder: %v", err)
	}

	var decoded HealthReminder
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal reminder: %v", err)
	}
	if decoded != original {
		t.Fatalf("decoded reminder = %#v, want %#v", decoded, original)
	}
}

func TestParseReminderTypeAcceptsLabel(t *testing.T) {
	got, err := ParseReminderType("Water")
	if err != nil {
		t.Fatalf("ParseReminderType() unexpected error: %v", err)
	}
	if got != ReminderHydration {
		t.Fatalf("ParseReminderType(Water) = %q, want %q", got, ReminderHydration)
	}
}
