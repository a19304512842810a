package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownReminderType = errors.New("unknown reminder type")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day")
)

type ReminderType string

const (
	ReminderMedication  ReminderType = "medication"
	ReminderAppointment ReminderType = "appointment"
	ReminderExercise    ReminderType = "exercise"
	ReminderHydration   ReminderType = "hydration"
	ReminderCustom      ReminderType = "custom"
)

type HealthReminder struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Time        TimeOfDay    `json:"time"`
	Enabled     bool         `json:"enabled"`
	RepeatDaily bool         `json:"repeatDaily"`
	Type        ReminderType `json:"type"`
}

var reminderTypeOrder = []ReminderType{
	ReminderMedication,
	ReminderAppointment,
	ReminderExercise,
	ReminderHydration,
	ReminderCustom,
}

var reminderTypeTable = map[ReminderType]categoryMeta{
	ReminderMedication:  {label: "Medication", icon: "pills.fill"},
	ReminderAppointment: {label: "Appointment", icon: "calendar.badge.clock"},
	ReminderExercise:    {label: "Exercise", icon: "figure.run"},
	ReminderHydration:   {label: "Water", icon: "drop.fill"},
	ReminderCustom:      {label: "Custom", icon: "bell.fill"},
}

func AllReminderTypes() []ReminderType {
	return append([]ReminderType(nil), reminderTypeOrder...)
}

func (reminderType ReminderType) Valid() bool {
	_, ok := reminderTypeTable[reminderType]
	return ok
}

func (reminderType ReminderType) Label() string {
	return reminderTypeTable[reminderType].label
}

func (reminderType ReminderType) Icon() string {
	return reminderTypeTable[reminderType].icon
}

func (reminderType *ReminderType) UnmarshalText(text []byte) error {
	parsed, err := ParseReminderType(string(text))
	if err != nil {
		return err
	}
	*reminderType = parsed
	return nil
}

func ParseReminderType(raw string) (ReminderType, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range reminderTypeOrder {
		if string(candidate) == normalized || strings.ToLower(candidate.Label()) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReminderType, raw)
}

// TimeOfDay is a wall-clock time without a date, kept at second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

const timeOfDayLayout = "15:04:05"

func NewTimeOfDay(hour int, minute int, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTimeOfDay, hour, minute, second)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

func TimeOfDayFrom(value time.Time) TimeOfDay {
	return TimeOfDay{Hour: value.Hour(), Minute: value.Minute(), Second: value.Second()}
}

// ParseTimeOfDay accepts "HH:MM:SS" or "HH:MM".
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range []string{timeOfDayLayout, "15:04"} {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return TimeOfDayFrom(parsed), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, raw)
}

func (value TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", value.Hour, value.Minute, value.Second)
}

// On returns the instant at this time of day on the date of day, in day's location.
func (value TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), value.Hour, value.Minute, value.Second, 0, day.Location())
}

func (value TimeOfDay) MarshalText() ([]byte, error) {
	if _, err := NewTimeOfDay(value.Hour, value.Minute, value.Second); err != nil {
		return nil, err
	}
	return []byte(value.String()), nil
}

func (value *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*value = parsed
	return nil
}
