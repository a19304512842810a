package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/catalog"
	"github.com/terraincognita07/medlifequest/internal/kv"
	"github.com/terraincognita07/medlifequest/internal/models"
)

const (
	StateKeySymptoms               = "symptoms"
	StateKeyReminders              = "reminders"
	StateKeyHasCompletedOnboarding = "hasCompletedOnboarding"
	StateKeyUserName               = "userName"
	StateKeySelectedTheme          = "selectedTheme"
)

var (
	ErrPersistFailed          = errors.New("user state not persisted")
	ErrOnboardingNameRequired = errors.New("onboarding name is required")
	ErrUnknownTheme           = errors.New("unknown theme")
	ErrInvalidSymptom         = errors.New("invalid symptom")
	ErrInvalidSymptomTitle    = errors.New("invalid symptom title")
	ErrDuplicateSymptomID     = errors.New("duplicate symptom id")
	ErrInvalidReminder        = errors.New("invalid reminder")
	ErrInvalidReminderTitle   = errors.New("invalid reminder title")
	ErrDuplicateReminderID    = errors.New("duplicate reminder id")
)

const maxTitleLength = 120

// UserStateService owns the user's symptoms, reminders and profile flags and
// writes every change straight through to a kv.Store.
//
// It has a single owner: no method is safe for concurrent use. Accessors
// return copies, so a snapshot handed out earlier never changes underneath
// the caller.
type UserStateService struct {
	store  kv.Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() uuid.UUID

	profile   models.UserProfile
	symptoms  []models.Symptom
	reminders reminderList
}

type UserStateOption func(*UserStateService)

func WithClock(now func() time.Time) UserStateOption {
	return func(service *UserStateService) {
		service.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) UserStateOption {
	return func(service *UserStateService) {
		service.newID = newID
	}
}

// NewUserStateService restores previously persisted state. Missing or corrupt
// slots fall back to their defaults; this never fails.
func NewUserStateService(store kv.Store, logger *slog.Logger, options ...UserStateOption) *UserStateService {
	if logger == nil {
		logger = slog.Default()
	}

	service := &UserStateService{
		store:   store,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.New,
		profile: models.DefaultUserProfile(),
	}
	for _, option := range options {
		option(service)
	}

	service.restore()
	return service
}

type SymptomInput struct {
	Title       string
	Severity    models.Severity
	Description string
	Category    models.SymptomCategory
	LoggedAt    time.Time
}

type ReminderInput struct {
	Title       string
	Time        models.TimeOfDay
	Enabled     *bool
	RepeatDaily *bool
	Type        models.ReminderType
}

func (service *UserStateService) Profile() models.UserProfile {
	return service.profile
}

func (service *UserStateService) Symptoms() []models.Symptom {
	return append([]models.Symptom(nil), service.symptoms...)
}

func (service *UserStateService) Symptom(id uuid.UUID) (models.Symptom, bool) {
	for _, symptom := range service.symptoms {
		if symptom.ID == id {
			return symptom, true
		}
	}
	return models.Symptom{}, false
}

func (service *UserStateService) Reminders() []models.HealthReminder {
	return service.reminders.list()
}

func (service *UserStateService) Reminder(id uuid.UUID) (models.HealthReminder, bool) {
	return service.reminders.get(id)
}

func (service *UserStateService) CompleteOnboarding(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrOnboardingNameRequired
	}

	service.profile.UserName = trimmed
	service.profile.HasCompletedOnboarding = true
	return errors.Join(
		service.persistValue(StateKeyUserName, service.profile.UserName),
		service.persistValue(StateKeyHasCompletedOnboarding, service.profile.HasCompletedOnboarding),
	)
}

func (service *UserStateService) SelectTheme(themeID string) error {
	theme, ok := catalog.LookupTheme(themeID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, themeID)
	}

	service.profile.SelectedTheme = theme.ID
	return service.persistValue(StateKeySelectedTheme, service.profile.SelectedTheme)
}

// ResetAccount restores factory defaults and removes every persisted slot, so
// a later restore sees no prior data at all.
func (service *UserStateService) ResetAccount() error {
	service.profile = models.DefaultUserProfile()
	service.symptoms = nil
	service.reminders = reminderList{}

	errs := make([]error, 0)
	for _, key := range []string{
		StateKeySymptoms,
		StateKeyReminders,
		StateKeyHasCompletedOnboarding,
		StateKeyUserName,
		StateKeySelectedTheme,
	} {
		if err := service.store.Delete(key); err != nil {
			errs = append(errs, service.persistFailure(key, err))
		}
	}
	return errors.Join(errs...)
}

// LogSymptom builds a symptom with a fresh id, defaulting LoggedAt to now, and
// adds it.
func (service *UserStateService) LogSymptom(input SymptomInput) (models.Symptom, error) {
	loggedAt := input.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = service.now()
	}

	symptom := normalizeSymptom(models.Symptom{
		ID:          service.newID(),
		Title:       input.Title,
		Severity:    input.Severity,
		Description: input.Description,
		LoggedAt:    loggedAt,
		Category:    input.Category,
	})
	if err := service.AddSymptom(symptom); err != nil {
		if errors.Is(err, ErrPersistFailed) {
			return symptom, err
		}
		return models.Symptom{}, err
	}
	return symptom, nil
}

// AddSymptom puts symptom at the front of the list (most recent first).
func (service *UserStateService) AddSymptom(symptom models.Symptom) error {
	symptom = normalizeSymptom(symptom)
	if err := validateSymptom(symptom); err != nil {
		return err
	}
	if _, exists := service.Symptom(symptom.ID); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSymptomID, symptom.ID)
	}

	updated := make([]models.Symptom, 0, len(service.symptoms)+1)
	updated = append(updated, symptom)
	service.symptoms = append(updated, service.symptoms...)
	return service.persistValue(StateKeySymptoms, service.symptoms)
}

// DeleteSymptom removes the symptom with id. An unknown id is not an error.
func (service *UserStateService) DeleteSymptom(id uuid.UUID) error {
	remaining := make([]models.Symptom, 0, len(service.symptoms))
	for _, symptom := range service.symptoms {
		if symptom.ID != id {
			remaining = append(remaining, symptom)
		}
	}
	service.symptoms = remaining
	return service.persistValue(StateKeySymptoms, service.symptoms)
}

// ScheduleReminder builds a reminder with a fresh id and appends it. Enabled
// and RepeatDaily default to true.
func (service *UserStateService) ScheduleReminder(input ReminderInput) (models.HealthReminder, error) {
	reminder := normalizeReminder(models.HealthReminder{
		ID:          service.newID(),
		Title:       input.Title,
		Time:        input.Time,
		Enabled:     boolOrDefault(input.Enabled, true),
		RepeatDaily: boolOrDefault(input.RepeatDaily, true),
		Type:        input.Type,
	})
	if err := service.AddReminder(reminder); err != nil {
		if errors.Is(err, ErrPersistFailed) {
			return reminder, err
		}
		return models.HealthReminder{}, err
	}
	return reminder, nil
}

// AddReminder appends reminder, keeping first-added-first order.
func (service *UserStateService) AddReminder(reminder models.HealthReminder) error {
	reminder = normalizeReminder(reminder)
	if err := validateReminder(reminder); err != nil {
		return err
	}
	if !service.reminders.add(reminder) {
		return fmt.Errorf("%w: %s", ErrDuplicateReminderID, reminder.ID)
	}
	return service.persistValue(StateKeyReminders, service.reminders.items)
}

// UpdateReminder replaces the reminder with the same id in place. It reports
// false, and persists nothing, when no such reminder exists.
func (service *UserStateService) UpdateReminder(reminder models.HealthReminder) (bool, error) {
	reminder = normalizeReminder(reminder)
	if err := validateReminder(reminder); err != nil {
		return false, err
	}
	if !service.reminders.replace(reminder) {
		return false, nil
	}
	return true, service.persistValue(StateKeyReminders, service.reminders.items)
}

// ToggleReminder flips the enabled flag of the reminder with id.
func (service *UserStateService) ToggleReminder(id uuid.UUID) (models.HealthReminder, bool, error) {
	reminder, ok := service.reminders.get(id)
	if !ok {
		return models.HealthReminder{}, false, nil
	}
	reminder.Enabled = !reminder.Enabled
	found, err := service.UpdateReminder(reminder)
	return reminder, found, err
}

// DeleteReminder removes the reminder with id. An unknown id is not an error.
func (service *UserStateService) DeleteReminder(id uuid.UUID) error {
	service.reminders.remove(id)
	return service.persistValue(StateKeyReminders, service.reminders.items)
}

func (service *UserStateService) persistValue(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return service.persistFailure(key, err)
	}
	if err := service.store.Set(key, encoded); err != nil {
		return service.persistFailure(key, err)
	}
	return nil
}

func (service *UserStateService) persistFailure(key string, err error) error {
	service.logger.Warn("user state change kept in memory only",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%w: %s: %v", ErrPersistFailed, key, err)
}

func (service *UserStateService) restore() {
	var symptoms []models.Symptom
	if service.restoreValue(StateKeySymptoms, &symptoms) {
		service.symptoms = uniqueSymptoms(symptoms)
	}

	var reminders []models.HealthReminder
	if service.restoreValue(StateKeyReminders, &reminders) {
		for _, reminder := range reminders {
			service.reminders.add(reminder)
		}
	}

	var hasCompletedOnboarding bool
	if service.restoreValue(StateKeyHasCompletedOnboarding, &hasCompletedOnboarding) {
		service.profile.HasCompletedOnboarding = hasCompletedOnboarding
	}

	var userName string
	if service.restoreValue(StateKeyUserName, &userName) {
		service.profile.UserName = userName
	}

	var selectedTheme string
	if service.restoreValue(StateKeySelectedTheme, &selectedTheme) {
		if _, ok := catalog.LookupTheme(selectedTheme); ok {
			service.profile.SelectedTheme = selectedTheme
		}
	}
}

// restoreValue decodes one slot into target. Absent, unreadable or corrupt
// slots report false and leave the default in place.
func (service *UserStateService) restoreValue(key string, target any) bool {
	raw, err := service.store.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			service.logger.Warn("user state slot unreadable, using default",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		service.logger.Warn("user state slot corrupt, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

func normalizeSymptom(symptom models.Symptom) models.Symptom {
	symptom.Title = strings.TrimSpace(symptom.Title)
	symptom.Description = strings.TrimSpace(symptom.Description)
	return symptom
}

func normalizeReminder(reminder models.HealthReminder) models.HealthReminder {
	reminder.Title = strings.TrimSpace(reminder.Title)
	return reminder
}

func validateSymptom(symptom models.Symptom) error {
	if symptom.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalidSymptom)
	}
	if symptom.Title == "" || len(symptom.Title) > maxTitleLength {
		return ErrInvalidSymptomTitle
	}
	if !symptom.Severity.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidSymptom, models.ErrUnknownSeverity)
	}
	if !symptom.Category.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidSymptom, models.ErrUnknownSymptomCategory)
	}
	return nil
}

func validateReminder(reminder models.HealthReminder) error {
	if reminder.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalidReminder)
	}
	if reminder.Title == "" || len(reminder.Title) > maxTitleLength {
		return ErrInvalidReminderTitle
	}
	if !reminder.Type.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidReminder, models.ErrUnknownReminderType)
	}
	if _, err := models.NewTimeOfDay(reminder.Time.Hour, reminder.Time.Minute, reminder.Time.Second); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReminder, err)
	}
	return nil
}

func uniqueSymptoms(symptoms []models.Symptom) []models.Symptom {
	seen := make(map[uuid.UUID]struct{}, len(symptoms))
	unique := make([]models.Symptom, 0, len(symptoms))
	for _, symptom := range symptoms {
		if _, dup := seen[symptom.ID]; dup {
			continue
		}
		seen[symptom.ID] = struct{}{}
		unique = append(unique, symptom)
	}
	return unique
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
