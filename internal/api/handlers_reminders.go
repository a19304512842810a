package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/medlifequest/internal/models"
	"github.com/terraincognita07/medlifequest/internal/services"
)

type reminderView struct {
	models.HealthReminder
	NextAt *time.Time `json:"nextAt,omitempty"`
}

// newReminderView adds the next firing instant for enabled reminders: today at
// the reminder's time in location, or tomorrow when that has already passed.
func newReminderView(reminder models.HealthReminder, now time.Time, location *time.Location) reminderView {
	view := reminderView{HealthReminder: reminder}
	if !reminder.Enabled {
		return view
	}

	local := now.In(location)
	next := reminder.Time.On(local)
	if !next.After(local) {
		if !reminder.RepeatDaily {
			return view
		}
		next = reminder.Time.On(local.AddDate(0, 0, 1))
	}
	view.NextAt = &next
	return view
}

func (handler *Handler) reminderViews(reminders []models.HealthReminder) []reminderView {
	now := handler.now()
	views := make([]reminderView, 0, len(reminders))
	for _, reminder := range reminders {
		views = append(views, newReminderView(reminder, now, handler.location))
	}
	return views
}

// ReminderSnapshot returns the current reminders for background readers such
// as the notifier.
func (handler *Handler) ReminderSnapshot() []models.HealthReminder {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	return handler.state.Reminders()
}

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	handler.mu.Lock()
	reminders := handler.state.Reminders()
	handler.mu.Unlock()

	return c.JSON(handler.reminderViews(reminders))
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, messageInvalidInput)
	}
	if input.Time == nil {
		return apiError(c, fiber.StatusBadRequest, "time is required")
	}

	handler.mu.Lock()
	reminder, err := handler.state.ScheduleReminder(services.ReminderInput{
		Title:       input.Title,
		Time:        *input.Time,
		Enabled:     input.Enabled,
		RepeatDaily: input.RepeatDaily,
		Type:        input.Type,
	})
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newReminderView(reminder, handler.now(), handler.location))
}

// UpdateReminder replaces the reminder's fields. Omitted time, enabled and
// repeatDaily keep their current values.
func (handler *Handler) UpdateReminder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, messageInvalidInput)
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	current, ok := handler.state.Reminder(id)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}

	updated := models.HealthReminder{
		ID:          id,
		Title:       input.Title,
		Time:        current.Time,
		Enabled:     current.Enabled,
		RepeatDaily: current.RepeatDaily,
		Type:        input.Type,
	}
	if input.Time != nil {
		updated.Time = *input.Time
	}
	if input.Enabled != nil {
		updated.Enabled = *input.Enabled
	}
	if input.RepeatDaily != nil {
		updated.RepeatDaily = *input.RepeatDaily
	}

	if _, err := handler.state.UpdateReminder(updated); err != nil {
		return handler.stateError(c, err)
	}
	stored, _ := handler.state.Reminder(id)
	return c.JSON(newReminderView(stored, handler.now(), handler.location))
}

func (handler *Handler) ToggleReminder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	reminder, found, err := handler.state.ToggleReminder(id)
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	return c.JSON(newReminderView(reminder, handler.now(), handler.location))
}

func (handler *Handler) DeleteReminder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	err = handler.state.DeleteReminder(id)
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
