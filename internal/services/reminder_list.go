package services

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/models"
)

// reminderList keeps reminders in insertion order with an id index, so
// replace-by-id keeps the entry's position.
type reminderList struct {
	items []models.HealthReminder
	index map[uuid.UUID]int
}

func (list *reminderList) add(reminder models.HealthReminder) bool {
	if list.index == nil {
		list.index = make(map[uuid.UUID]int)
	}
	if _, exists := list.index[reminder.ID]; exists {
		return false
	}
	list.index[reminder.ID] = len(list.items)
	list.items = append(list.items, reminder)
	return true
}

func (list *reminderList) get(id uuid.UUID) (models.HealthReminder, bool) {
	position, ok := list.index[id]
	if !ok {
		return models.HealthReminder{}, false
	}
	return list.items[position], true
}

func (list *reminderList) replace(reminder models.HealthReminder) bool {
	position, ok := list.index[reminder.ID]
	if !ok {
		return false
	}
	updated := append([]models.HealthReminder(nil), list.items...)
	updated[position] = reminder
	list.items = updated
	return true
}

func (list *reminderList) remove(id uuid.UUID) bool {
	position, ok := list.index[id]
	if !ok {
		return false
	}

	remaining := make([]models.HealthReminder, 0, len(list.items)-1)
	remaining = append(remaining, list.items[:position]...)
	remaining = append(remaining, list.items[position+1:]...)
	list.items = remaining

	delete(list.index, id)
	for offset, reminder := range list.items[position:] {
		list.index[reminder.ID] = position + offset
	}
	return true
}

func (list *reminderList) list() []models.HealthReminder {
	return append([]models.HealthReminder(nil), list.items...)
}
