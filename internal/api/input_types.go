package api

import (
	"time"

	"github.com/terraincognita07/medlifequest/internal/models"
)

type onboardingInput struct {
	Name string `json:"name"`
}

type themeInput struct {
	Theme string `json:"theme"`
}

type symptomInput struct {
	Title       string                 `json:"title"`
	Severity    models.Severity        `json:"severity"`
	Description string                 `json:"description"`
	Category    models.SymptomCategory `json:"category"`
	LoggedAt    *time.Time             `json:"loggedAt"`
}

type reminderInput struct {
	Title       string              `json:"title"`
	Time        *models.TimeOfDay   `json:"time"`
	Enabled     *bool               `json:"enabled"`
	RepeatDaily *bool               `json:"repeatDaily"`
	Type        models.ReminderType `json:"type"`
}

type answerInput struct {
	Index *int `json:"index"`
}
