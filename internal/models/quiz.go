package models

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrQuizTooFewOptions    = errors.New("quiz question needs at least two options")
	ErrQuizAnswerOutOfRange = errors.New("quiz correct answer index out of range")
	ErrQuizPromptRequired   = errors.New("quiz question prompt is required")
)

const MinQuizOptions = 2

type QuizQuestion struct {
	ID                 uuid.UUID       `json:"id"`
	Prompt             string          `json:"prompt"`
	Options            []string        `json:"options"`
	CorrectAnswerIndex int             `json:"correctAnswerIndex"`
	Explanation        string          `json:"explanation"`
	Category           SymptomCategory `json:"category"`
}

func (question QuizQuestion) Validate() error {
	if question.Prompt == "" {
		return ErrQuizPromptRequired
	}
	if len(question.Options) < MinQuizOptions {
		return ErrQuizTooFewOptions
	}
	if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= len(question.Options) {
		return ErrQuizAnswerOutOfRange
	}
	return nil
}

func (question QuizQuestion) IsCorrect(index int) bool {
	return index == question.CorrectAnswerIndex
}
