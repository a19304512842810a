package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/medlifequest/internal/models"
	"github.com/terraincognita07/medlifequest/internal/services"
)

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	handler.mu.Lock()
	symptoms := handler.state.Symptoms()
	handler.mu.Unlock()

	return c.JSON(symptoms)
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	input := symptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, messageInvalidInput)
	}

	request := services.SymptomInput{
		Title:       input.Title,
		Severity:    input.Severity,
		Description: input.Description,
		Category:    input.Category,
	}
	if input.LoggedAt != nil {
		request.LoggedAt = *input.LoggedAt
	}

	handler.mu.Lock()
	symptom, err := handler.state.LogSymptom(request)
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	err = handler.state.DeleteSymptom(id)
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type adviceView struct {
	Symptom models.Symptom `json:"symptom"`
	Advice  string         `json:"advice"`
}

func (handler *Handler) GetSymptomAdvice(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	symptom, ok := handler.state.Symptom(id)
	handler.mu.Unlock()

	if !ok {
		return apiError(c, fiber.StatusNotFound, "symptom not found")
	}
	return c.JSON(adviceView{
		Symptom: symptom,
		Advice:  handler.recommender.AdviceFor(symptom),
	})
}

// GetRecommendedTips draws a fresh recommendation for the current symptom
// list. Two calls may return different tips.
func (handler *Handler) GetRecommendedTips(c *fiber.Ctx) error {
	handler.mu.Lock()
	tips := handler.recommender.RecommendTips(handler.state.Symptoms())
	handler.mu.Unlock()

	return c.JSON(tips)
}
