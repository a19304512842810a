package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/medlifequest/internal/catalog"
	"github.com/terraincognita07/medlifequest/internal/models"
)

type profileView struct {
	models.UserProfile
	Theme models.Theme `json:"theme"`
}

func newProfileView(profile models.UserProfile) profileView {
	return profileView{
		UserProfile: profile,
		Theme:       catalog.ThemeByID(profile.SelectedTheme),
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	handler.mu.Lock()
	profile := handler.state.Profile()
	handler.mu.Unlock()

	return c.JSON(newProfileView(profile))
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	input := onboardingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, messageInvalidInput)
	}

	handler.mu.Lock()
	err := handler.state.CompleteOnboarding(input.Name)
	profile := handler.state.Profile()
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.JSON(newProfileView(profile))
}

func (handler *Handler) SelectTheme(c *fiber.Ctx) error {
	input := themeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, messageInvalidInput)
	}

	handler.mu.Lock()
	err := handler.state.SelectTheme(input.Theme)
	profile := handler.state.Profile()
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.JSON(newProfileView(profile))
}

// ResetAccount wipes all user state and drops any open quiz sessions.
func (handler *Handler) ResetAccount(c *fiber.Ctx) error {
	handler.mu.Lock()
	err := handler.state.ResetAccount()
	clear(handler.quizzes)
	handler.quizOrder = nil
	handler.mu.Unlock()

	if err != nil {
		return handler.stateError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
