package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/medlifequest/internal/catalog"
	"github.com/terraincognita07/medlifequest/internal/models"
)

type labelView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

type categoriesView struct {
	SymptomCategories []labelView `json:"symptomCategories"`
	Severities        []labelView `json:"severities"`
	TipCategories     []labelView `json:"tipCategories"`
	ReminderTypes     []labelView `json:"reminderTypes"`
}

func buildCategoriesView() categoriesView {
	view := categoriesView{}
	for _, category := range models.AllSymptomCategories() {
		view.SymptomCategories = append(view.SymptomCategories, labelView{ID: string(category), Label: category.Label(), Icon: category.Icon()})
	}
	for _, severity := range models.AllSeverities() {
		view.Severities = append(view.Severities, labelView{ID: string(severity), Label: severity.Label(), Color: severity.Color()})
	}
	for _, category := range models.AllTipCategories() {
		view.TipCategories = append(view.TipCategories, labelView{ID: string(category), Label: category.Label(), Icon: category.Icon()})
	}
	for _, reminderType := range models.AllReminderTypes() {
		view.ReminderTypes = append(view.ReminderTypes, labelView{ID: string(reminderType), Label: reminderType.Label(), Icon: reminderType.Icon()})
	}
	return view
}

func (handler *Handler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(buildCategoriesView())
}

func (handler *Handler) GetCatalogTips(c *fiber.Ctx) error {
	return c.JSON(handler.catalog.AllTips())
}

func (handler *Handler) GetThemes(c *fiber.Ctx) error {
	return c.JSON(catalog.Themes())
}
