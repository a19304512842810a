package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	api.Get("/profile", handler.GetProfile)
	api.Put("/profile/theme", handler.SelectTheme)
	api.Post("/onboarding", handler.CompleteOnboarding)
	api.Delete("/account", handler.ResetAccount)

	content := api.Group("/catalog")
	content.Get("/categories", handler.GetCategories)
	content.Get("/tips", handler.GetCatalogTips)
	content.Get("/themes", handler.GetThemes)

	symptoms := api.Group("/symptoms")
	symptoms.Get("", handler.GetSymptoms)
	symptoms.Post("", handler.CreateSymptom)
	symptoms.Delete("/:id", handler.DeleteSymptom)
	symptoms.Get("/:id/advice", handler.GetSymptomAdvice)

	api.Get("/tips", handler.GetRecommendedTips)

	reminders := api.Group("/reminders")
	reminders.Get("", handler.GetReminders)
	reminders.Post("", handler.CreateReminder)
	reminders.Put("/:id", handler.UpdateReminder)
	reminders.Post("/:id/toggle", handler.ToggleReminder)
	reminders.Delete("/:id", handler.DeleteReminder)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	quiz := api.Group("/quiz")
	quiz.Post("", handler.StartQuiz)
	quiz.Get("/:id", handler.GetQuiz)
	quiz.Post("/:id/answer", handler.AnswerQuiz)
	quiz.Post("/:id/next", handler.AdvanceQuiz)
	quiz.Post("/:id/restart", handler.RestartQuiz)
	quiz.Delete("/:id", handler.DeleteQuiz)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
