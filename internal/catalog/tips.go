package catalog

import "github.com/terraincognita07/medlifequest/internal/models"

type tipEntry struct {
	title    string
	content  string
	category models.TipCategory
	related  []models.SymptomCategory
}

var tipTable = []tipEntry{
	{
		title:    "Stay Hydrated",
		content:  "Drinking adequate water throughout the day helps maintain body temperature, transport nutrients, and flush out toxins. Aim for 8 glasses daily.",
		category: models.TipHydration,
		related:  []models.SymptomCategory{models.CategoryHeadache, models.CategoryFatigue, models.CategorySkin},
	},
	{
		title:    "Regular Exercise",
		content:  "Physical activity for at least 30 minutes most days can boost energy, improve mood, and strengthen your immune system.",
		category: models.TipExercise,
		related:  []models.SymptomCategory{models.CategoryFatigue, models.CategoryMental, models.CategoryMusculoskeletal},
	},
	{
		title:    "Quality Sleep",
		content:  "Aim for 7-9 hours of sleep each night. Establish a regular sleep schedule and create a relaxing bedtime routine.",
		category: models.TipSleep,
		related:  []models.SymptomCategory{models.CategoryFatigue, models.CategoryHeadache, models.CategoryMental},
	},
	{
		title:    "Balanced Nutrition",
		content:  "Eat a variety of fruits, vegetables, whole grains, and lean proteins. Limit processed foods and excess sugar.",
		category: models.TipNutrition,
		related:  []models.SymptomCategory{models.CategoryDigestive, models.CategoryFatigue, models.CategorySkin},
	},
	{
		title:    "Stress Management",
		content:  "Practice relaxation techniques like deep breathing, meditation, or yoga. Take regular breaks and engage in activities you enjoy.",
		category: models.TipStress,
		related:  []models.SymptomCategory{models.CategoryMental, models.CategoryHeadache, models.CategoryDigestive},
	},
	{
		title:    "Hand Hygiene",
		content:  "Wash your hands frequently with soap and water for at least 20 seconds to prevent the spread of infections.",
		category: models.TipPrevention,
		related:  []models.SymptomCategory{models.CategoryRespiratory, models.CategoryDigestive},
	},
	{
		title:    "Posture Awareness",
		content:  "Maintain good posture while sitting and standing. Take breaks to stretch if you sit for long periods.",
		category: models.TipPrevention,
		related:  []models.SymptomCategory{models.CategoryMusculoskeletal, models.CategoryHeadache},
	},
	{
		title:    "Skin Protection",
		content:  "Use sunscreen daily, moisturize regularly, and stay hydrated to maintain healthy skin.",
		category: models.TipPrevention,
		related:  []models.SymptomCategory{models.CategorySkin},
	},
	{
		title:    "Breathing Exercises",
		content:  "Practice deep breathing exercises to reduce stress, improve oxygen flow, and promote relaxation.",
		category: models.TipStress,
		related:  []models.SymptomCategory{models.CategoryRespiratory, models.CategoryMental, models.CategoryHeadache},
	},
	{
		title:    "Healthy Eating Schedule",
		content:  "Eat regular meals at consistent times. Don't skip breakfast, and avoid heavy meals close to bedtime.",
		category: models.TipNutrition,
		related:  []models.SymptomCategory{models.CategoryDigestive, models.CategoryFatigue},
	},
	{
		title:    "Social Connections",
		content:  "Maintain strong social relationships. Regular interaction with friends and family supports mental and emotional health.",
		category: models.TipStress,
		related:  []models.SymptomCategory{models.CategoryMental},
	},
	{
		title:    "Limit Screen Time",
		content:  "Reduce screen time before bed to improve sleep quality. Take regular breaks from screens during the day.",
		category: models.TipPrevention,
		related:  []models.SymptomCategory{models.CategoryHeadache, models.CategoryFatigue, models.CategoryMental},
	},
}

// AllTips returns the 12 authored tips in their authored order.
func AllTips() []models.HealthTip {
	tips := make([]models.HealthTip, 0, len(tipTable))
	for _, entry := range tipTable {
		tips = append(tips, models.HealthTip{
			ID:              contentID("tip", entry.title),
			Title:           entry.title,
			Content:         entry.content,
			Category:        entry.category,
			RelatedSymptoms: append([]models.SymptomCategory(nil), entry.related...),
		})
	}
	return tips
}
