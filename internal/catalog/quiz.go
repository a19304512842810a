package catalog

import "github.com/terraincognita07/medlifequest/internal/models"

var quizTable = []models.QuizQuestion{
	{
		Prompt:             "How much water should an average adult drink per day?",
		Options:            []string{"4 glasses", "8 glasses", "12 glasses", "16 glasses"},
		CorrectAnswerIndex: 1,
		Explanation:        "The general recommendation is about 8 glasses (64 ounces) of water per day, though individual needs may vary based on activity level and climate.",
		Category:           models.CategoryOther,
	},
	{
		Prompt:             "What is the recommended amount of sleep for adults?",
		Options:            []string{"5-6 hours", "7-9 hours", "10-12 hours", "4-5 hours"},
		CorrectAnswerIndex: 1,
		Explanation:        "Most adults need 7-9 hours of quality sleep per night for optimal health and functioning.",
		Category:           models.CategoryFatigue,
	},
	{
		Prompt:             "Which of these is a common trigger for headaches?",
		Options:            []string{"Dehydration", "Regular exercise", "Fresh air", "Adequate sleep"},
		CorrectAnswerIndex: 0,
		Explanation:        "Dehydration is a common headache trigger. Other triggers include stress, lack of sleep, and certain foods.",
		Category:           models.CategoryHeadache,
	},
	{
		Prompt:             "How often should adults engage in moderate physical activity?",
		Options:            []string{"Once a week", "2-3 times per week", "At least 150 minutes per week", "Every day for 2 hours"},
		CorrectAnswerIndex: 2,
		Explanation:        "Health organizations recommend at least 150 minutes of moderate-intensity aerobic activity per week for adults.",
		Category:           models.CategoryMusculoskeletal,
	},
	{
		Prompt:             "What is a healthy resting heart rate for adults?",
		Options:            []string{"40-50 bpm", "60-100 bpm", "110-120 bpm", "130-140 bpm"},
		CorrectAnswerIndex: 1,
		Explanation:        "A normal resting heart rate for adults ranges from 60 to 100 beats per minute. Athletes may have lower rates.",
		Category:           models.CategoryOther,
	},
	{
		Prompt:             "Which nutrient is essential for bone health?",
		Options:            []string{"Vitamin C", "Calcium", "Iron", "Sodium"},
		CorrectAnswerIndex: 1,
		Explanation:        "Calcium is crucial for maintaining strong bones and teeth. Vitamin D also helps with calcium absorption.",
		Category:           models.CategoryMusculoskeletal,
	},
	{
		Prompt:             "What is the best way to manage stress?",
		Options:            []string{"Ignore it", "Regular exercise and relaxation techniques", "Work harder", "Skip meals"},
		CorrectAnswerIndex: 1,
		Explanation:        "Regular exercise, relaxation techniques like meditation, adequate sleep, and social support are effective stress management strategies.",
		Category:           models.CategoryMental,
	},
	{
		Prompt:             "How can you improve digestive health?",
		Options:            []string{"Eat large meals before bed", "Include fiber in your diet", "Drink carbonated drinks", "Skip breakfast"},
		CorrectAnswerIndex: 1,
		Explanation:        "A diet rich in fiber, staying hydrated, regular exercise, and eating smaller, frequent meals can improve digestive health.",
		Category:           models.CategoryDigestive,
	},
}

// AllQuizQuestions returns the 8 authored questions in their authored order.
func AllQuizQuestions() []models.QuizQuestion {
	questions := make([]models.QuizQuestion, 0, len(quizTable))
	for _, entry := range quizTable {
		question := entry
		question.ID = contentID("quiz", entry.Prompt)
		question.Options = append([]string(nil), entry.Options...)
		questions = append(questions, question)
	}
	return questions
}
