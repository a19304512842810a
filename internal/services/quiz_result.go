package services

type QuizTier string

const (
	QuizTierExcellent    QuizTier = "excellent"
	QuizTierGreat        QuizTier = "great"
	QuizTierGood         QuizTier = "good"
	QuizTierPracticeMore QuizTier = "practice more"
)

var quizTierMessages = map[QuizTier]string{
	QuizTierExcellent:    "Excellent! You're a health expert!",
	QuizTierGreat:        "Great job! You know your health facts!",
	QuizTierGood:         "Good effort! Keep learning!",
	QuizTierPracticeMore: "Keep practicing! Health knowledge is power!",
}

func (tier QuizTier) Message() string {
	return quizTierMessages[tier]
}

type QuizResult struct {
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Percentage float64  `json:"percentage"`
	Tier       QuizTier `json:"tier"`
	Message    string   `json:"message"`
}

// ScoreQuiz buckets a score into [90,100] excellent, [70,90) great,
// [50,70) good and [0,50) practice more. An empty quiz counts as 0%.
func ScoreQuiz(score int, total int) QuizResult {
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) * 100 / float64(total)
	}

	tier := QuizTierPracticeMore
	switch {
	case percentage >= 90:
		tier = QuizTierExcellent
	case percentage >= 70:
		tier = QuizTierGreat
	case percentage >= 50:
		tier = QuizTierGood
	}

	return QuizResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Tier:       tier,
		Message:    tier.Message(),
	}
}
