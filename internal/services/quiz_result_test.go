package services

import "testing"

func TestScoreQuizTierBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		score      int
		total      int
		percentage float64
		tier       QuizTier
	}{
		{name: "perfect", score: 8, total: 8, percentage: 100, tier: QuizTierExcellent},
		{name: "exactly ninety", score: 9, total: 10, percentage: 90, tier: QuizTierExcellent},
		{name: "just under ninety", score: 7, total: 8, percentage: 87.5, tier: QuizTierGreat},
		{name: "exactly seventy", score: 7, total: 10, percentage: 70, tier: QuizTierGreat},
		{name: "just under seventy", score: 69, total: 100, percentage: 69, tier: QuizTierGood},
		{name: "exactly fifty", score: 4, total: 8, percentage: 50, tier: QuizTierGood},
		{name: "just under fifty", score: 3, total: 8, percentage: 37.5, tier: QuizTierPracticeMore},
		{name: "zero", score: 0, total: 8, percentage: 0, tier: QuizTierPracticeMore},
		{name: "empty quiz", score: 0, total: 0, percentage: 0, tier: QuizTierPracticeMore},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := ScoreQuiz(testCase.score, testCase.total)
			if result.Percentage != testCase.percentage {
				t.Fatalf("expected percentage %v, got %v", testCase.percentage, result.Percentage)
			}
			if result.Tier != testCase.tier {
				t.Fatalf("expected tier %q, got %q", testCase.tier, result.Tier)
			}
			if result.Message != testCase.tier.Message() || result.Message == "" {
				t.Fatalf("expected message for %q, got %q", testCase.tier, result.Message)
			}
		})
	}
}
