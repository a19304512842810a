package services

import (
	"github.com/terraincognita07/medlifequest/internal/models"
	"github.com/terraincognita07/medlifequest/internal/random"
)

type QuizQuestionSource interface {
	AllQuizQuestions() []models.QuizQuestion
}

// QuizSession drives one run through a shuffled question set. It is not safe
// for concurrent use; callers own a session exclusively.
type QuizSession struct {
	source QuizQuestionSource
	random random.Source

	questions      []models.QuizQuestion
	currentIndex   int
	score          int
	selectedAnswer int
	hasAnswered    bool
	isComplete     bool
}

// NewQuizSession returns a session already loaded with a fresh shuffle.
func NewQuizSession(source QuizQuestionSource, randomSource random.Source) *QuizSession {
	session := &QuizSession{
		source: source,
		random: randomSource,
	}
	session.Load()
	return session
}

// Load reshuffles the questions and resets all progress. Valid in any state.
func (session *QuizSession) Load() {
	questions := session.source.AllQuizQuestions()
	random.Shuffle(session.random, questions)

	session.questions = questions
	session.currentIndex = 0
	session.score = 0
	session.selectedAnswer = 0
	session.hasAnswered = false
	session.isComplete = false
}

func (session *QuizSession) Restart() {
	session.Load()
}

// SelectAnswer records the first answer for the current question. Later calls
// for the same question are ignored.
func (session *QuizSession) SelectAnswer(index int) {
	if session.hasAnswered || session.currentIndex >= len(session.questions) {
		return
	}

	session.selectedAnswer = index
	session.hasAnswered = true
	if session.questions[session.currentIndex].IsCorrect(index) {
		session.score++
	}
}

// Advance moves past an answered question, or completes the quiz after the last
// one. Calling it before answering leaves the session unchanged.
func (session *QuizSession) Advance() {
	if !session.hasAnswered || session.isComplete {
		return
	}

	if session.currentIndex < len(session.questions)-1 {
		session.currentIndex++
		session.selectedAnswer = 0
		session.hasAnswered = false
		return
	}
	session.isComplete = true
}

func (session *QuizSession) Questions() []models.QuizQuestion {
	return append([]models.QuizQuestion(nil), session.questions...)
}

func (session *QuizSession) CurrentIndex() int {
	return session.currentIndex
}

func (session *QuizSession) Score() int {
	return session.score
}

func (session *QuizSession) SelectedAnswer() (int, bool) {
	return session.selectedAnswer, session.hasAnswered
}

func (session *QuizSession) HasAnswered() bool {
	return session.hasAnswered
}

func (session *QuizSession) IsComplete() bool {
	return session.isComplete
}

// Progress is (currentIndex+1)/len(questions), or 0 for an empty quiz.
func (session *QuizSession) Progress() float64 {
	if len(session.questions) == 0 {
		return 0
	}
	return float64(session.currentIndex+1) / float64(len(session.questions))
}

func (session *QuizSession) CurrentQuestion() (models.QuizQuestion, bool) {
	if session.currentIndex >= len(session.questions) {
		return models.QuizQuestion{}, false
	}
	return session.questions[session.currentIndex], true
}

func (session *QuizSession) Result() QuizResult {
	return ScoreQuiz(session.score, len(session.questions))
}
