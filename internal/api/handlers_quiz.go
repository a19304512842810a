package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/models"
	"github.com/terraincognita07/medlifequest/internal/services"
)

type quizQuestionView struct {
	ID                 uuid.UUID              `json:"id"`
	Prompt             string                 `json:"prompt"`
	Options            []string               `json:"options"`
	Category           models.SymptomCategory `json:"category"`
	CorrectAnswerIndex *int                   `json:"correctAnswerIndex,omitempty"`
	Explanation        string                 `json:"explanation,omitempty"`
}

type quizView struct {
	ID             uuid.UUID            `json:"id"`
	CurrentIndex   int                  `json:"currentIndex"`
	Total          int                  `json:"total"`
	Score          int                  `json:"score"`
	Progress       float64              `json:"progress"`
	HasAnswered    bool                 `json:"hasAnswered"`
	SelectedAnswer *int                 `json:"selectedAnswer,omitempty"`
	IsCorrect      *bool                `json:"isCorrect,omitempty"`
	IsComplete     bool                 `json:"isComplete"`
	Question       *quizQuestionView    `json:"question,omitempty"`
	Result         *services.QuizResult `json:"result,omitempty"`
}

// newQuizView hides the answer key and explanation until the current question
// has been answered.
func newQuizView(id uuid.UUID, session *services.QuizSession) quizView {
	view := quizView{
		ID:           id,
		CurrentIndex: session.CurrentIndex(),
		Total:        len(session.Questions()),
		Score:        session.Score(),
		Progress:     session.Progress(),
		HasAnswered:  session.HasAnswered(),
		IsComplete:   session.IsComplete(),
	}

	question, ok := session.CurrentQuestion()
	if ok {
		view.Question = &quizQuestionView{
			ID:       question.ID,
			Prompt:   question.Prompt,
			Options:  question.Options,
			Category: question.Category,
		}
	}

	if selected, answered := session.SelectedAnswer(); answered && ok {
		correctIndex := question.CorrectAnswerIndex
		correct := question.IsCorrect(selected)
		view.SelectedAnswer = &selected
		view.IsCorrect = &correct
		view.Question.CorrectAnswerIndex = &correctIndex
		view.Question.Explanation = question.Explanation
	}

	if view.IsComplete {
		result := session.Result()
		view.Result = &result
	}
	return view
}

func (handler *Handler) StartQuiz(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	if len(handler.quizOrder) >= maxQuizSessions {
		oldest := handler.quizOrder[0]
		handler.quizOrder = handler.quizOrder[1:]
		delete(handler.quizzes, oldest)
	}

	id := uuid.New()
	session := services.NewQuizSession(handler.catalog, handler.random)
	handler.quizzes[id] = session
	handler.quizOrder = append(handler.quizOrder, id)

	return c.Status(fiber.StatusCreated).JSON(newQuizView(id, session))
}

// withQuiz runs action on the session named by the :id param, under the
// handler lock, and responds with the resulting view.
func (handler *Handler) withQuiz(c *fiber.Ctx, action func(*services.QuizSession)) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	session, ok := handler.quizzes[id]
	if !ok {
		return apiError(c, fiber.StatusNotFound, "quiz not found")
	}
	if action != nil {
		action(session)
	}
	return c.JSON(newQuizView(id, session))
}

func (handler *Handler) GetQuiz(c *fiber.Ctx) error {
	return handler.withQuiz(c, nil)
}

func (handler *Handler) AnswerQuiz(c *fiber.Ctx) error {
	input := answerInput{}
	if err := c.BodyParser(&input); err != nil || input.Index == nil {
		return apiError(c, fiber.StatusBadRequest, "answer index is required")
	}

	return handler.withQuiz(c, func(session *services.QuizSession) {
		session.SelectAnswer(*input.Index)
	})
}

func (handler *Handler) AdvanceQuiz(c *fiber.Ctx) error {
	return handler.withQuiz(c, func(session *services.QuizSession) {
		session.Advance()
	})
}

func (handler *Handler) RestartQuiz(c *fiber.Ctx) error {
	return handler.withQuiz(c, func(session *services.QuizSession) {
		session.Restart()
	})
}

func (handler *Handler) DeleteQuiz(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	if _, ok := handler.quizzes[id]; !ok {
		return apiError(c, fiber.StatusNotFound, "quiz not found")
	}
	delete(handler.quizzes, id)
	for index, candidate := range handler.quizOrder {
		if candidate == id {
			handler.quizOrder = append(handler.quizOrder[:index], handler.quizOrder[index+1:]...)
			break
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
