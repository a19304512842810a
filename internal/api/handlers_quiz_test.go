package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/catalog"
	"github.com/terraincognita07/medlifequest/internal/kv"
	"github.com/terraincognita07/medlifequest/internal/services"
)

func correctIndexFor(t *testing.T, questionID uuid.UUID) int {
	t.Helper()
	for _, question := range catalog.AllQuizQuestions() {
		if question.ID == questionID {
			return question.CorrectAnswerIndex
		}
	}
	t.Fatalf("question %s not in catalog", questionID)
	return -1
}

func TestQuizFlowThroughAPI(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, kv.NewMemoryStore())

	response, raw := doJSON(t, app, http.MethodPost, "/api/quiz", nil)
	expectStatus(t, response, raw, http.StatusCreated)
	quiz := decodeBody[quizView](t, raw)
	if quiz.Total != 8 || quiz.CurrentIndex != 0 || quiz.Question == nil {
		t.Fatalf("unexpected new quiz %#v", quiz)
	}
	if quiz.Question.CorrectAnswerIndex != nil || quiz.Question.Explanation != "" {
		t.Fatal("expected answer key hidden before answering")
	}

	base := "/api/quiz/" + quiz.ID.String()

	response, raw = doJSON(t, app, http.MethodPost, base+"/next", nil)
	expectStatus(t, response, raw, http.StatusOK)
	if view := decodeBody[quizView](t, raw); view.CurrentIndex != 0 {
		t.Fatalf("expected next before answering to be a no-op, got index %d", view.CurrentIndex)
	}

	for step := 0; step < quiz.Total; step++ {
		response, raw = doJSON(t, app, http.MethodGet, base, nil)
		expectStatus(t, response, raw, http.StatusOK)
		current := decodeBody[quizView](t, raw)

		answer := correctIndexFor(t, current.Question.ID)
		if step >= 6 {
			answer = (answer + 1) % len(current.Question.Options)
		}

		response, raw = doJSON(t, app, http.MethodPost, base+"/answer", map[string]int{"index": answer})
		expectStatus(t, response, raw, http.StatusOK)
		answered := decodeBody[quizView](t, raw)
		if !answered.HasAnswered || answered.Question.CorrectAnswerIndex == nil || answered.IsCorrect == nil {
			t.Fatalf("expected answer key revealed after answering, got %#v", answered)
		}
		if *answered.IsCorrect != (step < 6) {
			t.Fatalf("step %d: unexpected correctness %v", step, *answered.IsCorrect)
		}

		response, raw = doJSON(t, app, http.MethodPost, base+"/next", nil)
		expectStatus(t, response, raw, http.StatusOK)
	}

	final := decodeBody[quizView](t, raw)
	if !final.IsComplete || final.Result == nil {
		t.Fatalf("expected completed quiz with result, got %#v", final)
	}
	if final.Result.Score != 6 || final.Result.Percentage != 75 || final.Result.Tier != services.QuizTierGreat {
		t.Fatalf("unexpected result %#v", final.Result)
	}

	response, raw = doJSON(t, app, http.MethodPost, base+"/restart", nil)
	expectStatus(t, response, raw, http.StatusOK)
	if restarted := decodeBody[quizView](t, raw); restarted.IsComplete || restarted.Score != 0 || restarted.Result != nil {
		t.Fatalf("expected fresh quiz after restart, got %#v", restarted)
	}

	response, raw = doJSON(t, app, http.MethodDelete, base, nil)
	expectStatus(t, response, raw, http.StatusNoContent)
	response, raw = doJSON(t, app, http.MethodGet, base, nil)
	expectStatus(t, response, raw, http.StatusNotFound)
}

func TestQuizErrors(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, kv.NewMemoryStore())

	response, raw := doJSON(t, app, http.MethodGet, "/api/quiz/"+uuid.New().String(), nil)
	expectStatus(t, response, raw, http.StatusNotFound)

	response, raw = doJSON(t, app, http.MethodGet, "/api/quiz/bogus", nil)
	expectStatus(t, response, raw, http.StatusBadRequest)

	response, raw = doJSON(t, app, http.MethodPost, "/api/quiz", nil)
	expectStatus(t, response, raw, http.StatusCreated)
	quiz := decodeBody[quizView](t, raw)

	response, raw = doJSON(t, app, http.MethodPost, "/api/quiz/"+quiz.ID.String()+"/answer", map[string]string{})
	expectStatus(t, response, raw, http.StatusBadRequest)
}

func TestQuizSessionsAreCapped(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, kv.NewMemoryStore())

	response, raw := doJSON(t, app, http.MethodPost, "/api/quiz", nil)
	expectStatus(t, response, raw, http.StatusCreated)
	oldest := decodeBody[quizView](t, raw)

	for index := 0; index < maxQuizSessions; index++ {
		response, raw = doJSON(t, app, http.MethodPost, "/api/quiz", nil)
		expectStatus(t, response, raw, http.StatusCreated)
	}

	response, raw = doJSON(t, app, http.MethodGet, "/api/quiz/"+oldest.ID.String(), nil)
	expectStatus(t, response, raw, http.StatusNotFound)
}
