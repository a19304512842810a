// Package catalog holds the static, read-only content of the app: health tips,
// per-category advice, quiz questions and color themes.
//
// Accessors return fresh copies so callers can never mutate the tables.
package catalog

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/models"
)

var contentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://medlifequest.app/catalog"))

// contentID derives a stable identifier so the same authored entry keeps its id
// across calls and process restarts.
func contentID(kind string, key string) uuid.UUID {
	return uuid.NewSHA1(contentNamespace, []byte(kind+":"+key))
}

// Catalog is the read-only view of the content tables consumed by the services.
type Catalog struct{}

func New() Catalog {
	return Catalog{}
}

func (Catalog) AllTips() []models.HealthTip {
	return AllTips()
}

func (Catalog) AdviceFor(category models.SymptomCategory) string {
	return AdviceFor(category)
}

func (Catalog) AllQuizQuestions() []models.QuizQuestion {
	return AllQuizQuestions()
}
