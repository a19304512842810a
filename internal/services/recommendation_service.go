package services

import (
	"github.com/terraincognita07/medlifequest/internal/models"
	"github.com/terraincognita07/medlifequest/internal/random"
)

const MaxRecommendedTips = 3

type TipCatalog interface {
	AllTips() []models.HealthTip
	AdviceFor(category models.SymptomCategory) string
}

type RecommendationService struct {
	catalog TipCatalog
	random  random.Source
}

func NewRecommendationService(catalog TipCatalog, source random.Source) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		random:  source,
	}
}

// CandidateTips returns the tips eligible for recommendation: those sharing a
// category with any logged symptom, or the whole catalog when there are no
// symptoms or nothing matches.
func (service *RecommendationService) CandidateTips(symptoms []models.Symptom) []models.HealthTip {
	allTips := service.catalog.AllTips()
	if len(symptoms) == 0 {
		return allTips
	}

	categories := make(map[models.SymptomCategory]struct{}, len(symptoms))
	for _, symptom := range symptoms {
		categories[symptom.Category] = struct{}{}
	}

	relevant := make([]models.HealthTip, 0, len(allTips))
	for _, tip := range allTips {
		if tip.RelatesToAny(categories) {
			relevant = append(relevant, tip)
		}
	}
	if len(relevant) == 0 {
		return allTips
	}
	return relevant
}

// RecommendTips draws up to MaxRecommendedTips distinct tips uniformly from the
// candidate set. The result is intentionally non-deterministic.
func (service *RecommendationService) RecommendTips(symptoms []models.Symptom) []models.HealthTip {
	return random.Sample(service.random, service.CandidateTips(symptoms), MaxRecommendedTips)
}

func (service *RecommendationService) AdviceFor(symptom models.Symptom) string {
	return service.catalog.AdviceFor(symptom.Category)
}

func (service *RecommendationService) AdviceForCategory(category models.SymptomCategory) string {
	return service.catalog.AdviceFor(category)
}
