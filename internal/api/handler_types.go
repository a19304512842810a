package api

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/medlifequest/internal/catalog"
	"github.com/terraincognita07/medlifequest/internal/kv"
	"github.com/terraincognita07/medlifequest/internal/random"
	"github.com/terraincognita07/medlifequest/internal/services"
)

const maxQuizSessions = 32

// Handler adapts the core to HTTP. Every core call runs under mu: the state
// service and quiz sessions have a single owner, and fiber serves requests
// concurrently.
type Handler struct {
	mu sync.Mutex

	catalog     catalog.Catalog
	state       *services.UserStateService
	recommender *services.RecommendationService
	exporter    *services.ExportService
	random      random.Source
	quizzes     map[uuid.UUID]*services.QuizSession
	quizOrder   []uuid.UUID

	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

type Dependencies struct {
	Store    kv.Store
	Logger   *slog.Logger
	Random   random.Source
	Location *time.Location
	Clock    func() time.Time
}

func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("state store is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	location := deps.Location
	if location == nil {
		location = time.UTC
	}
	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	source := deps.Random
	if source == nil {
		seeded, err := random.New()
		if err != nil {
			return nil, err
		}
		source = seeded
	}

	content := catalog.New()
	return &Handler{
		catalog:     content,
		state:       services.NewUserStateService(deps.Store, logger, services.WithClock(now)),
		recommender: services.NewRecommendationService(content, source),
		exporter:    services.NewExportService(location, now),
		random:      source,
		quizzes:     make(map[uuid.UUID]*services.QuizSession),
		logger:      logger,
		location:    location,
		now:         now,
	}, nil
}
