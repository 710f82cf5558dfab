package di

import (
	"log/slog"
	"time"

	"podcast-recommender/internal/adapter/artifactstore"
	"podcast-recommender/internal/adapter/genai"
	"podcast-recommender/internal/domain"
	"podcast-recommender/internal/infra/config"
	"podcast-recommender/internal/infra/httpclient"
	"podcast-recommender/internal/usecase"
)

// ApplicationComponents holds all wired dependencies for the application.
type ApplicationComponents struct {
	Artifacts *artifactstore.Store
	Generator domain.TextGenerator

	AssignUsecase    usecase.AssignSegmentUsecase
	RecommendUsecase usecase.RecommendUsecase
}

// NewApplicationComponents wires all dependencies from config. The artifact
// store and the generative client are created once here and shared read-only
// across requests.
func NewApplicationComponents(cfg *config.Config, log *slog.Logger) *ApplicationComponents {
	// Trained artifacts (best-effort; the gate decides the model path)
	store := artifactstore.Load(cfg.ModelDir, log)

	// Generative client. Without an API key the client stays nil and the
	// client-absent tier answers every request.
	var generator domain.TextGenerator
	if cfg.Anthropic.APIKey != "" {
		genHTTP := httpclient.NewPooledClient(time.Duration(cfg.Anthropic.Timeout) * time.Second)
		generator = genai.NewClient(
			cfg.Anthropic.BaseURL,
			cfg.Anthropic.Model,
			cfg.Anthropic.APIKey,
			cfg.Anthropic.RPS,
			genHTTP,
			log,
		)
		log.Info("generative client initialized", slog.String("model", cfg.Anthropic.Model))
	} else {
		log.Warn("ANTHROPIC_API_KEY not set, generative tier disabled")
	}

	// Usecases
	assignUsecase := usecase.NewAssignSegmentUsecase(store, log)
	promptBuilder := usecase.NewSurveyPromptBuilder()
	recommendUsecase := usecase.NewRecommendUsecase(
		generator,
		promptBuilder,
		usecase.NewOutputParser(),
		cfg.Anthropic.MaxTokens,
		domain.ParseLinkStrategy(cfg.LinkStrategy),
		log,
		usecase.WithCacheConfig(cfg.Cache.Size, time.Duration(cfg.Cache.TTL)*time.Minute),
	)

	return &ApplicationComponents{
		Artifacts:        store,
		Generator:        generator,
		AssignUsecase:    assignUsecase,
		RecommendUsecase: recommendUsecase,
	}
}
