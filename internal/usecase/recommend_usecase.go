package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"podcast-recommender/internal/domain"
)

// RecommendUsecase produces the recommendation list for a request. It never
// returns an error: every failure of the generative tier degrades to one of
// the fallback tiers, so the caller always receives a valid list.
type RecommendUsecase interface {
	Generate(ctx context.Context, prefs domain.PreferencesRecord, profile domain.SegmentProfile) []domain.RecommendationItem
}

type recommendUsecase struct {
	generator     domain.TextGenerator
	promptBuilder PromptBuilder
	parser        OutputParser
	maxTokens     int
	linkStrategy  domain.LinkStrategy
	logger        *slog.Logger

	cache *expirable.LRU[string, []domain.RecommendationItem]
	group singleflight.Group
}

// RecommendOption customizes the usecase.
type RecommendOption func(*recommendUsecase)

// WithCacheConfig enables the response cache. Size 0 disables caching.
func WithCacheConfig(size int, ttl time.Duration) RecommendOption {
	return func(u *recommendUsecase) {
		if size > 0 {
			u.cache = expirable.NewLRU[string, []domain.RecommendationItem](size, nil, ttl)
		}
	}
}

// NewRecommendUsecase wires the orchestrator. A nil generator means the
// client-absent tier answers every request.
func NewRecommendUsecase(
	generator domain.TextGenerator,
	promptBuilder PromptBuilder,
	parser OutputParser,
	maxTokens int,
	linkStrategy domain.LinkStrategy,
	logger *slog.Logger,
	opts ...RecommendOption,
) RecommendUsecase {
	u := &recommendUsecase{
		generator:     generator,
		promptBuilder: promptBuilder,
		parser:        parser,
		maxTokens:     maxTokens,
		linkStrategy:  linkStrategy,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// tierError tags a failure with the fallback tier that should answer for it.
type tierError struct {
	tier FallbackTier
	err  error
}

func (e *tierError) Error() string { return e.err.Error() }
func (e *tierError) Unwrap() error { return e.err }

func (u *recommendUsecase) Generate(ctx context.Context, prefs domain.PreferencesRecord, profile domain.SegmentProfile) []domain.RecommendationItem {
	if u.generator == nil {
		u.logger.Info("generative client not configured, using templated recommendations",
			slog.String("tier", TierClientAbsent.String()))
		return TierClientAbsent.Recommendations(prefs)
	}

	prompt, err := u.promptBuilder.Build(PromptInput{Prefs: prefs, Profile: profile})
	if err != nil {
		u.logger.Error("prompt rendering failed",
			slog.String("tier", TierCallFailure.String()),
			slog.String("error", err.Error()))
		return TierCallFailure.Recommendations(prefs)
	}

	key := cacheKey(prompt)
	if u.cache != nil {
		if items, ok := u.cache.Get(key); ok {
			return cloneItems(items)
		}
	}

	// Identical concurrent requests share one generation; the fallback
	// payloads stay per-request so personalization uses the caller's prefs.
	result, err, _ := u.group.Do(key, func() (any, error) {
		return u.generateOnce(ctx, prompt)
	})
	if err != nil {
		tier := TierCallFailure
		var te *tierError
		if errors.As(err, &te) {
			tier = te.tier
		}
		u.logger.Warn("generation degraded to fallback",
			slog.String("tier", tier.String()),
			slog.String("error", err.Error()))
		return tier.Recommendations(prefs)
	}

	items := result.([]domain.RecommendationItem)
	if u.cache != nil {
		u.cache.Add(key, items)
	}
	return cloneItems(items)
}

// generateOnce performs the single bounded service call and parse. No retry:
// one attempt per tier is the contract.
func (u *recommendUsecase) generateOnce(ctx context.Context, prompt string) ([]domain.RecommendationItem, error) {
	genID := uuid.NewString()

	resp, err := u.generator.Generate(ctx, prompt, u.maxTokens)
	if err != nil {
		return nil, &tierError{tier: TierCallFailure, err: err}
	}

	items, err := u.parser.Parse(resp.Text)
	if err != nil {
		u.logger.Warn("could not parse generation output",
			slog.String("generation_id", genID),
			slog.Int("response_length", len(resp.Text)))
		return nil, &tierError{tier: TierParseFailure, err: err}
	}

	domain.FillMissingLinks(items, u.linkStrategy)
	u.logger.Info("generated recommendations",
		slog.String("generation_id", genID),
		slog.String("model", u.generator.Version()),
		slog.Int("count", len(items)))
	return items, nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func cloneItems(items []domain.RecommendationItem) []domain.RecommendationItem {
	out := make([]domain.RecommendationItem, len(items))
	copy(out, items)
	return out
}
