package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"podcast-recommender/internal/domain"
	"podcast-recommender/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator scripts the generative service for orchestration tests.
type fakeGenerator struct {
	text  string
	err   error
	calls atomic.Int64
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (*domain.GenerationResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.GenerationResult{Text: f.text, Done: true}, nil
}

func (f *fakeGenerator) Version() string { return "fake-model" }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRecommendUsecase(gen domain.TextGenerator, opts ...usecase.RecommendOption) usecase.RecommendUsecase {
	return usecase.NewRecommendUsecase(
		gen,
		usecase.NewSurveyPromptBuilder(),
		usecase.NewOutputParser(),
		1000,
		domain.LinkByNameAndCreator,
		discardLogger(),
		opts...,
	)
}

func TestRecommendUsecase_Generate_NilClientUsesClientAbsentTier(t *testing.T) {
	uc := newRecommendUsecase(nil)

	items := uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	require.Len(t, items, 2)
	assert.Equal(t, "SmartLess", items[0].Name)
	assert.Equal(t, "Stuff You Should Know", items[1].Name)
}

func TestRecommendUsecase_Generate_SuccessfulGeneration(t *testing.T) {
	gen := &fakeGenerator{text: `Here you go:
[
  {"name": "Acquired", "creator": "Ben Gilbert and David Rosenthal", "link": ""},
  {"name": "Lex Fridman Podcast", "creator": "Lex Fridman", "link": "https://lexfridman.com/podcast"}
]`}
	uc := newRecommendUsecase(gen)

	items := uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	require.Len(t, items, 2)

	assert.Equal(t, "Acquired", items[0].Name)
	assert.Equal(t,
		"https://www.google.com/search?q=Acquired+Ben+Gilbert+and+David+Rosenthal+podcast",
		items[0].Link,
		"empty links are filled with a search URL",
	)
	assert.Equal(t, "https://lexfridman.com/podcast", items[1].Link, "existing links stay")
}

func TestRecommendUsecase_Generate_CallFailureTier(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream unavailable")}
	uc := newRecommendUsecase(gen)

	items := uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	require.Len(t, items, 5)
	assert.Equal(t, "The Daily", items[0].Name)
	assert.Contains(t, items[3].Reason, "25-34", "fallback personalizes with the caller's prefs")
}

func TestRecommendUsecase_Generate_ParseFailureTier(t *testing.T) {
	gen := &fakeGenerator{text: "Sorry, I cannot produce recommendations right now."}
	uc := newRecommendUsecase(gen)

	items := uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	require.Len(t, items, 2)
	assert.Equal(t, "The Daily", items[0].Name)
	assert.Equal(t, "TED Talks Daily", items[1].Name)
}

func TestRecommendUsecase_Generate_CacheHitSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{text: `[{"name": "Acquired", "creator": "Ben Gilbert"}]`}
	uc := newRecommendUsecase(gen, usecase.WithCacheConfig(16, time.Minute))

	prefs := fullPrefs()
	first := uc.Generate(context.Background(), prefs, domain.SegmentProfile{})
	second := uc.Generate(context.Background(), prefs, domain.SegmentProfile{})

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), gen.calls.Load(), "identical prompts generate once")

	// A different record misses the cache.
	other := prefs
	other.Region = "Asia"
	uc.Generate(context.Background(), other, domain.SegmentProfile{})
	assert.Equal(t, int64(2), gen.calls.Load())
}

func TestRecommendUsecase_Generate_FailuresAreNotCached(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	uc := newRecommendUsecase(gen, usecase.WithCacheConfig(16, time.Minute))

	uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})

	assert.Equal(t, int64(2), gen.calls.Load(), "failed generations retry on the next request")
}

func TestRecommendUsecase_Generate_CacheDisabled(t *testing.T) {
	gen := &fakeGenerator{text: `[{"name": "Acquired"}]`}
	uc := newRecommendUsecase(gen, usecase.WithCacheConfig(0, time.Minute))

	uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})

	assert.Equal(t, int64(2), gen.calls.Load())
}

func TestRecommendUsecase_Generate_CachedItemsAreIsolated(t *testing.T) {
	gen := &fakeGenerator{text: `[{"name": "Acquired", "creator": "Ben Gilbert"}]`}
	uc := newRecommendUsecase(gen, usecase.WithCacheConfig(16, time.Minute))

	first := uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	first[0].Name = "mutated"

	second := uc.Generate(context.Background(), fullPrefs(), domain.SegmentProfile{})
	assert.Equal(t, "Acquired", second[0].Name, "callers get copies, not the cached slice")
}
