package usecase_test

import (
	"strings"
	"testing"

	"podcast-recommender/internal/domain"
	"podcast-recommender/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPrefs() domain.PreferencesRecord {
	return domain.PreferencesRecord{
		Age:              "25-34",
		MusicGenres:      domain.StringList{"Pop", "Rock"},
		PodcastFrequency: "Daily",
		PodcastDuration:  "Medium (30-60 min)",
		PodcastFormat:    "Interview",
		PodcastContent:   domain.StringList{"Technology", "Science"},
		ContentLanguage:  "English",
		Region:           "Europe",
		ListeningMood:    "Focused",
		EnjoyedPodcasts:  domain.StringList{"The Daily"},
	}
}

func TestSurveyPromptBuilder_Build(t *testing.T) {
	builder := usecase.NewSurveyPromptBuilder()

	profile := domain.SegmentProfile{
		Categorical: map[string]domain.ValueFrequencies{
			domain.GroupMusicGenre: {"Classical": 0.6, "Jazz": 0.4},
			domain.GroupPodGenre:   {"Technology": 0.7, "Science": 0.3},
		},
		Numeric: map[string]domain.NumericSummary{
			domain.FeatureAgeNumeric: {Mean: 33.4, Median: 32},
		},
	}

	prompt, err := builder.Build(usecase.PromptInput{Prefs: fullPrefs(), Profile: profile})
	require.NoError(t, err)

	assert.Contains(t, prompt, "USER INFORMATION:")
	assert.Contains(t, prompt, "- Age group: 25-34")
	assert.Contains(t, prompt, "- Favorite music genres: Pop, Rock")
	assert.Contains(t, prompt, "- Podcast content interests: Technology, Science")
	assert.Contains(t, prompt, "- Current listening mood: Focused")
	assert.Contains(t, prompt, "- Podcasts already enjoyed: The Daily")

	assert.Contains(t, prompt, "LISTENER SEGMENT PROFILE:")
	assert.Contains(t, prompt, "- Top music genre in segment: Classical")
	assert.Contains(t, prompt, "- Top podcast genre in segment: Technology")
	assert.Contains(t, prompt, "- Age demographics: 33 (average)")

	assert.Contains(t, prompt, `"link": "Leave this empty, I'll fill it in later"`)
	assert.Contains(t, prompt, "5 podcast recommendations in JSON format")
}

func TestSurveyPromptBuilder_Build_OptionalLinesOmitted(t *testing.T) {
	builder := usecase.NewSurveyPromptBuilder()

	prefs := fullPrefs()
	prefs.ListeningMood = "  "
	prefs.EnjoyedPodcasts = nil

	prompt, err := builder.Build(usecase.PromptInput{Prefs: prefs})
	require.NoError(t, err)

	assert.NotContains(t, prompt, "Current listening mood")
	assert.NotContains(t, prompt, "Podcasts already enjoyed")
}

func TestSurveyPromptBuilder_Build_EmptyProfileUsesDefaults(t *testing.T) {
	builder := usecase.NewSurveyPromptBuilder()

	prompt, err := builder.Build(usecase.PromptInput{Prefs: fullPrefs()})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Top music genre in segment: Various")
	assert.Contains(t, prompt, "- Top podcast genre in segment: Various")
	assert.Contains(t, prompt, "- Age demographics: 30 (average)")
}

func TestSurveyPromptBuilder_Build_BlankFieldsUseDefaults(t *testing.T) {
	builder := usecase.NewSurveyPromptBuilder()

	prompt, err := builder.Build(usecase.PromptInput{})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Age group: 25-34")
	assert.Contains(t, prompt, "- Favorite music genres: Various")
	assert.Contains(t, prompt, "- Podcast listening frequency: Weekly")
	assert.Contains(t, prompt, "- Preferred language: English")
	assert.Contains(t, prompt, "- Region of interest: Global")
	assert.NotContains(t, prompt, ": \n", "no empty bullet values")
}

func TestSurveyPromptBuilder_Build_AdditionalInstructions(t *testing.T) {
	builder := usecase.NewSurveyPromptBuilder("Answer in Spanish.")

	prompt, err := builder.Build(usecase.PromptInput{Prefs: fullPrefs()})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Answer in Spanish."))
}

func TestSurveyPromptBuilder_Build_Deterministic(t *testing.T) {
	builder := usecase.NewSurveyPromptBuilder()
	input := usecase.PromptInput{Prefs: fullPrefs()}

	a, err := builder.Build(input)
	require.NoError(t, err)
	b, err := builder.Build(input)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
