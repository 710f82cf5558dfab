package usecase

import (
	"fmt"
	"strings"

	"podcast-recommender/internal/domain"
)

// PromptInput contains the pieces that feed into the prompt builder.
type PromptInput struct {
	Prefs   domain.PreferencesRecord
	Profile domain.SegmentProfile
}

// PromptBuilder renders the generation request sent to the text service.
type PromptBuilder interface {
	Build(input PromptInput) (string, error)
}

// Defaults substituted when optional preference fields are blank, so the
// prompt never contains empty bullet points.
const (
	defaultGenre    = "Various"
	defaultAge      = "25-34"
	defaultFreq     = "Weekly"
	defaultDuration = "Medium (30-60 min)"
	defaultFormat   = "Interview"
	defaultLanguage = "English"
	defaultRegion   = "Global"
)

// SurveyPromptBuilder composes a sectioned natural-language prompt from the
// user's survey answers and their segment profile, instructing the service to
// answer with exactly five recommendation objects as a JSON array.
type SurveyPromptBuilder struct {
	additionalInstructions []string
}

// NewSurveyPromptBuilder creates a prompt builder with optional extra
// instructions appended after the format section.
func NewSurveyPromptBuilder(additionalInstructions ...string) PromptBuilder {
	return &SurveyPromptBuilder{additionalInstructions: additionalInstructions}
}

// Build renders the single user-turn prompt.
func (b *SurveyPromptBuilder) Build(input PromptInput) (string, error) {
	prefs := input.Prefs
	profile := input.Profile

	topMusic, ok := profile.TopValue(domain.GroupMusicGenre)
	if !ok {
		topMusic = defaultGenre
	}
	topPodcast, ok := profile.TopValue(domain.GroupPodGenre)
	if !ok {
		topPodcast = defaultGenre
	}
	meanAge := profile.MeanOf(domain.FeatureAgeNumeric, 30)

	var sb strings.Builder
	sb.WriteString("You are a podcast recommendation expert. Based on the user profile and preferences, suggest 5 podcasts that they would enjoy.\n\n")

	sb.WriteString("USER INFORMATION:\n")
	sb.WriteString("- Age group: " + orDefault(prefs.Age, defaultAge) + "\n")
	sb.WriteString("- Favorite music genres: " + joinOrDefault(prefs.MusicGenres, defaultGenre) + "\n")
	sb.WriteString("- Podcast listening frequency: " + orDefault(prefs.PodcastFrequency, defaultFreq) + "\n")
	sb.WriteString("- Preferred podcast duration: " + orDefault(prefs.PodcastDuration, defaultDuration) + "\n")
	sb.WriteString("- Preferred podcast format: " + orDefault(prefs.PodcastFormat, defaultFormat) + "\n")
	sb.WriteString("- Podcast content interests: " + joinOrDefault(prefs.PodcastContent, defaultGenre) + "\n")
	sb.WriteString("- Preferred language: " + orDefault(prefs.ContentLanguage, defaultLanguage) + "\n")
	sb.WriteString("- Region of interest: " + orDefault(prefs.Region, defaultRegion) + "\n")
	if mood := strings.TrimSpace(prefs.ListeningMood); mood != "" {
		sb.WriteString("- Current listening mood: " + mood + "\n")
	}
	if len(prefs.EnjoyedPodcasts) > 0 {
		sb.WriteString("- Podcasts already enjoyed: " + strings.Join(prefs.EnjoyedPodcasts, ", ") + "\n")
	}

	sb.WriteString("\nLISTENER SEGMENT PROFILE:\n")
	sb.WriteString("- Top music genre in segment: " + topMusic + "\n")
	sb.WriteString("- Top podcast genre in segment: " + topPodcast + "\n")
	sb.WriteString(fmt.Sprintf("- Age demographics: %.0f (average)\n", meanAge))

	sb.WriteString(`
Please provide 5 podcast recommendations in JSON format:
[
  {
    "name": "Podcast Name",
    "creator": "Creator/Host Name",
    "description": "Brief and engaging description (1-2 sentences)",
    "format": "Format type (Interview, Narrative, Educational, etc.)",
    "duration": "Typical episode length",
    "language": "Main language",
    "region": "Content region focus",
    "reason": "Personalized reason why this matches the user (1 sentence)",
    "link": "Leave this empty, I'll fill it in later"
  },
  ...
]

Focus on real, high-quality podcasts that genuinely match the user's interests. Be specific with your recommendations, not generic.
`)

	for _, inst := range b.additionalInstructions {
		sb.WriteString(inst)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinOrDefault(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
