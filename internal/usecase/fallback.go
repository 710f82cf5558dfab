package usecase

import (
	"fmt"

	"podcast-recommender/internal/domain"
)

// FallbackTier tags the origin of a non-generative recommendation list. The
// tiers deliberately carry different payloads: which one fired is observable
// behavior, not an implementation detail to be unified.
type FallbackTier int

const (
	// TierClientAbsent fires when no generative client was configured at
	// startup.
	TierClientAbsent FallbackTier = iota
	// TierParseFailure fires when the service responded but no valid
	// recommendation array could be parsed out of the text.
	TierParseFailure
	// TierCallFailure fires when the service call itself errored after a
	// client had been initialized.
	TierCallFailure
)

func (t FallbackTier) String() string {
	switch t {
	case TierClientAbsent:
		return "client_absent"
	case TierParseFailure:
		return "parse_failure"
	case TierCallFailure:
		return "call_failure"
	default:
		return "unknown"
	}
}

// Recommendations builds the fixed payload for the tier, personalized by
// substituting the user's preference strings into descriptions and reasons.
func (t FallbackTier) Recommendations(prefs domain.PreferencesRecord) []domain.RecommendationItem {
	switch t {
	case TierParseFailure:
		return parseFailureRecommendations(prefs)
	case TierCallFailure:
		return callFailureRecommendations(prefs)
	default:
		return clientAbsentRecommendations(prefs)
	}
}

// clientAbsentRecommendations is the two-item fully templated list returned
// when the service client never initialized.
func clientAbsentRecommendations(prefs domain.PreferencesRecord) []domain.RecommendationItem {
	age := orDefault(prefs.Age, defaultAge)
	format := orDefault(prefs.PodcastFormat, defaultFormat)
	duration := orDefault(prefs.PodcastDuration, defaultDuration)
	content := joinOrDefault(prefs.PodcastContent, defaultGenre)
	language := orDefault(prefs.ContentLanguage, defaultLanguage)

	return []domain.RecommendationItem{
		{
			Name:        "SmartLess",
			Creator:     "Jason Bateman, Sean Hayes, Will Arnett",
			Description: "A podcast that connects and unites people from all walks of life to learn about shared experiences through thoughtful dialogue and organic hilarity.",
			Format:      "Interview",
			Duration:    "Medium (30-60 min)",
			Language:    language,
			Region:      "Global",
			Reason:      fmt.Sprintf("Popular podcast with a %s format that many %s listeners enjoy.", format, age),
			Link:        "https://www.google.com/search?q=SmartLess+podcast",
		},
		{
			Name:        "Stuff You Should Know",
			Creator:     "iHeartRadio",
			Description: "Josh and Chuck explore everything from champagne to satanism, exploring the ins and outs of a variety of topics.",
			Format:      "Educational",
			Duration:    "Medium (30-60 min)",
			Language:    language,
			Region:      "Global",
			Reason:      fmt.Sprintf("Informative content about %s topics in your preferred %s format.", content, duration),
			Link:        "https://www.google.com/search?q=Stuff+You+Should+Know+podcast",
		},
	}
}

// parseFailureRecommendations is the two-item list returned when the service
// answered but the text carried no parseable recommendation array.
func parseFailureRecommendations(prefs domain.PreferencesRecord) []domain.RecommendationItem {
	format := orDefault(prefs.PodcastFormat, defaultFormat)
	duration := orDefault(prefs.PodcastDuration, defaultDuration)
	content := joinOrDefault(prefs.PodcastContent, defaultGenre)
	language := orDefault(prefs.ContentLanguage, defaultLanguage)
	region := orDefault(prefs.Region, defaultRegion)

	return []domain.RecommendationItem{
		{
			Name:        "The Daily",
			Creator:     "The New York Times",
			Description: "This is what the news should sound like. The biggest stories of our time, told by the best journalists in the world.",
			Format:      format,
			Duration:    duration,
			Language:    language,
			Region:      region,
			Reason:      fmt.Sprintf("Popular podcast that matches your interest in %s.", content),
			Link:        "https://www.google.com/search?q=The+Daily+podcast",
		},
		{
			Name:        "TED Talks Daily",
			Creator:     "TED",
			Description: "Every weekday, TED Talks Daily brings you the latest talks in audio. Join host and journalist Elise Hu for thought-provoking ideas on every subject imaginable.",
			Format:      "Educational",
			Duration:    "Short (< 30 min)",
			Language:    language,
			Region:      "Global",
			Reason:      fmt.Sprintf("Bite-sized talks that complement your preference for %s shows.", format),
			Link:        "https://www.google.com/search?q=TED+Talks+Daily+podcast",
		},
	}
}

// callFailureRecommendations is the five-item list returned when the call to
// an initialized client failed: three generic picks plus two lightly
// personalized ones.
func callFailureRecommendations(prefs domain.PreferencesRecord) []domain.RecommendationItem {
	age := orDefault(prefs.Age, defaultAge)
	format := orDefault(prefs.PodcastFormat, defaultFormat)
	duration := orDefault(prefs.PodcastDuration, defaultDuration)
	content := joinOrDefault(prefs.PodcastContent, defaultGenre)
	language := orDefault(prefs.ContentLanguage, defaultLanguage)

	return []domain.RecommendationItem{
		{
			Name:        "The Daily",
			Creator:     "The New York Times",
			Description: "This is what the news should sound like. The biggest stories of our time, told by the best journalists in the world.",
			Format:      "Narrative",
			Duration:    "Short (< 30 min)",
			Language:    language,
			Region:      "Global",
			Reason:      "Popular podcast that matches your interest in current events and news.",
			Link:        "https://www.google.com/search?q=The+Daily+podcast",
		},
		{
			Name:        "TED Talks Daily",
			Creator:     "TED",
			Description: "Every weekday, TED Talks Daily brings you the latest talks in audio. Join host and journalist Elise Hu for thought-provoking ideas on every subject imaginable.",
			Format:      "Educational",
			Duration:    "Short (< 30 min)",
			Language:    language,
			Region:      "Global",
			Reason:      "Educational content that aligns with your listening preferences.",
			Link:        "https://www.google.com/search?q=TED+Talks+Daily+podcast",
		},
		{
			Name:        "Freakonomics Radio",
			Creator:     "Stephen J. Dubner",
			Description: "Discover the hidden side of everything with Stephen J. Dubner, co-author of the Freakonomics books.",
			Format:      "Interview",
			Duration:    "Medium (30-60 min)",
			Language:    language,
			Region:      "Global",
			Reason:      "Interesting economic and social topics presented in an engaging way.",
			Link:        "https://www.google.com/search?q=Freakonomics+Radio+podcast",
		},
		{
			Name:        "SmartLess",
			Creator:     "Jason Bateman, Sean Hayes, Will Arnett",
			Description: "A podcast that connects and unites people from all walks of life to learn about shared experiences through thoughtful dialogue and organic hilarity.",
			Format:      "Interview",
			Duration:    "Medium (30-60 min)",
			Language:    language,
			Region:      "Global",
			Reason:      fmt.Sprintf("Popular podcast with a %s format that many %s listeners enjoy.", format, age),
			Link:        "https://www.google.com/search?q=SmartLess+podcast",
		},
		{
			Name:        "Stuff You Should Know",
			Creator:     "iHeartRadio",
			Description: "Josh and Chuck explore everything from champagne to satanism, exploring the ins and outs of a variety of topics.",
			Format:      "Educational",
			Duration:    "Medium (30-60 min)",
			Language:    language,
			Region:      "Global",
			Reason:      fmt.Sprintf("Informative content about %s topics in your preferred %s format.", content, duration),
			Link:        "https://www.google.com/search?q=Stuff+You+Should+Know+podcast",
		},
	}
}
