package domain

import (
	"net/url"
	"strings"
)

// RecommendationItem is one podcast suggestion in the final response. Link is
// never empty in output: post-processing substitutes a search URL when the
// generation source leaves it blank.
type RecommendationItem struct {
	Name        string `json:"name"`
	Creator     string `json:"creator"`
	Description string `json:"description"`
	Format      string `json:"format"`
	Duration    string `json:"duration"`
	Language    string `json:"language"`
	Region      string `json:"region"`
	Reason      string `json:"reason"`
	Link        string `json:"link"`
}

// RecommendationResponse is the full per-request result. Nothing here is
// persisted; it is recomputed on every call.
type RecommendationResponse struct {
	Segment         string               `json:"segment"`
	SegmentProfile  SegmentProfile       `json:"segment_profile"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

const searchBaseURL = "https://www.google.com/search"

// LinkStrategy selects how a search link is synthesized for items without
// one. Both observed strategies are supported on the same contract.
type LinkStrategy string

const (
	// LinkByName builds the query from the podcast name only.
	LinkByName LinkStrategy = "name"
	// LinkByNameAndCreator includes the creator in the query.
	LinkByNameAndCreator LinkStrategy = "name_creator"
)

// ParseLinkStrategy maps a config string to a strategy, defaulting to
// name+creator.
func ParseLinkStrategy(s string) LinkStrategy {
	if LinkStrategy(s) == LinkByName {
		return LinkByName
	}
	return LinkByNameAndCreator
}

// SearchLink synthesizes the fallback link for an item.
func (s LinkStrategy) SearchLink(item RecommendationItem) string {
	terms := item.Name
	if s == LinkByNameAndCreator && strings.TrimSpace(item.Creator) != "" {
		terms += " " + item.Creator
	}
	q := url.Values{"q": {terms + " podcast"}}
	return searchBaseURL + "?" + q.Encode()
}

// FillMissingLinks substitutes a synthesized link into every item whose link
// field is empty. Items that already carry a link are left untouched.
func FillMissingLinks(items []RecommendationItem, strategy LinkStrategy) {
	for i := range items {
		if strings.TrimSpace(items[i].Link) == "" {
			items[i].Link = strategy.SearchLink(items[i])
		}
	}
}
