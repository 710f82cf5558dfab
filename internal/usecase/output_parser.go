package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"podcast-recommender/internal/domain"
)

// arrayPattern matches a bracket-delimited array of objects whose first key
// is "name". Greedy matching captures the longest such span, which tolerates
// prose or code fences around the JSON payload.
var arrayPattern = regexp.MustCompile(`(?s)\[\s*\{\s*"name".*\}\s*\]`)

// OutputParser turns the free text returned by the generative service into a
// recommendation list. Parsing runs in two named stages: a strict decode of
// the whole response, then a bounded pattern extraction of an embedded array.
// Both failing means the parse-failure fallback tier takes over.
type OutputParser struct{}

// NewOutputParser creates a parser instance (stateless).
func NewOutputParser() OutputParser {
	return OutputParser{}
}

// Parse extracts and validates the recommendation array from raw model
// output.
func (p OutputParser) Parse(raw string) ([]domain.RecommendationItem, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("generation response is empty")
	}

	if items, err := p.decodeItems(trimmed); err == nil {
		return items, nil
	}

	extracted, ok := p.extractArray(trimmed)
	if !ok {
		return nil, errors.New("no recommendation array found in response")
	}
	items, err := p.decodeItems(extracted)
	if err != nil {
		return nil, fmt.Errorf("extracted array is not valid: %w", err)
	}
	return items, nil
}

// decodeItems is the strict stage: the input must be exactly a JSON array of
// recommendation objects, each carrying a non-empty name.
func (p OutputParser) decodeItems(text string) ([]domain.RecommendationItem, error) {
	var items []domain.RecommendationItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("recommendation array is empty")
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("recommendation %d has no name", i)
		}
	}
	return items, nil
}

// extractArray is the pattern stage: it finds the longest embedded
// array-of-objects-with-name span in the text.
func (p OutputParser) extractArray(text string) (string, bool) {
	match := arrayPattern.FindString(text)
	return match, match != ""
}
