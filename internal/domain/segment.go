package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ValueFrequencies maps an observed categorical value to its relative
// frequency within a segment. Only the top few values per feature are kept.
type ValueFrequencies map[string]float64

// NumericSummary holds the aggregate statistics kept for numeric features.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// SegmentProfile describes one listener segment: per-categorical-feature top
// values with frequencies, numeric feature summaries, and optionally a static
// description for the built-in profiles. Read-only at serving time.
type SegmentProfile struct {
	Description string
	Categorical map[string]ValueFrequencies
	Numeric     map[string]NumericSummary
}

// IsEmpty reports whether the profile carries no data at all. An empty
// profile is a valid degraded state: lookups for unknown segments return one
// instead of failing.
func (p SegmentProfile) IsEmpty() bool {
	return p.Description == "" && len(p.Categorical) == 0 && len(p.Numeric) == 0
}

// TopValue returns the most frequent observed value for a categorical
// feature. Ties resolve alphabetically so the result is deterministic.
func (p SegmentProfile) TopValue(feature string) (string, bool) {
	freqs := p.Categorical[feature]
	if len(freqs) == 0 {
		return "", false
	}
	values := make([]string, 0, len(freqs))
	for v := range freqs {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if freqs[values[i]] != freqs[values[j]] {
			return freqs[values[i]] > freqs[values[j]]
		}
		return values[i] < values[j]
	})
	return values[0], true
}

// MeanOf returns the mean of a numeric feature, or the fallback when the
// profile has no summary for it.
func (p SegmentProfile) MeanOf(feature string, fallback float64) float64 {
	if s, ok := p.Numeric[feature]; ok {
		return s.Mean
	}
	return fallback
}

// The profile table on disk is a flat object per segment: each feature maps
// either to value frequencies or to a {"mean","median"} summary, plus an
// optional "description" string. The custom codec keeps that flat shape.

func (p *SegmentProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := SegmentProfile{}
	for feature, value := range raw {
		if feature == "description" {
			if err := json.Unmarshal(value, &out.Description); err != nil {
				return fmt.Errorf("profile feature %q: %w", feature, err)
			}
			continue
		}

		var summary NumericSummary
		if isNumericSummary(value) {
			if err := json.Unmarshal(value, &summary); err != nil {
				return fmt.Errorf("profile feature %q: %w", feature, err)
			}
			if out.Numeric == nil {
				out.Numeric = map[string]NumericSummary{}
			}
			out.Numeric[feature] = summary
			continue
		}

		var freqs ValueFrequencies
		if err := json.Unmarshal(value, &freqs); err != nil {
			return fmt.Errorf("profile feature %q: %w", feature, err)
		}
		if out.Categorical == nil {
			out.Categorical = map[string]ValueFrequencies{}
		}
		out.Categorical[feature] = freqs
	}

	*p = out
	return nil
}

func (p SegmentProfile) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Categorical)+len(p.Numeric)+1)
	if p.Description != "" {
		flat["description"] = p.Description
	}
	for feature, freqs := range p.Categorical {
		flat[feature] = freqs
	}
	for feature, summary := range p.Numeric {
		flat[feature] = summary
	}
	return json.Marshal(flat)
}

// isNumericSummary detects the {"mean": ..., "median": ...} shape.
func isNumericSummary(raw json.RawMessage) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	_, ok := probe["mean"]
	return ok
}

// ProfileTable maps segment names to their profiles.
type ProfileTable map[string]SegmentProfile

// Lookup returns the profile for a segment name, or an empty profile when
// the table has no entry. Never errors.
func (t ProfileTable) Lookup(name string) SegmentProfile {
	return t[name]
}

// SegmentName renders the deterministic name for a cluster id.
func SegmentName(id int) string {
	return fmt.Sprintf("Segment_%d", id)
}

// Heuristic segment labels used when the trained artifacts are unavailable.
const (
	SegmentCasualListener  = "Casual Listener"
	SegmentKnowledgeSeeker = "Knowledge Seeker"
	SegmentDailyConsumer   = "Daily Consumer"
)

var knowledgeGenres = map[string]struct{}{
	"technology": {},
	"science":    {},
	"education":  {},
	"history":    {},
	"business":   {},
}

var newsFinanceGenres = map[string]struct{}{
	"news":            {},
	"politics":        {},
	"finance":         {},
	"economics":       {},
	"current affairs": {},
	"sports":          {},
}

// HeuristicSegment assigns a segment from content genres alone. This is the
// explicit no-artifacts code path, not a degradation of the model path: the
// API keeps answering even with zero trained artifacts on disk.
func HeuristicSegment(contentGenres []string) string {
	for _, g := range contentGenres {
		if _, ok := knowledgeGenres[strings.ToLower(strings.TrimSpace(g))]; ok {
			return SegmentKnowledgeSeeker
		}
	}
	for _, g := range contentGenres {
		if _, ok := newsFinanceGenres[strings.ToLower(strings.TrimSpace(g))]; ok {
			return SegmentDailyConsumer
		}
	}
	return SegmentCasualListener
}

// BuiltinProfiles returns the minimal three-segment profile set substituted
// when the trained profile table fails to load, so segment lookups always
// resolve.
func BuiltinProfiles() ProfileTable {
	return ProfileTable{
		SegmentCasualListener: {
			Description: "Listens occasionally for entertainment and company during routine tasks.",
			Categorical: map[string]ValueFrequencies{
				GroupPodGenre:   {"Comedy": 0.4, "Lifestyle": 0.35, "Sports": 0.25},
				GroupMusicGenre: {"Pop": 0.5, "Rock": 0.3, "Electronic": 0.2},
			},
			Numeric: map[string]NumericSummary{
				FeatureAgeNumeric: {Mean: 28, Median: 27},
			},
		},
		SegmentKnowledgeSeeker: {
			Description: "Listens to learn: deep dives, explainers and expert interviews.",
			Categorical: map[string]ValueFrequencies{
				GroupPodGenre:   {"Technology": 0.4, "Science": 0.35, "Education": 0.25},
				GroupMusicGenre: {"Classical": 0.4, "Jazz": 0.3, "Pop": 0.3},
			},
			Numeric: map[string]NumericSummary{
				FeatureAgeNumeric: {Mean: 33, Median: 32},
			},
		},
		SegmentDailyConsumer: {
			Description: "Follows news and markets with short daily briefings.",
			Categorical: map[string]ValueFrequencies{
				GroupPodGenre:   {"News": 0.45, "Finance": 0.3, "Politics": 0.25},
				GroupMusicGenre: {"Rock": 0.4, "Pop": 0.35, "Hip hop": 0.25},
			},
			Numeric: map[string]NumericSummary{
				FeatureAgeNumeric: {Mean: 38, Median: 37},
			},
		},
	}
}
