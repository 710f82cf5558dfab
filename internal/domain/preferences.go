package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PreferencesRecord is the normalized survey input the pipeline operates on.
// Multi-select fields are already coerced to non-empty string lists by the
// time a record passes Validate.
type PreferencesRecord struct {
	Age              string     `json:"age"`
	MusicGenres      StringList `json:"music_genre"`
	PodcastFrequency string     `json:"podcast_frequency"`
	PodcastDuration  string     `json:"podcast_duration"`
	PodcastFormat    string     `json:"podcast_format"`
	PodcastContent   StringList `json:"podcast_content"`
	ContentLanguage  string     `json:"content_language"`
	Region           string     `json:"region"`
	ListeningMood    string     `json:"listening_mood"`
	EnjoyedPodcasts  StringList `json:"enjoyed_podcasts"`

	// Optional demographics, profiled but never required.
	Gender     string `json:"gender,omitempty"`
	Education  string `json:"education,omitempty"`
	Employment string `json:"employment,omitempty"`
}

// FieldError reports a single offending input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates field-level input problems so the caller gets
// every offending field in one response instead of the first one found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid preferences"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "invalid preferences: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Validate checks the required fields of a normalized record. It returns a
// *ValidationError listing every missing or empty field, or nil.
func (p PreferencesRecord) Validate() error {
	verr := &ValidationError{}

	required := []struct {
		field string
		value string
	}{
		{"age", p.Age},
		{"podcast_frequency", p.PodcastFrequency},
		{"podcast_duration", p.PodcastDuration},
		{"podcast_format", p.PodcastFormat},
		{"content_language", p.ContentLanguage},
		{"region", p.Region},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Add(r.field, "is required")
		}
	}
	if len(p.MusicGenres) == 0 {
		verr.Add("music_genre", "must contain at least one value")
	}
	if len(p.PodcastContent) == 0 {
		verr.Add("podcast_content", "must contain at least one value")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// StringList is a multi-select survey field. Survey exports deliver these
// fields in four shapes: a native JSON array, a JSON-array-encoded string, a
// comma-separated string, or a bare scalar. UnmarshalJSON coerces all of them
// to a list of trimmed, non-empty strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var native []string
	if err := json.Unmarshal(data, &native); err == nil {
		*l = trimNonEmpty(native)
		return nil
	}

	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		*l = NormalizeMultiSelect(scalar)
		return nil
	}

	return fmt.Errorf("multi-select field must be a string or an array of strings, got %s", string(data))
}

// NormalizeMultiSelect coerces a raw string into a list. Precedence order:
// JSON-array parse, then comma split, then scalar wrap.
func NormalizeMultiSelect(raw string) StringList {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return trimNonEmpty(parsed)
		}
	}

	if strings.Contains(trimmed, ",") {
		return trimNonEmpty(strings.Split(trimmed, ","))
	}

	return StringList{trimmed}
}

func trimNonEmpty(values []string) StringList {
	out := make(StringList, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
