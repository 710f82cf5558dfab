package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Feature group prefixes as they appear in the trained schema. The spellings
// match the survey columns the model was fitted on, typos included.
const (
	FeatureAgeNumeric = "age_numeric"

	GroupMusicGenre   = "fav_music_genre"
	GroupPodFrequency = "pod_lis_frequency"
	GroupPodDuration  = "preffered_pod_duration"
	GroupPodFormat    = "preffered_pod_format"
	GroupPodGenre     = "fav_pod_genre"
)

// ageMidpoints maps a survey age bracket to the midpoint of its range.
var ageMidpoints = map[string]float64{
	"18-24": 21,
	"25-34": 30,
	"35-44": 40,
	"45-54": 50,
	"55+":   60,
}

// defaultAgeMidpoint is used for brackets the table does not know. Unknown
// brackets never fail vectorization.
const defaultAgeMidpoint = 30

// AgeMidpoint resolves an age bracket to its numeric encoding.
func AgeMidpoint(bracket string) float64 {
	if v, ok := ageMidpoints[bracket]; ok {
		return v
	}
	return defaultAgeMidpoint
}

// Vectorizer converts a preferences record into the dense feature vector the
// fitted scaler and clustering model expect. Only features present in the
// schema are ever set; unknown categorical values are ignored so novel survey
// answers never break inference.
type Vectorizer struct{}

// NewVectorizer creates a vectorizer instance (stateless).
func NewVectorizer() *Vectorizer {
	return &Vectorizer{}
}

// BuildVector produces a vector of exactly schema.Len() entries in schema
// column order. Deterministic for identical inputs.
func (v *Vectorizer) BuildVector(prefs PreferencesRecord, schema *FeatureSchema) *mat.VecDense {
	vec := mat.NewVecDense(schema.Len(), nil)

	if i, ok := schema.Index(FeatureAgeNumeric); ok {
		vec.SetVec(i, AgeMidpoint(prefs.Age))
	}

	v.setIndicators(vec, schema, GroupMusicGenre, prefs.MusicGenres)
	v.setIndicators(vec, schema, GroupPodGenre, prefs.PodcastContent)
	v.setIndicators(vec, schema, GroupPodFrequency, []string{prefs.PodcastFrequency})
	v.setIndicators(vec, schema, GroupPodDuration, []string{prefs.PodcastDuration})
	v.setIndicators(vec, schema, GroupPodFormat, []string{prefs.PodcastFormat})

	return vec
}

// setIndicators flips the one-hot column for every selected value whose
// generated name exists in the schema. Multi-select groups may set several
// columns at once.
func (v *Vectorizer) setIndicators(vec *mat.VecDense, schema *FeatureSchema, prefix string, values []string) {
	for _, value := range values {
		if value == "" {
			continue
		}
		if i, ok := schema.Index(fmt.Sprintf("%s_%s", prefix, value)); ok {
			vec.SetVec(i, 1)
		}
	}
}
