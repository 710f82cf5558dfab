// Package artifactstore loads the immutable trained artifacts the serving
// pipeline consumes: clustering centroids, the fitted scaler, the feature
// schema and the segment profile table. Loading is best-effort per artifact;
// the availability gate is the AND of all four.
package artifactstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"podcast-recommender/internal/domain"
)

// Artifact file names under the model directory.
const (
	ModelFile    = "kmeans_model.json"
	ScalerFile   = "scaler.json"
	SchemaFile   = "feature_schema.json"
	ProfilesFile = "segment_profiles.json"
)

// Store holds the loaded artifacts. All fields are written once in Load and
// never mutated afterwards, so concurrent readers need no locking.
type Store struct {
	model     *domain.KMeansModel
	scaler    *domain.StandardScaler
	schema    *domain.FeatureSchema
	profiles  domain.ProfileTable
	available bool
}

var _ domain.ArtifactSource = (*Store)(nil)

// Load reads every artifact from dir. A missing or corrupt file never stops
// the other loads; it only lowers the availability gate. A failed profile
// load substitutes the built-in three-segment table so lookups always
// resolve.
func Load(dir string, logger *slog.Logger) *Store {
	s := &Store{}

	model, err := loadJSON[domain.KMeansModel](dir, ModelFile)
	if err == nil {
		err = model.Validate()
	}
	if err != nil {
		logger.Warn("cluster model unavailable", slog.String("error", err.Error()))
	} else {
		s.model = model
	}

	scaler, err := loadJSON[domain.StandardScaler](dir, ScalerFile)
	if err == nil {
		err = scaler.Validate()
	}
	if err != nil {
		logger.Warn("scaler unavailable", slog.String("error", err.Error()))
	} else {
		s.scaler = scaler
	}

	var names []string
	if err := loadJSONInto(dir, SchemaFile, &names); err != nil {
		logger.Warn("feature schema unavailable", slog.String("error", err.Error()))
	} else if len(names) == 0 {
		logger.Warn("feature schema unavailable", slog.String("error", "schema is empty"))
	} else {
		s.schema = domain.NewFeatureSchema(names)
	}

	var profiles domain.ProfileTable
	if err := loadJSONInto(dir, ProfilesFile, &profiles); err != nil || len(profiles) == 0 {
		if err == nil {
			err = fmt.Errorf("profile table is empty")
		}
		logger.Warn("segment profiles unavailable, substituting built-in set",
			slog.String("error", err.Error()))
		s.profiles = domain.BuiltinProfiles()
	} else {
		s.profiles = profiles
		s.available = true // provisional, checked below with the rest
	}

	loadedProfiles := s.available
	s.available = s.model != nil && s.scaler != nil && s.schema != nil && loadedProfiles

	// Inconsistent dimensions across artifacts would fault every request,
	// so treat them as corrupt and fall back to the heuristic path.
	if s.available {
		if s.scaler.Dim() != s.schema.Len() || s.model.Dim() != s.schema.Len() {
			logger.Warn("artifact dimensions inconsistent, disabling model path",
				slog.Int("schema", s.schema.Len()),
				slog.Int("scaler", s.scaler.Dim()),
				slog.Int("model", s.model.Dim()))
			s.available = false
		}
	}

	logger.Info("artifacts loaded",
		slog.Bool("model", s.model != nil),
		slog.Bool("scaler", s.scaler != nil),
		slog.Bool("schema", s.schema != nil),
		slog.Bool("profiles", loadedProfiles),
		slog.Bool("available", s.available))

	return s
}

// Available reports the startup-computed readiness gate.
func (s *Store) Available() bool { return s.available }

func (s *Store) Model() *domain.KMeansModel     { return s.model }
func (s *Store) Scaler() *domain.StandardScaler { return s.scaler }
func (s *Store) Schema() *domain.FeatureSchema  { return s.schema }
func (s *Store) Profiles() domain.ProfileTable  { return s.profiles }

func loadJSON[T any](dir, name string) (*T, error) {
	var out T
	if err := loadJSONInto(dir, name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func loadJSONInto(dir, name string, target any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
