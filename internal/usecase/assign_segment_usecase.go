package usecase

import (
	"fmt"
	"log/slog"

	"podcast-recommender/internal/domain"
)

// AssignSegmentUsecase maps a preferences record to a segment name and its
// profile, through the trained model when the artifacts are available and
// through the genre heuristic when they are not.
type AssignSegmentUsecase interface {
	Assign(prefs domain.PreferencesRecord) (string, domain.SegmentProfile, error)
}

type assignSegmentUsecase struct {
	artifacts  domain.ArtifactSource
	vectorizer *domain.Vectorizer
	logger     *slog.Logger
}

// NewAssignSegmentUsecase wires the vectorizer against the loaded artifacts.
func NewAssignSegmentUsecase(artifacts domain.ArtifactSource, logger *slog.Logger) AssignSegmentUsecase {
	return &assignSegmentUsecase{
		artifacts:  artifacts,
		vectorizer: domain.NewVectorizer(),
		logger:     logger,
	}
}

// Assign runs the model path when the availability gate is up. Errors out of
// this path are unexpected internal faults (artifact inconsistency) and
// propagate; the heuristic path never errors.
func (u *assignSegmentUsecase) Assign(prefs domain.PreferencesRecord) (string, domain.SegmentProfile, error) {
	if !u.artifacts.Available() {
		name := domain.HeuristicSegment(prefs.PodcastContent)
		u.logger.Info("assigned segment heuristically",
			slog.String("segment", name),
			slog.String("path", "heuristic"))
		return name, u.artifacts.Profiles().Lookup(name), nil
	}

	schema := u.artifacts.Schema()
	vec := u.vectorizer.BuildVector(prefs, schema)

	scaled, err := u.artifacts.Scaler().Transform(vec)
	if err != nil {
		return "", domain.SegmentProfile{}, fmt.Errorf("scaling feature vector: %w", err)
	}

	id, err := u.artifacts.Model().Predict(scaled)
	if err != nil {
		return "", domain.SegmentProfile{}, fmt.Errorf("predicting segment: %w", err)
	}

	name := domain.SegmentName(id)
	u.logger.Info("assigned segment",
		slog.String("segment", name),
		slog.String("path", "model"))
	return name, u.artifacts.Profiles().Lookup(name), nil
}
